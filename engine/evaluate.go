package engine

import (
	"github.com/area-audit/auditor/course"
	"github.com/area-audit/auditor/rule"
)

// wildcardRule is the synthetic course.Rule a given-block's reservations
// are keyed against: given-blocks don't carry a single CourseRule of their
// own, but each course they count still needs a (course, rule, match)
// identity so it correctly excludes itself from later all-courses scans.
func wildcardRule(courseCode string) course.Rule {
	return course.Rule{Course: courseCode}
}

// Evaluate evaluates r under state and returns its RuleResult, per §4.4.
func Evaluate(r rule.Rule, state AuditState) RuleResult {
	switch r.Kind {
	case rule.KindCourse:
		return evaluateCourse(*r.CourseRule, state)
	case rule.KindEither:
		return evaluateEither(r, state)
	case rule.KindBoth:
		return evaluateBoth(r, state)
	case rule.KindReqRef:
		return evaluateReqRef(*r.ReqRef, state)
	case rule.KindGiven:
		return evaluateGiven(*r.Given, state)
	case rule.KindActionOnly:
		return evaluateActionOnly(*r.ActionOnly, state)
	default:
		return RuleResult{Reservations: NewReservedPairings(), Status: StatusFail}
	}
}

func evaluateCourse(cr course.Rule, state AuditState) RuleResult {
	res, ok := state.Transcript.HasCourseMatching(cr, state.AlreadyUsed)
	if !ok {
		return RuleResult{Reservations: NewReservedPairings(), Status: StatusFail}
	}
	return RuleResult{Reservations: FromReservations([]Reservation{res}), Status: StatusPass}
}

// evaluateEither evaluates a first; b is only consulted if a fails, per
// §4.4's mandated short-circuit.
func evaluateEither(r rule.Rule, state AuditState) RuleResult {
	a := Evaluate(*r.Either[0], state)
	if a.Pass() {
		return a
	}
	b := Evaluate(*r.Either[1], state)
	if b.Pass() {
		return b
	}
	return RuleResult{Reservations: NewReservedPairings(), Status: StatusFail}
}

// evaluateBoth evaluates a, then evaluates b under a's reservations folded
// into already_used, per §4.4.
func evaluateBoth(r rule.Rule, state AuditState) RuleResult {
	a := Evaluate(*r.Both[0], state)
	if !a.Pass() {
		return RuleResult{Reservations: NewReservedPairings(), Status: StatusFail}
	}
	bState := state
	bState.AlreadyUsed = state.AlreadyUsed.Union(a.Reservations)
	b := Evaluate(*r.Both[1], bState)
	if !b.Pass() {
		return RuleResult{Reservations: NewReservedPairings(), Status: StatusFail}
	}
	return RuleResult{Reservations: a.Reservations.Union(b.Reservations), Status: StatusPass}
}

func evaluateReqRef(ref rule.ReqRef, state AuditState) RuleResult {
	if result, ok := state.CompletedSiblings[ref.Name]; ok {
		return result
	}
	if ref.Optional {
		return RuleResult{Reservations: NewReservedPairings(), Status: StatusPass}
	}
	return RuleResult{Reservations: NewReservedPairings(), Status: StatusFail}
}

func evaluateActionOnly(sa rule.SubsetAction, state AuditState) RuleResult {
	lhs := subsetSize(sa.LHS, state)
	rhs := subsetSize(sa.RHS, state)
	status := StatusFail
	if sa.Op.Compare(lhs, rhs) {
		status = StatusPass
	}
	return RuleResult{Reservations: NewReservedPairings(), Status: status}
}

func subsetSize(name string, state AuditState) float64 {
	result, ok := state.CompletedSiblings[name]
	if !ok {
		return 0
	}
	return float64(result.Reservations.Len())
}

func evaluateGiven(g rule.GivenBlock, state AuditState) RuleResult {
	population := gatherPopulation(g, state)
	population = applyFilterAndLimiters(g, population, state)

	values := reduceValues(g.What, population)
	status := StatusFail
	if g.Action.Evaluate(values) {
		status = StatusPass
	}
	if status != StatusPass {
		return RuleResult{Reservations: NewReservedPairings(), Status: StatusFail}
	}

	reservations := make([]Reservation, len(population))
	for i, inst := range population {
		reservations[i] = Reservation{
			Course: inst,
			Rule:   wildcardRule(inst.Course),
			Match:  course.MatchedParts{CourseMatched: true},
		}
	}
	return RuleResult{Reservations: FromReservations(reservations), Status: StatusPass}
}

func gatherPopulation(g rule.GivenBlock, state AuditState) []course.Instance {
	switch g.Source {
	case rule.SourceAllCourses:
		out := make([]course.Instance, 0, state.Transcript.Len())
		for _, c := range state.Transcript.Courses() {
			if !state.AlreadyUsed.ContainsCourse(c) {
				out = append(out, c)
			}
		}
		return out

	case rule.SourceTheseCourses:
		var out []course.Instance
		used := state.AlreadyUsed
		for _, cr := range g.TheseCourses {
			res, ok := state.Transcript.HasCourseMatching(cr, used)
			if !ok {
				continue
			}
			out = append(out, res.Course)
			used = used.Add(res)
		}
		return out

	case rule.SourceTheseRequirements:
		var out []course.Instance
		seen := NewReservedPairings()
		for _, name := range g.TheseRequirements {
			result, ok := state.CompletedSiblings[name]
			if !ok {
				continue
			}
			for _, res := range result.Reservations.All() {
				if !seen.Contains(res) {
					seen = seen.Add(res)
					out = append(out, res.Course)
				}
			}
		}
		return out

	case rule.SourceSave:
		return state.SavedCourses[g.SaveName]

	case rule.SourceAreas:
		// Areas-of-study population is the student's declared areas, not
		// transcript courses; evaluateGiven only ever reduces over
		// course.Instance populations, and AuditState carries a transcript,
		// not student.Data.Areas. rule.GivenBlock.UnmarshalYAML already
		// rejects a SourceAreas block whose `what` isn't areas_of_study
		// (ErrGivenAreasMustOutputAreas); this engine still has no
		// transcript-shaped population to offer for a well-formed one.
		return nil

	default:
		return nil
	}
}

func applyFilterAndLimiters(g rule.GivenBlock, population []course.Instance, state AuditState) []course.Instance {
	admit := g.NewCounterChain()
	out := make([]course.Instance, 0, len(population))
	for _, inst := range population {
		attrs := state.attrsFor(inst.Course, inst.FilterAttributes())
		if g.Filter.Len() > 0 && !g.Filter.Matches(attrs, state.Env) {
			continue
		}
		if !admit(attrs, state.Env) {
			continue
		}
		out = append(out, inst)
	}
	return out
}

func reduceValues(what rule.What, population []course.Instance) []float64 {
	switch what {
	case rule.WhatDistinctCourses:
		seen := map[string]bool{}
		var values []float64
		for _, inst := range population {
			if !seen[inst.Course] {
				seen[inst.Course] = true
				values = append(values, 1)
			}
		}
		return values
	case rule.WhatCredits:
		values := make([]float64, len(population))
		for i, inst := range population {
			values[i] = inst.Credits
		}
		return values
	case rule.WhatTerms:
		seen := map[string]bool{}
		var values []float64
		for _, inst := range population {
			if t := inst.Term(); !seen[t] {
				seen[t] = true
				values = append(values, 1)
			}
		}
		return values
	case rule.WhatGrades:
		values := make([]float64, len(population))
		for i, inst := range population {
			values[i] = inst.GradePoints
		}
		return values
	default: // WhatCourses, WhatAreasOfStudy
		values := make([]float64, len(population))
		for i := range population {
			values[i] = 1
		}
		return values
	}
}
