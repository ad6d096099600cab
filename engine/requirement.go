package engine

import (
	"github.com/google/uuid"

	"github.com/area-audit/auditor/area"
	"github.com/area-audit/auditor/course"
	"github.com/area-audit/auditor/filter"
	"github.com/area-audit/auditor/limit"
)

// RequirementOutcome mirrors one node of an area's requirement tree with
// its evaluation outcome attached (§6's output-tree contract).
type RequirementOutcome struct {
	Requirement area.Requirement
	Own         *RuleResult
	Children    []RequirementOutcome
	Status      RuleStatus
}

// Pass reports whether o's status is Pass.
func (o RequirementOutcome) Pass() bool { return o.Status == StatusPass }

// aggregate folds a requirement outcome's own result and every
// descendant's reservations into a single RuleResult, for insertion into
// a parent's completed_siblings map (so ancestors can ReqRef this
// requirement by name).
func aggregate(o RequirementOutcome) RuleResult {
	reservations := NewReservedPairings()
	if o.Own != nil {
		reservations = reservations.Union(o.Own.Reservations)
	}
	for _, child := range o.Children {
		reservations = reservations.Union(aggregate(child).Reservations)
	}
	status := StatusFail
	if o.Status == StatusPass {
		status = StatusPass
	}
	return RuleResult{Reservations: reservations, Status: status}
}

// EvaluateRequirement evaluates req and its children in authored order
// (§4.4's sibling evaluation), returning the outcome tree and the state
// with req's consumption folded into AlreadyUsed for subsequent siblings.
func EvaluateRequirement(req area.Requirement, state AuditState) (RequirementOutcome, AuditState) {
	logger.Trace("evaluating requirement", "name", req.Name)
	outcome := RequirementOutcome{Requirement: req}

	withSaves := withSaveBlocks(req, state)

	if req.Result != nil {
		own := Evaluate(*req.Result, withSaves)
		outcome.Own = &own
		state.AlreadyUsed = state.AlreadyUsed.Union(own.Reservations)
	}

	childState := state.WithSiblings()
	allChildrenPass := true
	for _, child := range req.Children {
		childOutcome, updated := EvaluateRequirement(child, childState)
		outcome.Children = append(outcome.Children, childOutcome)
		childState = updated
		childState.CompletedSiblings[child.Name] = aggregate(childOutcome)

		if !childOutcome.Pass() && !child.Optional {
			allChildrenPass = false
		}
	}
	state.AlreadyUsed = childState.AlreadyUsed

	ownPass := outcome.Own == nil || outcome.Own.Pass()
	if ownPass && allChildrenPass {
		outcome.Status = StatusPass
	} else {
		outcome.Status = StatusFail
	}
	logger.Trace("evaluated requirement", "name", req.Name, "status", outcome.Status)
	return outcome, state
}

// withSaveBlocks computes req's declared save-blocks' populations up
// front, so req.Result's given-blocks can draw on them via
// rule.SourceSave (§4.5).
func withSaveBlocks(req area.Requirement, state AuditState) AuditState {
	if len(req.Save) == 0 {
		return state
	}
	cp := state
	cp.SavedCourses = make(map[string][]course.Instance, len(state.SavedCourses)+len(req.Save))
	for k, v := range state.SavedCourses {
		cp.SavedCourses[k] = v
	}
	for _, sb := range req.Save {
		population := gatherPopulation(sb.Given, cp)
		population = applyFilterAndLimiters(sb.Given, population, cp)
		cp.SavedCourses[sb.Name] = population
	}
	return cp
}

// AreaResult is the root of an evaluated area's output tree (§6). Overall
// is the area's own top-level Result rule (typically a ReqRef naming
// which requirement(s) the area's award hinges on), evaluated once every
// top-level requirement's outcome is available in CompletedSiblings.
type AreaResult struct {
	Area         area.AreaOfStudy
	Requirements []RequirementOutcome
	Overall      RuleResult

	// RunID opaquely tags this evaluation for downstream correlation
	// (log lines, saved reports); §6 promises audit metadata without
	// specifying persistence, so this is the one piece we surface.
	RunID string
}

// EvaluateArea applies the area's limiters to transcript (§4.6), then
// evaluates every top-level requirement in authored order against the
// resulting AuditState.
func EvaluateArea(a area.AreaOfStudy, transcript Transcript, env filter.EvalEnv) AreaResult {
	logger.Debug("evaluating area", "name", a.Name, "courses", transcript.Len())
	filtered := transcript
	if len(a.Limits) > 0 {
		admit := limit.Chain(a.Limits)
		filtered = transcript.Filtered(func(c course.Instance) bool {
			return admit(mergeAttrs(c.FilterAttributes(), a.Attributes.ForCourse(c.Course)), env)
		})
	}

	state := AuditState{
		Transcript:        filtered,
		AlreadyUsed:       NewReservedPairings(),
		CompletedSiblings: map[string]RuleResult{},
		SavedCourses:      map[string][]course.Instance{},
		Env:               env,
		ExtraAttrs: func(courseCode string) map[string]filter.Scalar {
			return a.Attributes.ForCourse(courseCode)
		},
	}

	var outcomes []RequirementOutcome
	for _, req := range a.Requirements {
		outcome, updated := EvaluateRequirement(req, state)
		outcomes = append(outcomes, outcome)
		state = updated
		state.CompletedSiblings[req.Name] = aggregate(outcome)
	}

	overall := Evaluate(a.Result, state)
	result := AreaResult{Area: a, Requirements: outcomes, Overall: overall, RunID: uuid.NewString()}
	logger.Debug("evaluated area", "name", a.Name, "run_id", result.RunID, "overall", overall.Status)
	return result
}
