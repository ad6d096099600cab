package engine

import "github.com/area-audit/auditor/course"

// Transcript is an ordered, immutable sequence of course instances (§3).
// The evaluator never mutates it; "consumption" is tracked separately in
// a ReservedPairings threaded alongside it.
type Transcript struct {
	courses []course.Instance
}

// NewTranscript copies courses into a Transcript, preserving order.
func NewTranscript(courses []course.Instance) Transcript {
	cp := make([]course.Instance, len(courses))
	copy(cp, courses)
	return Transcript{courses: cp}
}

// Courses returns the transcript's instances in recorded order. Callers
// must not mutate the returned slice.
func (t Transcript) Courses() []course.Instance { return t.courses }

// Len reports the number of courses on the transcript.
func (t Transcript) Len() int { return len(t.courses) }

// HasCourseMatching scans the transcript in insertion order and returns
// the first course matching rule whose (course, rule, match) triple is
// not already in alreadyUsed (§4.3). Iteration order is deterministic:
// "earliest in transcript wins" for ambiguous matches.
func (t Transcript) HasCourseMatching(rule course.Rule, alreadyUsed ReservedPairings) (Reservation, bool) {
	for _, c := range t.courses {
		m := rule.Matches(c)
		if !m.Any() {
			continue
		}
		candidate := Reservation{Course: c, Rule: rule, Match: m}
		if !rule.CanMatchUsed && alreadyUsed.Contains(candidate) {
			continue
		}
		return candidate, true
	}
	return Reservation{}, false
}

// Filtered returns a new Transcript containing only the courses for which
// keep returns true, preserving order. Used by area-level limiters (§4.6)
// to produce the transcript that feeds the root AuditState.
func (t Transcript) Filtered(keep func(course.Instance) bool) Transcript {
	out := make([]course.Instance, 0, len(t.courses))
	for _, c := range t.courses {
		if keep(c) {
			out = append(out, c)
		}
	}
	return Transcript{courses: out}
}
