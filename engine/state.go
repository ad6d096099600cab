package engine

import (
	"github.com/area-audit/auditor/course"
	"github.com/area-audit/auditor/filter"
)

// RuleStatus is a rule's evaluation outcome (§3's RuleResult).
type RuleStatus int

const (
	StatusPending RuleStatus = iota
	StatusPass
	StatusFail
	StatusSkipped
)

func (s RuleStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusSkipped:
		return "skipped"
	default:
		return "pending"
	}
}

// MarshalYAML renders the status as its string form rather than the
// underlying int, so report output reads as pass/fail/skipped/pending.
func (s RuleStatus) MarshalYAML() (any, error) {
	return s.String(), nil
}

// RuleResult is the evaluator's verdict for one rule node (§3): the
// reservations it consumed and its pass/fail status. It does not record
// which rule produced it.
type RuleResult struct {
	Reservations ReservedPairings
	Status       RuleStatus
}

// Pass reports whether r's status is Pass.
func (r RuleResult) Pass() bool { return r.Status == StatusPass }

// AuditState is the value-semantics context threaded through the
// recursive evaluator (§4.4, §5): the transcript, the reservations
// already consumed elsewhere in the tree, the named results of already-
// evaluated siblings, and evaluation-time environment (graduation year,
// course-tag attributes).
type AuditState struct {
	Transcript        Transcript
	AlreadyUsed       ReservedPairings
	CompletedSiblings map[string]RuleResult
	// SavedCourses holds each declared save-block's already-computed
	// population, by name, for rule.SourceSave given-blocks within the
	// enclosing requirement's scope (§4.5).
	SavedCourses map[string][]course.Instance
	Env          filter.EvalEnv
	ExtraAttrs   func(courseCode string) map[string]filter.Scalar
}

// WithSiblings returns a copy of state with a fresh, empty sibling-result
// scope, used when descending into a requirement's children (§4.4's
// sibling evaluation is scoped to one parent's direct children).
func (s AuditState) WithSiblings() AuditState {
	cp := s
	cp.CompletedSiblings = map[string]RuleResult{}
	return cp
}

// attrsFor merges a course instance's built-in and authored attributes
// with whatever extra area-level tag attributes apply to it (§9's
// Attributes supplement).
func (s AuditState) attrsFor(courseCode string, base map[string]filter.Scalar) map[string]filter.Scalar {
	if s.ExtraAttrs == nil {
		return base
	}
	return mergeAttrs(base, s.ExtraAttrs(courseCode))
}

// mergeAttrs layers extra over base, returning base unchanged if extra is
// empty so callers without any area-defined tags avoid an allocation.
func mergeAttrs(base, extra map[string]filter.Scalar) map[string]filter.Scalar {
	if len(extra) == 0 {
		return base
	}
	merged := make(map[string]filter.Scalar, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
