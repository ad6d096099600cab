// Package rule holds the audit rule algebra (§4.4): the six-variant Rule
// tagged union, the given-block population reducer (§4.5), and their YAML
// deserialization. This package is pure data — evaluation lives in engine,
// which imports rule rather than the reverse, to keep the package graph
// acyclic.
package rule

import "github.com/area-audit/auditor/course"

// Kind discriminates which of Rule's six variants is populated.
type Kind int

const (
	KindCourse Kind = iota
	KindReqRef
	KindBoth
	KindEither
	KindActionOnly
	KindGiven
)

func (k Kind) String() string {
	switch k {
	case KindCourse:
		return "course"
	case KindReqRef:
		return "requirement"
	case KindBoth:
		return "both"
	case KindEither:
		return "either"
	case KindActionOnly:
		return "action_only"
	case KindGiven:
		return "given"
	default:
		return "unknown"
	}
}

// ReqRef names a sibling requirement a rule defers to (§4.4's requirement
// variant). Optional requirements that are absent from the area don't fail
// the referencing rule.
type ReqRef struct {
	Name     string
	Optional bool
}

// Rule is the audit rule language's tagged union (§4.4): exactly one of
// the variant fields is populated, selected by Kind. Both and Either carry
// their two children behind pointers so a Rule can recursively contain
// Rules without an infinite-size struct.
type Rule struct {
	Kind Kind

	CourseRule *course.Rule
	ReqRef     *ReqRef
	Both       [2]*Rule
	Either     [2]*Rule
	ActionOnly *SubsetAction
	Given      *GivenBlock
}
