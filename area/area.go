// Package area holds the area-of-study document model: the requirement
// tree (§3's Requirement), save-blocks, area-level limiters, and the
// course-tag attribute taxonomy. Like rule, this package is pure data —
// evaluation lives in engine.
package area

import (
	"github.com/area-audit/auditor/filter"
	"github.com/area-audit/auditor/limit"
	"github.com/area-audit/auditor/rule"
)

// AreaTypeKind discriminates AreaType's variants.
type AreaTypeKind int

const (
	AreaTypeDegree AreaTypeKind = iota
	AreaTypeMajor
	AreaTypeMinor
	AreaTypeConcentration
	AreaTypeEmphasis
)

func (k AreaTypeKind) String() string {
	switch k {
	case AreaTypeDegree:
		return "degree"
	case AreaTypeMajor:
		return "major"
	case AreaTypeMinor:
		return "minor"
	case AreaTypeConcentration:
		return "concentration"
	case AreaTypeEmphasis:
		return "emphasis"
	default:
		return "unknown"
	}
}

// AreaType names what kind of area this is and, for everything but a bare
// degree, which parent degree (and for an emphasis, which major) it
// belongs to (the AreaType supplement in SPEC_FULL.md).
type AreaType struct {
	Kind   AreaTypeKind
	Degree string // parent degree; empty for Kind == AreaTypeDegree
	Major  string // owning major; only meaningful for Kind == AreaTypeEmphasis
}

// AttributeMode discriminates how an Attributes entry's value is shaped.
type AttributeMode int

const (
	AttributeModeString AttributeMode = iota
	AttributeModeArray
	AttributeModeSet
)

// Attributes is an area document's course-tag taxonomy (§9 supplement):
// named attribute definitions, plus which courses carry which tag values.
// AreaOfStudy.Attributes is threaded into filter evaluation as additional
// derived attributes alongside a course's own built-in fields.
type Attributes struct {
	// Definitions names each known attribute and how its value is shaped.
	Definitions map[string]AttributeMode
	// Courses maps a course code to its tag values, as filter.Scalars
	// ready to merge into course.Instance.FilterAttributes.
	Courses map[string]map[string]filter.Scalar
}

// ForCourse returns the extra attributes tagged onto courseCode, if any.
func (a Attributes) ForCourse(courseCode string) map[string]filter.Scalar {
	return a.Courses[courseCode]
}

// SaveBlock is a named, reusable filtered population declared inside a
// requirement (§3). Its given-block describes how the population is
// gathered and reduced; rules within the enclosing requirement's scope
// may draw on it by name via rule.SourceSave.
type SaveBlock struct {
	Name  string
	Given rule.GivenBlock
}

// Requirement is a named node in an area's tree (§3): it may carry its own
// rule (Result), save-blocks reusable by that rule, and an ordered list of
// child requirements. A requirement with a nil Result is satisfied purely
// by its children (AND over all non-optional children).
type Requirement struct {
	Name              string
	Message           string
	Contract          bool
	DepartmentAudited bool
	RegistrarAudited  bool
	Result            *rule.Rule
	Save              []SaveBlock
	Children          []Requirement
	// Optional mirrors rule.ReqRef.Optional: when this Requirement appears
	// as a child, its parent's pass/fail does not depend on it.
	Optional bool
}

// SaveBlockByName returns the named save-block, if declared on r.
func (r Requirement) SaveBlockByName(name string) (SaveBlock, bool) {
	for _, sb := range r.Save {
		if sb.Name == name {
			return sb, true
		}
	}
	return SaveBlock{}, false
}

// AreaOfStudy is the root container of an audit document (§3, §6): a
// degree/major/minor/concentration/emphasis, its requirement tree, any
// area-wide limiters applied to the transcript before evaluation begins,
// and the course-tag attribute taxonomy.
type AreaOfStudy struct {
	Name         string
	Type         AreaType
	Catalog      string
	Institution  string
	Result       rule.Rule
	Requirements []Requirement
	Limits       []limit.Limiter
	Attributes   Attributes
}

// RequirementByName returns the top-level requirement named name, if any.
func (a AreaOfStudy) RequirementByName(name string) (Requirement, bool) {
	for _, r := range a.Requirements {
		if r.Name == name {
			return r, true
		}
	}
	return Requirement{}, false
}
