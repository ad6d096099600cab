// Package student holds the input student document (§6): transcript,
// declared areas, and the record descriptors original_source carries
// alongside it (attendance, organizations, overrides).
package student

import "github.com/area-audit/auditor/course"

// AreaDescriptor names one area of study a student has declared, as
// referenced from StudentData.Areas (§6).
type AreaDescriptor struct {
	Name    string
	Type    string
	Catalog string
}

// AttendanceInstance records one term of enrollment (§9 supplement,
// `src/student/data/*.rs`'s attendance shape).
type AttendanceInstance struct {
	Name string
	Term string
	When string
}

// OrganizationDescriptor records membership in a student organization for
// one term (§9 supplement).
type OrganizationDescriptor struct {
	Name string
	Term string
	Role string
}

// Override forces a named requirement's status regardless of how the
// engine would otherwise evaluate it — the simplified form of the
// original's PathSegment override mechanism (§9 supplement): §6 only
// promises the field is tolerated and unspecified in shape, so this
// models the minimal useful case.
type Override struct {
	Requirement string `yaml:"requirement"`
	ForcedPass  bool   `yaml:"forced_pass"`
	Reason      string `yaml:"reason"`
}

// Data is the full student document (§6): `{stnum, name, classification,
// catalog, graduation_year, transcript, areas, attendance?,
// organizations?, overrides?}`.
type Data struct {
	Stnum          string
	Name           string
	Classification string
	Catalog        string
	GraduationYear int64
	Transcript     []course.Instance
	Areas          []AreaDescriptor
	Attendance     []AttendanceInstance
	Organizations  []OrganizationDescriptor
	Overrides      []Override
}

// OverrideFor returns the override entry for requirement name, if any.
func (d Data) OverrideFor(name string) (Override, bool) {
	for _, o := range d.Overrides {
		if o.Requirement == name {
			return o, true
		}
	}
	return Override{}, false
}
