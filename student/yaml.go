package student

import (
	"fmt"

	"github.com/area-audit/auditor/course"
	"github.com/area-audit/auditor/filter"
	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a student document. Unlike the area/rule/course
// documents, §6 says unknown fields "MAY be tolerated" here, so this does
// not enforce a closed key set.
func (d *Data) UnmarshalYAML(node *yaml.Node) error {
	const op = "student.Data.UnmarshalYAML"
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected a mapping", op)
	}

	var raw struct {
		Stnum          string                 `yaml:"stnum"`
		Name           string                 `yaml:"name"`
		Classification string                 `yaml:"classification"`
		Catalog        string                 `yaml:"catalog"`
		GraduationYear int64                  `yaml:"graduation_year"`
		Transcript     []rawCourseInstance    `yaml:"transcript"`
		Areas          []AreaDescriptor       `yaml:"areas"`
		Attendance     []AttendanceInstance   `yaml:"attendance"`
		Organizations  []OrganizationDescriptor `yaml:"organizations"`
		Overrides      []Override             `yaml:"overrides"`
	}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	transcript := make([]course.Instance, 0, len(raw.Transcript))
	for _, rc := range raw.Transcript {
		transcript = append(transcript, rc.toInstance())
	}

	*d = Data{
		Stnum:          raw.Stnum,
		Name:           raw.Name,
		Classification: raw.Classification,
		Catalog:        raw.Catalog,
		GraduationYear: raw.GraduationYear,
		Transcript:     transcript,
		Areas:          raw.Areas,
		Attendance:     raw.Attendance,
		Organizations:  raw.Organizations,
		Overrides:      raw.Overrides,
	}
	return nil
}

// rawCourseInstance is the authored transcript-row shape; it decodes into
// course.Instance, folding the entries of its "attributes" mapping into
// Attributes. Other keys outside this struct are ignored.
type rawCourseInstance struct {
	Course      string                 `yaml:"course"`
	Section     string                 `yaml:"section"`
	Year        uint16                 `yaml:"year"`
	Semester    string                 `yaml:"semester"`
	Lab         bool                   `yaml:"lab"`
	Credits     float64                `yaml:"credits"`
	GradePoints float64                `yaml:"grade_points"`
	Attributes  map[string]yaml.Node   `yaml:"attributes"`
}

func (rc rawCourseInstance) toInstance() course.Instance {
	attrs := make(map[string]filter.Scalar, len(rc.Attributes))
	for name, node := range rc.Attributes {
		var s string
		if err := node.Decode(&s); err == nil {
			attrs[name] = filter.NewString(s)
			continue
		}
		var b bool
		if err := node.Decode(&b); err == nil {
			attrs[name] = filter.NewBool(b)
			continue
		}
		var f float64
		if err := node.Decode(&f); err == nil {
			attrs[name] = filter.NewFloat(f)
		}
	}
	return course.Instance{
		Course:      rc.Course,
		Section:     rc.Section,
		Year:        rc.Year,
		Semester:    course.Semester(rc.Semester),
		Lab:         rc.Lab,
		Credits:     rc.Credits,
		GradePoints: rc.GradePoints,
		Attributes:  attrs,
	}
}
