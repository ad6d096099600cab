// Package course holds the transcript's unit of record (CourseInstance),
// the course-rule pattern that matches against it (CourseRule), and the
// match-witness bitset (MatchedCourseParts) that the evaluator threads
// into reservations.
package course

import (
	"strconv"
	"strings"

	"github.com/area-audit/auditor/filter"
	"github.com/area-audit/auditor/internal/strutil"
)

// Semester is an enumerated academic term.
type Semester string

const (
	SemesterFall   Semester = "fall"
	SemesterSpring Semester = "spring"
	SemesterSummer Semester = "summer"
	SemesterWinter Semester = "winter"
)

// Instance is one row of a transcript (§3's CourseInstance). Two
// instances are equal iff every structural field is equal; the key
// invariant the evaluator relies on.
type Instance struct {
	Course      string
	Section     string
	Year        uint16
	Semester    Semester
	Lab         bool
	Credits     float64
	GradePoints float64
	Attributes  map[string]filter.Scalar
}

// Term returns a stable label for the course's academic term, used by the
// given-block "terms" reduction (§4.5) to dedup by distinct terms.
func (c Instance) Term() string {
	return string(c.Semester) + " " + strconv.Itoa(int(c.Year))
}

// FilterAttributes returns the attribute map a filter.Clause evaluates
// against: the built-in structural fields, overlaid with whatever the
// transcript source tagged onto Attributes (department, writing-intensive
// flags, and the like — §3's "arbitrary key→value attributes").
func (c Instance) FilterAttributes() map[string]filter.Scalar {
	attrs := make(map[string]filter.Scalar, len(c.Attributes)+6)
	attrs["course"] = filter.NewString(c.Course)
	if c.Section != "" {
		attrs["section"] = filter.NewString(c.Section)
	}
	if c.Year != 0 {
		attrs["year"] = filter.NewInt(int64(c.Year))
	}
	if c.Semester != "" {
		attrs["semester"] = filter.NewString(string(c.Semester))
	}
	attrs["lab"] = filter.NewBool(c.Lab)
	attrs["credits"] = filter.NewFloat(c.Credits)
	attrs["grade"] = filter.NewFloat(c.GradePoints)
	for k, v := range c.Attributes {
		attrs[k] = v
	}
	return attrs
}

// Equal reports whether c and other have identical structural fields.
func (c Instance) Equal(other Instance) bool {
	if normalizeCourse(c.Course) != normalizeCourse(other.Course) ||
		c.Section != other.Section ||
		c.Year != other.Year ||
		c.Semester != other.Semester ||
		c.Lab != other.Lab {
		return false
	}
	if len(c.Attributes) != len(other.Attributes) {
		return false
	}
	for k, v := range c.Attributes {
		ov, ok := other.Attributes[k]
		if !ok || v.String() != ov.String() {
			return false
		}
	}
	return true
}

// String renders a short human-readable label, used for debugging and in
// report output.
func (c Instance) String() string {
	label := c.Course
	if c.Section != "" {
		label += " " + c.Section
	}
	if c.Year != 0 {
		label += " (" + string(c.Semester) + " " + strconv.Itoa(int(c.Year)) + ")"
	}
	return label
}

// Summarize renders a human-readable "a, b, and c" list of the given
// instances' labels, for debug and report-evidence output (§6).
func Summarize(instances []Instance) string {
	labels := make([]string, len(instances))
	for i, inst := range instances {
		labels[i] = inst.String()
	}
	return strutil.Oxford(labels)
}

// normalizeCourse trims and collapses internal whitespace, per §4.2's
// "case-sensitive, whitespace-normalised" equality rule.
func normalizeCourse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
