package student_test

import (
	"testing"

	"github.com/area-audit/auditor/course"
	"github.com/area-audit/auditor/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleStudent = `
stnum: "12345"
name: Jordan Rivera
classification: senior
catalog: "2024-2025"
graduation_year: 2025
transcript:
  - course: MATH 251
    year: 2022
    semester: fall
    credits: 4
    attributes:
      department: MATH
  - course: MATH 252
    year: 2023
    semester: spring
    lab: true
areas:
  - name: Mathematics
    type: major
    catalog: "2024-2025"
overrides:
  - requirement: Core
    forced_pass: true
    reason: department petition
`

func TestDataUnmarshalYAML(t *testing.T) {
	t.Parallel()

	var d student.Data
	require.NoError(t, yaml.Unmarshal([]byte(sampleStudent), &d))

	assert.Equal(t, "12345", d.Stnum)
	assert.EqualValues(t, 2025, d.GraduationYear)
	require.Len(t, d.Transcript, 2)
	assert.Equal(t, "MATH 251", d.Transcript[0].Course)
	assert.Equal(t, course.SemesterFall, d.Transcript[0].Semester)
	assert.True(t, d.Transcript[1].Lab)

	dept, ok := d.Transcript[0].Attributes["department"]
	require.True(t, ok)
	assert.Equal(t, "MATH", dept.String())

	require.Len(t, d.Areas, 1)
	assert.Equal(t, "Mathematics", d.Areas[0].Name)

	o, ok := d.OverrideFor("Core")
	require.True(t, ok)
	assert.True(t, o.ForcedPass)

	_, ok = d.OverrideFor("Nonexistent")
	assert.False(t, ok)
}
