package area_test

import (
	"testing"

	"github.com/area-audit/auditor/area"
	"github.com/area-audit/auditor/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleArea = `
name: Mathematics
type: major
degree: Bachelor of Arts
catalog: "2024-2025"
result:
  requirement: Core
requirements:
  Core:
    message: complete the core sequence
    result:
      both:
        - course: MATH 251
        - course: MATH 252
  Electives:
    result:
      given:
        all_courses: true
        what: distinct_courses
        where:
          department: MATH
        do: count >= 3
limits:
  - at_most: 8
    where:
      department: MATH
`

func TestAreaOfStudyUnmarshalYAML(t *testing.T) {
	t.Parallel()

	var a area.AreaOfStudy
	require.NoError(t, yaml.Unmarshal([]byte(sampleArea), &a))

	assert.Equal(t, "Mathematics", a.Name)
	assert.Equal(t, area.AreaTypeMajor, a.Type.Kind)
	assert.Equal(t, "Bachelor of Arts", a.Type.Degree)

	require.NotNil(t, a.Result.ReqRef)
	assert.Equal(t, "Core", a.Result.ReqRef.Name)

	require.Len(t, a.Requirements, 2)
	assert.Equal(t, "Core", a.Requirements[0].Name)
	assert.Equal(t, "Electives", a.Requirements[1].Name)
	assert.Equal(t, rule.KindBoth, a.Requirements[0].Result.Kind)
	assert.Equal(t, rule.KindGiven, a.Requirements[1].Result.Kind)

	require.Len(t, a.Limits, 1)
	assert.Equal(t, 8, a.Limits[0].AtMost)
}

func TestAreaOfStudyUnmarshalYAMLRejectsUnknownField(t *testing.T) {
	t.Parallel()

	var a area.AreaOfStudy
	err := yaml.Unmarshal([]byte("name: X\ntype: degree\ncatalog: Y\nresult: \"MATH 101\"\nbogus: 1\n"), &a)
	require.Error(t, err)
	assert.ErrorIs(t, err, area.ErrUnknownField)
}

func TestRequirementByName(t *testing.T) {
	t.Parallel()

	var a area.AreaOfStudy
	require.NoError(t, yaml.Unmarshal([]byte(sampleArea), &a))

	req, ok := a.RequirementByName("Core")
	require.True(t, ok)
	assert.Equal(t, "complete the core sequence", req.Message)

	_, ok = a.RequirementByName("Nonexistent")
	assert.False(t, ok)
}
