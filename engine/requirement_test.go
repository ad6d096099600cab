package engine_test

import (
	"testing"

	"github.com/area-audit/auditor/area"
	"github.com/area-audit/auditor/course"
	"github.com/area-audit/auditor/engine"
	"github.com/area-audit/auditor/filter"
	"github.com/area-audit/auditor/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const mathMajor = `
name: Mathematics
type: major
degree: Bachelor of Arts
catalog: "2024-2025"
result:
  requirement: Core
requirements:
  Core:
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
        do: count >= 1
`

func TestEvaluateAreaPasses(t *testing.T) {
	t.Parallel()

	var a area.AreaOfStudy
	require.NoError(t, yaml.Unmarshal([]byte(mathMajor), &a))

	transcript := engine.NewTranscript([]course.Instance{
		{Course: "MATH 251", Attributes: map[string]filter.Scalar{"department": filter.NewString("MATH")}},
		{Course: "MATH 252", Attributes: map[string]filter.Scalar{"department": filter.NewString("MATH")}},
		{Course: "MATH 253", Attributes: map[string]filter.Scalar{"department": filter.NewString("MATH")}},
	})

	result := engine.EvaluateArea(a, transcript, filterEnv())
	require.Len(t, result.Requirements, 2)

	core := result.Requirements[0]
	assert.Equal(t, "Core", core.Requirement.Name)
	assert.True(t, core.Pass())

	electives := result.Requirements[1]
	assert.Equal(t, "Electives", electives.Requirement.Name)
	assert.True(t, electives.Pass())

	assert.True(t, result.Overall.Pass())
	assert.NotEmpty(t, result.RunID)
}

func TestEvaluateAreaFailsWhenCoreMissing(t *testing.T) {
	t.Parallel()

	var a area.AreaOfStudy
	require.NoError(t, yaml.Unmarshal([]byte(mathMajor), &a))

	transcript := engine.NewTranscript([]course.Instance{
		{Course: "MATH 251"},
	})

	result := engine.EvaluateArea(a, transcript, filterEnv())
	require.Len(t, result.Requirements, 2)
	assert.False(t, result.Requirements[0].Pass())
}

const nestedWithOptionalChild = `
name: Mathematics
type: minor
catalog: "2024-2025"
result:
  requirement: Core
requirements:
  Core:
    requirements:
      Required:
        result:
          course: MATH 251
      Bonus:
        optional: true
        result:
          course: MATH 999
`

func TestEvaluateRequirementOptionalChildDoesNotBlockPass(t *testing.T) {
	t.Parallel()

	var a area.AreaOfStudy
	require.NoError(t, yaml.Unmarshal([]byte(nestedWithOptionalChild), &a))

	transcript := engine.NewTranscript([]course.Instance{{Course: "MATH 251"}})
	result := engine.EvaluateArea(a, transcript, filterEnv())

	require.Len(t, result.Requirements, 1)
	core := result.Requirements[0]
	require.Len(t, core.Children, 2)

	required := core.Children[0]
	assert.Equal(t, "Required", required.Requirement.Name)
	assert.True(t, required.Pass())

	bonus := core.Children[1]
	assert.Equal(t, "Bonus", bonus.Requirement.Name)
	assert.False(t, bonus.Pass())

	assert.True(t, core.Pass())
	assert.True(t, result.Overall.Pass())
}

func TestReqRefResolvesCompletedSibling(t *testing.T) {
	t.Parallel()

	transcript := engine.NewTranscript([]course.Instance{{Course: "MATH 251"}})
	state := engine.AuditState{
		Transcript:        transcript,
		AlreadyUsed:       engine.NewReservedPairings(),
		CompletedSiblings: map[string]engine.RuleResult{},
	}

	first := course.Rule{Course: "MATH 251"}
	firstRule := rule.Rule{Kind: rule.KindCourse, CourseRule: &first}
	firstResult := engine.Evaluate(firstRule, state)
	require.True(t, firstResult.Pass())
	state.CompletedSiblings["Core"] = firstResult

	ref := rule.Rule{Kind: rule.KindReqRef, ReqRef: &rule.ReqRef{Name: "Core"}}
	result := engine.Evaluate(ref, state)
	assert.True(t, result.Pass())

	missingRef := rule.Rule{Kind: rule.KindReqRef, ReqRef: &rule.ReqRef{Name: "Nonexistent", Optional: true}}
	assert.True(t, engine.Evaluate(missingRef, state).Pass())

	requiredMissingRef := rule.Rule{Kind: rule.KindReqRef, ReqRef: &rule.ReqRef{Name: "Nonexistent"}}
	assert.False(t, engine.Evaluate(requiredMissingRef, state).Pass())
}

func filterEnv() filter.EvalEnv { return filter.EvalEnv{} }
