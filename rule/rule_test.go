package rule_test

import (
	"testing"

	"github.com/area-audit/auditor/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRuleUnmarshalYAMLCourseVariants(t *testing.T) {
	t.Parallel()

	var bare rule.Rule
	require.NoError(t, yaml.Unmarshal([]byte(`"MATH 252"`), &bare))
	assert.Equal(t, rule.KindCourse, bare.Kind)
	require.NotNil(t, bare.CourseRule)
	assert.Equal(t, "MATH 252", bare.CourseRule.Course)

	var nested rule.Rule
	require.NoError(t, yaml.Unmarshal([]byte("course: MATH 252\n"), &nested))
	assert.Equal(t, rule.KindCourse, nested.Kind)
	assert.Equal(t, "MATH 252", nested.CourseRule.Course)
}

func TestRuleUnmarshalYAMLRequirement(t *testing.T) {
	t.Parallel()

	var r rule.Rule
	require.NoError(t, yaml.Unmarshal([]byte("requirement: Core\noptional: true\n"), &r))
	assert.Equal(t, rule.KindReqRef, r.Kind)
	require.NotNil(t, r.ReqRef)
	assert.Equal(t, "Core", r.ReqRef.Name)
	assert.True(t, r.ReqRef.Optional)
}

func TestRuleUnmarshalYAMLBothAndEither(t *testing.T) {
	t.Parallel()

	var both rule.Rule
	require.NoError(t, yaml.Unmarshal([]byte("both:\n  - course: MATH 251\n  - course: MATH 252\n"), &both))
	assert.Equal(t, rule.KindBoth, both.Kind)
	require.NotNil(t, both.Both[0])
	require.NotNil(t, both.Both[1])
	assert.Equal(t, "MATH 251", both.Both[0].CourseRule.Course)
	assert.Equal(t, "MATH 252", both.Both[1].CourseRule.Course)

	var either rule.Rule
	require.NoError(t, yaml.Unmarshal([]byte("either:\n  - course: MATH 251\n  - course: MATH 151\n"), &either))
	assert.Equal(t, rule.KindEither, either.Kind)
}

func TestRuleUnmarshalYAMLActionOnly(t *testing.T) {
	t.Parallel()

	var r rule.Rule
	require.NoError(t, yaml.Unmarshal([]byte("do: CoreCount >= ElectiveCount\n"), &r))
	assert.Equal(t, rule.KindActionOnly, r.Kind)
	require.NotNil(t, r.ActionOnly)
	assert.Equal(t, "CoreCount", r.ActionOnly.LHS)
	assert.Equal(t, rule.ActionGreaterOrEqual, r.ActionOnly.Op)
	assert.Equal(t, "ElectiveCount", r.ActionOnly.RHS)
}

func TestRuleUnmarshalYAMLGiven(t *testing.T) {
	t.Parallel()

	doc := "" +
		"given:\n" +
		"  all_courses: true\n" +
		"  what: distinct_courses\n" +
		"  where:\n" +
		"    department: MATH\n" +
		"  limit:\n" +
		"    - at_most: 2\n" +
		"      where:\n" +
		"        level: 100\n" +
		"  do: count >= 3\n"

	var r rule.Rule
	require.NoError(t, yaml.Unmarshal([]byte(doc), &r))
	assert.Equal(t, rule.KindGiven, r.Kind)
	require.NotNil(t, r.Given)
	assert.Equal(t, rule.SourceAllCourses, r.Given.Source)
	assert.Equal(t, rule.WhatDistinctCourses, r.Given.What)
	require.Len(t, r.Given.Limiters, 1)
	assert.Equal(t, 2, r.Given.Limiters[0].AtMost)
	assert.Equal(t, rule.CommandCount, r.Given.Action.Command)
	assert.True(t, r.Given.Action.Evaluate([]float64{1, 2, 3}))
}

func TestRuleUnmarshalYAMLRejectsAreasGivenWithWrongWhat(t *testing.T) {
	t.Parallel()

	doc := "" +
		"given:\n" +
		"  areas_of_study: true\n" +
		"  what: courses\n" +
		"  do: count >= 1\n"

	var r rule.Rule
	err := yaml.Unmarshal([]byte(doc), &r)
	require.Error(t, err)
	assert.ErrorIs(t, err, rule.ErrGivenAreasMustOutputAreas)
}

func TestRuleUnmarshalYAMLAcceptsAreasGivenWithAreasWhat(t *testing.T) {
	t.Parallel()

	doc := "" +
		"given:\n" +
		"  areas_of_study: true\n" +
		"  what: areas_of_study\n" +
		"  do: count >= 1\n"

	var r rule.Rule
	require.NoError(t, yaml.Unmarshal([]byte(doc), &r))
	require.NotNil(t, r.Given)
	assert.Equal(t, rule.SourceAreas, r.Given.Source)
	assert.Equal(t, rule.WhatAreasOfStudy, r.Given.What)
}

func TestRuleUnmarshalYAMLRejectsUnknownField(t *testing.T) {
	t.Parallel()

	var r rule.Rule
	err := yaml.Unmarshal([]byte("course: MATH 252\nbogus: 1\n"), &r)
	require.Error(t, err)
	assert.ErrorIs(t, err, rule.ErrUnknownField)
}

func TestRuleUnmarshalYAMLRejectsAmbiguousVariant(t *testing.T) {
	t.Parallel()

	var r rule.Rule
	err := yaml.Unmarshal([]byte("course: MATH 252\nrequirement: Core\n"), &r)
	require.Error(t, err)
	assert.ErrorIs(t, err, rule.ErrAmbiguousVariant)
}

func TestParseActionErrors(t *testing.T) {
	t.Parallel()

	_, err := rule.ParseAction("count >=")
	assert.ErrorIs(t, err, rule.ErrMalformedAction)

	_, err = rule.ParseAction("bogus >= 3")
	assert.ErrorIs(t, err, rule.ErrUnknownCommand)
}

func TestActionEvaluateReducers(t *testing.T) {
	t.Parallel()

	population := []float64{1, 2, 3, 4}

	cases := []struct {
		name   string
		action rule.Action
		want   bool
	}{
		{"count", rule.Action{Command: rule.CommandCount, Op: rule.ActionEqual, RHS: 4}, true},
		{"sum", rule.Action{Command: rule.CommandSum, Op: rule.ActionEqual, RHS: 10}, true},
		{"average", rule.Action{Command: rule.CommandAverage, Op: rule.ActionEqual, RHS: 2.5}, true},
		{"maximum", rule.Action{Command: rule.CommandMaximum, Op: rule.ActionEqual, RHS: 4}, true},
		{"minimum", rule.Action{Command: rule.CommandMinimum, Op: rule.ActionEqual, RHS: 1}, true},
		{"count fails", rule.Action{Command: rule.CommandCount, Op: rule.ActionGreaterThan, RHS: 10}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.action.Evaluate(population))
		})
	}
}
