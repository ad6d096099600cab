package filter_test

import (
	"testing"

	"github.com/area-audit/auditor/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClauseUnmarshalPreservesOrder(t *testing.T) {
	t.Parallel()

	const doc = `
department: MATH
level: ">=200"
lab: true
`
	var c filter.Clause
	require.NoError(t, yaml.Unmarshal([]byte(doc), &c))

	assert.Equal(t, []string{"department", "level", "lab"}, c.Keys())
	assert.Equal(t, 3, c.Len())
}

func TestClauseMatchesIsConjunction(t *testing.T) {
	t.Parallel()

	const doc = `
department: MATH
level: ">=200"
`
	var c filter.Clause
	require.NoError(t, yaml.Unmarshal([]byte(doc), &c))

	env := filter.EvalEnv{}

	attrs := map[string]filter.Scalar{
		"department": filter.NewString("MATH"),
		"level":      filter.NewInt(252),
	}
	assert.True(t, c.Matches(attrs, env))

	attrs["level"] = filter.NewInt(101)
	assert.False(t, c.Matches(attrs, env))
}
