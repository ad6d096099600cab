package limit_test

import (
	"testing"

	"github.com/area-audit/auditor/filter"
	"github.com/area-audit/auditor/limit"
	"github.com/stretchr/testify/assert"
)

func attrs(course string) map[string]filter.Scalar {
	return map[string]filter.Scalar{"course": filter.NewString(course)}
}

func TestCounterAdmitCapsAtAtMost(t *testing.T) {
	t.Parallel()

	c := limit.NewCounter(limit.New(2, filter.Clause{}))
	assert.True(t, c.Admit(attrs("MATH 101"), filter.EvalEnv{}))
	assert.True(t, c.Admit(attrs("MATH 102"), filter.EvalEnv{}))
	assert.False(t, c.Admit(attrs("MATH 103"), filter.EvalEnv{}))
	assert.Equal(t, 2, c.Admitted())
}

func TestCounterIgnoresNonMatchingCandidates(t *testing.T) {
	t.Parallel()

	labOnly := filter.NewClause(filter.ClauseEntry{Key: "kind", Value: mustSingle(t, "lab")})
	c := limit.NewCounter(limit.New(1, labOnly))

	nonLab := map[string]filter.Scalar{"kind": filter.NewString("lecture")}
	assert.True(t, c.Admit(nonLab, filter.EvalEnv{}), "non-matching candidates bypass the cap entirely")
	assert.Equal(t, 0, c.Admitted())

	lab := map[string]filter.Scalar{"kind": filter.NewString("lab")}
	assert.True(t, c.Admit(lab, filter.EvalEnv{}))
	assert.False(t, c.Admit(lab, filter.EvalEnv{}))
}

func TestChainRequiresEveryLimiterToAdmit(t *testing.T) {
	t.Parallel()

	chain := limit.Chain([]limit.Limiter{
		limit.New(1, filter.Clause{}),
		limit.New(10, filter.Clause{}),
	})

	assert.True(t, chain(attrs("MATH 101"), filter.EvalEnv{}))
	assert.False(t, chain(attrs("MATH 102"), filter.EvalEnv{}), "first limiter's cap of 1 should reject the second candidate")
}

func mustSingle(t *testing.T, raw string) filter.WrappedValue {
	t.Helper()
	wv, err := filter.ParseValue(raw)
	if err != nil {
		t.Fatalf("ParseValue(%q): %v", raw, err)
	}
	return wv
}
