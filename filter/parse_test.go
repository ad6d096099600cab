package filter_test

import (
	"testing"

	"github.com/area-audit/auditor/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	env := filter.EvalEnv{GraduationYear: 2024}

	tests := []struct {
		name       string
		raw        any
		attr       filter.Scalar
		attrOK     bool
		wantResult bool
	}{
		{
			name:       "bare scalar matches",
			raw:        "MATH",
			attr:       filter.NewString("MATH"),
			attrOK:     true,
			wantResult: true,
		},
		{
			name:       "bare scalar mismatch",
			raw:        "MATH",
			attr:       filter.NewString("ENGL"),
			attrOK:     true,
			wantResult: false,
		},
		{
			name:       "not-equal prefix",
			raw:        "!MATH",
			attr:       filter.NewString("ENGL"),
			attrOK:     true,
			wantResult: true,
		},
		{
			name:       "less-than prefix",
			raw:        "<100",
			attr:       filter.NewInt(99),
			attrOK:     true,
			wantResult: true,
		},
		{
			name:       "greater-or-equal prefix",
			raw:        ">=100",
			attr:       filter.NewInt(100),
			attrOK:     true,
			wantResult: true,
		},
		{
			name:       "and over split parts",
			raw:        ">=100 & <200",
			attr:       filter.NewInt(150),
			attrOK:     true,
			wantResult: true,
		},
		{
			name:       "or outermost over and",
			raw:        ">=100 & <150 | >=200",
			attr:       filter.NewInt(250),
			attrOK:     true,
			wantResult: true,
		},
		{
			name:       "sequence is or",
			raw:        []any{"MATH", "PHYS"},
			attr:       filter.NewString("PHYS"),
			attrOK:     true,
			wantResult: true,
		},
		{
			name:       "missing attribute with positive comparator is false",
			raw:        "MATH",
			attrOK:     false,
			wantResult: false,
		},
		{
			name:       "missing attribute with not-equal is true",
			raw:        "!MATH",
			attrOK:     false,
			wantResult: true,
		},
		{
			name:       "constant substituted at eval time",
			raw:        "graduation-year",
			attr:       filter.NewInt(2024),
			attrOK:     true,
			wantResult: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wv, err := filter.ParseValue(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, wv.Eval(tt.attr, tt.attrOK, env))
		})
	}
}

func TestParseValueTaggedObject(t *testing.T) {
	t.Parallel()
	env := filter.EvalEnv{}

	wv, err := filter.ParseValue(map[string]any{
		"operator": "∈",
		"value":    []any{"MATH", "PHYS"},
	})
	require.NoError(t, err)
	assert.True(t, wv.Eval(filter.NewString("PHYS"), true, env))
	assert.False(t, wv.Eval(filter.NewString("CHEM"), true, env))

	wv, err = filter.ParseValue(map[string]any{
		"operator": "∉",
		"value":    []any{"MATH", "PHYS"},
	})
	require.NoError(t, err)
	assert.True(t, wv.Eval(filter.NewString("CHEM"), true, env))
}

func TestParseValueErrors(t *testing.T) {
	t.Parallel()

	_, err := filter.ParseValue(map[string]any{"operator": "nope", "value": "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, filter.ErrUnknownOperator)

	_, err = filter.ParseValue(map[string]any{"value": "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, filter.ErrInvalidValue)
}
