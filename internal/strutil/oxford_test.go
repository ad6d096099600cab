package strutil_test

import (
	"testing"

	"github.com/area-audit/auditor/internal/strutil"
	"github.com/stretchr/testify/assert"
)

func TestOxford(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a and b"},
		{[]string{"a", "b", "c"}, "a, b, and c"},
		{[]string{"a", "b", "c", "d"}, "a, b, c, and d"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, strutil.Oxford(tc.in))
	}
}
