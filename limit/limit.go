// Package limit implements the population-capping predicate given-blocks
// and areas of study use to bound how many matching items a reduction may
// draw from (§4.5, §4.6).
package limit

import "github.com/area-audit/auditor/filter"

// Limiter caps the number of candidates matching Filter that may be
// accepted from a population. A nil or zero-value Filter matches
// everything, making the limiter an unconditional population cap.
type Limiter struct {
	AtMost int
	Filter filter.Clause
}

// New builds a Limiter.
func New(atMost int, clause filter.Clause) Limiter {
	return Limiter{AtMost: atMost, Filter: clause}
}

// Counter tracks how many candidates a single Limiter has accepted so far.
// Authored order matters: §4.5 specifies limiters are applied in author
// order, each maintaining its own running count, so a Counter is
// single-use and not safe to share across unrelated populations.
type Counter struct {
	limit Limiter
	seen  int
}

// NewCounter returns a Counter for limit, starting at zero.
func NewCounter(l Limiter) *Counter {
	return &Counter{limit: l}
}

// applies reports whether attrs falls under this limiter's filter, a
// limiter with no filter applying to every candidate.
func (c *Counter) applies(attrs map[string]filter.Scalar, env filter.EvalEnv) bool {
	return c.limit.Filter.Len() == 0 || c.limit.Filter.Matches(attrs, env)
}

// Admit reports whether attrs may be accepted under this limiter: it must
// fall under the limiter's filter (vacuously true if the filter is empty)
// and the running count must still be under AtMost. On acceptance the
// running count is incremented; rejections never advance it.
func (c *Counter) Admit(attrs map[string]filter.Scalar, env filter.EvalEnv) bool {
	if !c.applies(attrs, env) {
		return true
	}
	if c.seen >= c.limit.AtMost {
		return false
	}
	c.seen++
	return true
}

// Admitted reports how many candidates this counter has accepted so far.
func (c *Counter) Admitted() int { return c.seen }

// Chain applies a sequence of limiters, in author order, to a population
// supplied one candidate at a time via the returned admit function. A
// candidate is admitted only if every limiter in the chain admits it
// (§4.6: "a candidate passing a limiter's filter increments that
// limiter's counter; if any limiter's at_most is exceeded, the candidate
// is dropped").
func Chain(limiters []Limiter) func(attrs map[string]filter.Scalar, env filter.EvalEnv) bool {
	counters := make([]*Counter, len(limiters))
	for i, l := range limiters {
		counters[i] = NewCounter(l)
	}
	return func(attrs map[string]filter.Scalar, env filter.EvalEnv) bool {
		admitted := true
		for _, c := range counters {
			if !c.Admit(attrs, env) {
				admitted = false
			}
		}
		return admitted
	}
}
