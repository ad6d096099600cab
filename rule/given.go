package rule

import (
	"fmt"

	"github.com/area-audit/auditor/course"
	"github.com/area-audit/auditor/filter"
	"github.com/area-audit/auditor/limit"
)

// Source names where a given-block draws its candidate population from
// (§4.5).
type Source int

const (
	// SourceAllCourses draws from the entire transcript.
	SourceAllCourses Source = iota
	// SourceTheseCourses draws from the transcript, restricted to courses
	// matching one of the listed course rules.
	SourceTheseCourses
	// SourceTheseRequirements draws from the reservations already
	// accumulated by the named sibling requirements.
	SourceTheseRequirements
	// SourceSave draws from a named save-block's precomputed set.
	SourceSave
	// SourceAreas draws from the student's other completed areas of study.
	SourceAreas
)

func (s Source) String() string {
	switch s {
	case SourceAllCourses:
		return "all_courses"
	case SourceTheseCourses:
		return "these_courses"
	case SourceTheseRequirements:
		return "these_requirements"
	case SourceSave:
		return "save"
	case SourceAreas:
		return "areas_of_study"
	default:
		return "unknown"
	}
}

// What names the field a given-block's Action reduces over (§4.5).
type What string

const (
	WhatCourses         What = "courses"
	WhatDistinctCourses What = "distinct_courses"
	WhatCredits         What = "credits"
	WhatTerms           What = "terms"
	WhatGrades          What = "grades"
	WhatAreasOfStudy    What = "areas_of_study"
)

func whatFromString(s string) (What, error) {
	switch What(s) {
	case WhatCourses, WhatDistinctCourses, WhatCredits, WhatTerms, WhatGrades, WhatAreasOfStudy:
		return What(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWhat, s)
	}
}

// GivenBlock is the rule language's population-reduction construct (§4.5):
// gather a population from Source, narrow it by Filter and Limiters, then
// reduce it over What and compare the result with Action.
type GivenBlock struct {
	Source Source

	// TheseCourses holds the course rules a SourceTheseCourses block
	// restricts to.
	TheseCourses []course.Rule
	// TheseRequirements holds the sibling requirement names a
	// SourceTheseRequirements block draws reservations from.
	TheseRequirements []string
	// SaveName holds the save-block name a SourceSave block draws from.
	SaveName string

	What     What
	Filter   filter.Clause
	Limiters []limit.Limiter
	Action   Action
}

// NewCounterChain returns a fresh limiter-chain admit function for one
// evaluation pass over g's population, per §4.6's author-order semantics.
func (g GivenBlock) NewCounterChain() func(attrs map[string]filter.Scalar, env filter.EvalEnv) bool {
	return limit.Chain(g.Limiters)
}
