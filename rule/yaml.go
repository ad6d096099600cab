package rule

import (
	"fmt"

	"github.com/area-audit/auditor/course"
	"github.com/area-audit/auditor/filter"
	"github.com/area-audit/auditor/limit"
	"gopkg.in/yaml.v3"
)

// topLevelKeys is the closed set of keys any rule mapping may use across
// all six variants; UnmarshalYAML rejects anything outside it per §4.7's
// deny_unknown_fields convention.
var topLevelKeys = map[string]bool{
	"course": true, "requirement": true, "optional": true,
	"both": true, "either": true, "do": true, "given": true,
}

// UnmarshalYAML discriminates the authored rule's variant by which of the
// six variant keys is present (§4.7), then decodes only that variant's
// fields.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	const op = "rule.Rule.UnmarshalYAML"

	if node.Kind == yaml.ScalarNode {
		var cr course.Rule
		if err := node.Decode(&cr); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		*r = Rule{Kind: KindCourse, CourseRule: &cr}
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected a scalar or mapping", op)
	}

	present := map[string]bool{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !topLevelKeys[key] {
			return fmt.Errorf("%s: %w: %q", op, ErrUnknownField, key)
		}
		present[key] = true
	}

	variantCount := 0
	for _, k := range []string{"course", "requirement", "both", "either", "given"} {
		if present[k] {
			variantCount++
		}
	}
	// "do" without "given" is the ActionOnly variant; "do" alongside
	// "given" belongs to the given-block itself and is handled by
	// GivenBlock.UnmarshalYAML, not here.
	if present["do"] && !present["given"] {
		variantCount++
	}
	if variantCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNoVariant)
	}
	if variantCount > 1 {
		return fmt.Errorf("%s: %w", op, ErrAmbiguousVariant)
	}

	switch {
	case present["course"]:
		var raw struct {
			Course course.Rule `yaml:"course"`
		}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		*r = Rule{Kind: KindCourse, CourseRule: &raw.Course}
		return nil

	case present["requirement"]:
		var raw struct {
			Requirement string `yaml:"requirement"`
			Optional    bool   `yaml:"optional"`
		}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		*r = Rule{Kind: KindReqRef, ReqRef: &ReqRef{Name: raw.Requirement, Optional: raw.Optional}}
		return nil

	case present["both"]:
		var raw struct {
			Both [2]*Rule `yaml:"both"`
		}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		*r = Rule{Kind: KindBoth, Both: raw.Both}
		return nil

	case present["either"]:
		var raw struct {
			Either [2]*Rule `yaml:"either"`
		}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		*r = Rule{Kind: KindEither, Either: raw.Either}
		return nil

	case present["given"]:
		var raw struct {
			Given GivenBlock `yaml:"given"`
		}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		*r = Rule{Kind: KindGiven, Given: &raw.Given}
		return nil

	default: // present["do"] without "given": ActionOnly
		var raw struct {
			Do string `yaml:"do"`
		}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		sa, err := ParseSubsetAction(raw.Do)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		*r = Rule{Kind: KindActionOnly, ActionOnly: &sa}
		return nil
	}
}

// givenBlockFields is the closed set of keys a given-block mapping may
// use.
var givenBlockFields = map[string]bool{
	"all_courses": true, "these_courses": true, "these_requirements": true,
	"save": true, "areas_of_study": true,
	"what": true, "where": true, "limit": true, "do": true,
}

// UnmarshalYAML decodes a given-block mapping, discriminating its Source
// by which of the five source keys is present (§4.5, §4.7).
func (g *GivenBlock) UnmarshalYAML(node *yaml.Node) error {
	const op = "rule.GivenBlock.UnmarshalYAML"

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected a mapping", op)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !givenBlockFields[key] {
			return fmt.Errorf("%s: %w: %q", op, ErrUnknownField, key)
		}
	}

	var raw struct {
		AllCourses        bool          `yaml:"all_courses"`
		TheseCourses      []course.Rule `yaml:"these_courses"`
		TheseRequirements []string      `yaml:"these_requirements"`
		Save              string        `yaml:"save"`
		AreasOfStudy      bool          `yaml:"areas_of_study"`
		What              string        `yaml:"what"`
		Where             filter.Clause `yaml:"where"`
		Limit             []rawLimiter  `yaml:"limit"`
		Do                string        `yaml:"do"`
	}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	out := GivenBlock{Filter: raw.Where}
	switch {
	case raw.AllCourses:
		out.Source = SourceAllCourses
	case len(raw.TheseCourses) > 0:
		out.Source = SourceTheseCourses
		out.TheseCourses = raw.TheseCourses
	case len(raw.TheseRequirements) > 0:
		out.Source = SourceTheseRequirements
		out.TheseRequirements = raw.TheseRequirements
	case raw.Save != "":
		out.Source = SourceSave
		out.SaveName = raw.Save
	case raw.AreasOfStudy:
		out.Source = SourceAreas
	default:
		out.Source = SourceAllCourses
	}

	what, err := whatFromString(raw.What)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	out.What = what

	if out.Source == SourceAreas && out.What != WhatAreasOfStudy {
		return fmt.Errorf("%s: %w", op, ErrGivenAreasMustOutputAreas)
	}

	limiters := make([]limit.Limiter, 0, len(raw.Limit))
	for _, rl := range raw.Limit {
		limiters = append(limiters, limit.New(rl.AtMost, rl.Where))
	}
	out.Limiters = limiters

	// A given-block nested inside a SaveBlock may omit "do": save-blocks
	// produce a reusable population rather than a pass/fail predicate.
	if raw.Do != "" {
		action, err := ParseAction(raw.Do)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		out.Action = action
	}

	*g = out
	return nil
}

// rawLimiter is the authored form of one "limit" entry: "at_most: N" paired
// with an optional "where" clause narrowing which candidates it counts.
type rawLimiter struct {
	AtMost int           `yaml:"at_most"`
	Where  filter.Clause `yaml:"where"`
}
