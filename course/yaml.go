package course

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownField is returned when an authored course-rule mapping has a
// key outside the closed set Rule knows about, per §4.7's "deny_unknown_fields
// is required for all named structs".
var ErrUnknownField = fmt.Errorf("unknown field")

// courseRuleFields is the closed set of keys a mapping-form course rule
// may use.
var courseRuleFields = map[string]bool{
	"course": true, "section": true, "year": true,
	"semester": true, "lab": true, "can_match_used": true,
}

// UnmarshalYAML supports both the bare-string shorthand ("MATH 252" ==
// Rule{Course: "MATH 252"}) and the full mapping form, per §4.7's
// string-or-struct convention.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	const op = "course.Rule.UnmarshalYAML"

	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		*r = Rule{Course: s}
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected a scalar or mapping", op)
	}

	var raw struct {
		Course       string    `yaml:"course"`
		Section      *string   `yaml:"section"`
		Year         *uint16   `yaml:"year"`
		Semester     *Semester `yaml:"semester"`
		Lab          *bool     `yaml:"lab"`
		CanMatchUsed bool      `yaml:"can_match_used"`
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !courseRuleFields[key] {
			return fmt.Errorf("%s: %w: %q", op, ErrUnknownField, key)
		}
	}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	*r = Rule{
		Course:       raw.Course,
		Section:      raw.Section,
		Year:         raw.Year,
		Semester:     raw.Semester,
		Lab:          raw.Lab,
		CanMatchUsed: raw.CanMatchUsed,
	}
	return nil
}
