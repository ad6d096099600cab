package area

import (
	"fmt"

	"github.com/area-audit/auditor/filter"
	"github.com/area-audit/auditor/limit"
	"github.com/area-audit/auditor/rule"
	"gopkg.in/yaml.v3"
)

// ErrUnknownField mirrors course.ErrUnknownField and rule.ErrUnknownField
// for area-document mappings.
var ErrUnknownField = fmt.Errorf("unknown field")

// ErrUnknownAreaType is returned when an area document's "type" isn't one
// of the five known variants.
var ErrUnknownAreaType = fmt.Errorf("unknown area type")

var areaOfStudyFields = map[string]bool{
	"name": true, "type": true, "degree": true, "major": true,
	"catalog": true, "institution": true, "result": true,
	"requirements": true, "limits": true, "attributes": true,
}

// UnmarshalYAML decodes an AreaOfStudy document per §6's top-level key
// list, rejecting unknown keys and keeping the authored order of the
// "requirements" mapping.
func (a *AreaOfStudy) UnmarshalYAML(node *yaml.Node) error {
	const op = "area.AreaOfStudy.UnmarshalYAML"
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected a mapping", op)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !areaOfStudyFields[key] {
			return fmt.Errorf("%s: %w: %q", op, ErrUnknownField, key)
		}
	}

	var raw struct {
		Name         string           `yaml:"name"`
		Type         string           `yaml:"type"`
		Degree       string           `yaml:"degree"`
		Major        string           `yaml:"major"`
		Catalog      string           `yaml:"catalog"`
		Institution  string           `yaml:"institution"`
		Result       rule.Rule        `yaml:"result"`
		Requirements orderedReqs      `yaml:"requirements"`
		Limits       []rawAreaLimiter `yaml:"limits"`
		Attributes   rawAttributes    `yaml:"attributes"`
	}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	areaType, err := parseAreaType(raw.Type, raw.Degree, raw.Major)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	limiters := make([]limit.Limiter, 0, len(raw.Limits))
	for _, rl := range raw.Limits {
		limiters = append(limiters, limit.New(rl.AtMost, rl.Where))
	}

	*a = AreaOfStudy{
		Name:         raw.Name,
		Type:         areaType,
		Catalog:      raw.Catalog,
		Institution:  raw.Institution,
		Result:       raw.Result,
		Requirements: raw.Requirements.list,
		Limits:       limiters,
		Attributes:   raw.Attributes.toAttributes(),
	}
	return nil
}

func parseAreaType(kind, degree, major string) (AreaType, error) {
	switch kind {
	case "degree":
		return AreaType{Kind: AreaTypeDegree}, nil
	case "major":
		return AreaType{Kind: AreaTypeMajor, Degree: degree}, nil
	case "minor":
		return AreaType{Kind: AreaTypeMinor, Degree: degree}, nil
	case "concentration":
		return AreaType{Kind: AreaTypeConcentration, Degree: degree}, nil
	case "emphasis":
		return AreaType{Kind: AreaTypeEmphasis, Degree: degree, Major: major}, nil
	default:
		return AreaType{}, fmt.Errorf("%w: %q", ErrUnknownAreaType, kind)
	}
}

type rawAreaLimiter struct {
	AtMost int           `yaml:"at_most"`
	Where  filter.Clause `yaml:"where"`
}

type rawAttributes struct {
	Definitions map[string]string                  `yaml:"definitions"`
	Courses     map[string]map[string]yaml.Node     `yaml:"courses"`
}

func (r rawAttributes) toAttributes() Attributes {
	defs := make(map[string]AttributeMode, len(r.Definitions))
	for name, mode := range r.Definitions {
		switch mode {
		case "array":
			defs[name] = AttributeModeArray
		case "set":
			defs[name] = AttributeModeSet
		default:
			defs[name] = AttributeModeString
		}
	}
	courses := make(map[string]map[string]filter.Scalar, len(r.Courses))
	for code, tags := range r.Courses {
		vals := make(map[string]filter.Scalar, len(tags))
		for tag, node := range tags {
			var s string
			if err := node.Decode(&s); err == nil {
				vals[tag] = filter.NewString(s)
				continue
			}
			var b bool
			if err := node.Decode(&b); err == nil {
				vals[tag] = filter.NewBool(b)
				continue
			}
			var f float64
			if err := node.Decode(&f); err == nil {
				vals[tag] = filter.NewFloat(f)
			}
		}
		courses[code] = vals
	}
	return Attributes{Definitions: defs, Courses: courses}
}

// orderedReqs decodes the authored "requirements" mapping while preserving
// author order (§9: "Requirement children are an ordered mapping").
type orderedReqs struct {
	list []Requirement
}

var requirementFields = map[string]bool{
	"message": true, "contract": true, "department_audited": true,
	"registrar_audited": true, "result": true, "save": true, "requirements": true,
	"optional": true,
}

func (o *orderedReqs) UnmarshalYAML(node *yaml.Node) error {
	const op = "area.orderedReqs.UnmarshalYAML"
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected a mapping", op)
	}
	o.list = make([]Requirement, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		req, err := decodeRequirement(name, node.Content[i+1])
		if err != nil {
			return fmt.Errorf("%s: requirement %q: %w", op, name, err)
		}
		o.list = append(o.list, req)
	}
	return nil
}

func decodeRequirement(name string, node *yaml.Node) (Requirement, error) {
	const op = "area.decodeRequirement"
	if node.Kind != yaml.MappingNode {
		return Requirement{}, fmt.Errorf("%s: expected a mapping", op)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return Requirement{}, fmt.Errorf("%s: %w", op, err)
		}
		if !requirementFields[key] {
			return Requirement{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownField, key)
		}
	}

	var raw struct {
		Message           string         `yaml:"message"`
		Contract          bool           `yaml:"contract"`
		DepartmentAudited bool           `yaml:"department_audited"`
		RegistrarAudited  bool           `yaml:"registrar_audited"`
		Optional          bool           `yaml:"optional"`
		Result            *rule.Rule     `yaml:"result"`
		Save              []rawSaveBlock `yaml:"save"`
		Requirements      orderedReqs    `yaml:"requirements"`
	}
	if err := node.Decode(&raw); err != nil {
		return Requirement{}, fmt.Errorf("%s: %w", op, err)
	}

	save := make([]SaveBlock, 0, len(raw.Save))
	for _, sb := range raw.Save {
		save = append(save, SaveBlock{Name: sb.Name, Given: sb.Given})
	}

	return Requirement{
		Name:              name,
		Message:           raw.Message,
		Contract:          raw.Contract,
		DepartmentAudited: raw.DepartmentAudited,
		RegistrarAudited:  raw.RegistrarAudited,
		Optional:          raw.Optional,
		Result:            raw.Result,
		Save:              save,
		Children:          raw.Requirements.list,
	}, nil
}

type rawSaveBlock struct {
	Name  string          `yaml:"name"`
	Given rule.GivenBlock `yaml:"given"`
}
