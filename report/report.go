// Package report projects an evaluated area's output tree (engine.AreaResult)
// into a flat, ordered slice suitable for a downstream formatter to render —
// prose/HTML/CSV rendering itself is a Non-goal; this package only
// produces the structured rows a formatter would consume.
package report

import (
	"strings"

	"github.com/area-audit/auditor/course"
	"github.com/area-audit/auditor/engine"
)

// Row is one requirement node's flattened evidence: its path from the
// area root, pass/fail status, and the courses its own rule reserved
// (children are reported as their own rows, not nested here).
type Row struct {
	Path    []string
	Status  engine.RuleStatus
	Courses string
}

// PathString joins Path with " / ", for a human-readable breadcrumb.
func (r Row) PathString() string { return strings.Join(r.Path, " / ") }

// Flatten walks an AreaResult's requirement tree in authored order and
// returns one Row per node, depth-first, pre-order.
func Flatten(result engine.AreaResult) []Row {
	var rows []Row
	for _, req := range result.Requirements {
		appendRows(&rows, []string{result.Area.Name}, req)
	}
	return rows
}

func appendRows(rows *[]Row, parentPath []string, outcome engine.RequirementOutcome) {
	path := append(append([]string{}, parentPath...), outcome.Requirement.Name)

	var courses string
	if outcome.Own != nil {
		instances := make([]course.Instance, 0, outcome.Own.Reservations.Len())
		for _, res := range outcome.Own.Reservations.All() {
			instances = append(instances, res.Course)
		}
		courses = course.Summarize(instances)
	}

	*rows = append(*rows, Row{Path: path, Status: outcome.Status, Courses: courses})

	for _, child := range outcome.Children {
		appendRows(rows, path, child)
	}
}
