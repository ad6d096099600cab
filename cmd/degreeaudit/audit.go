package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/area-audit/auditor/area"
	"github.com/area-audit/auditor/engine"
	"github.com/area-audit/auditor/filter"
	"github.com/area-audit/auditor/report"
	"github.com/area-audit/auditor/student"
)

var auditCmd = &cobra.Command{
	Use:   "audit <area.yaml> <student.yaml>",
	Short: "Evaluate a student's transcript against an area-of-study definition",
	Args:  cobra.ExactArgs(2),
	RunE:  runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(_ *cobra.Command, args []string) error {
	log := newLogger("audit")
	engine.SetLogger(newLogger("engine"))

	areaRaw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read area file: %w", err)
	}
	var a area.AreaOfStudy
	if err := yaml.Unmarshal(areaRaw, &a); err != nil {
		return fmt.Errorf("parse area file: %w", err)
	}

	studentRaw, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read student file: %w", err)
	}
	var s student.Data
	if err := yaml.Unmarshal(studentRaw, &s); err != nil {
		return fmt.Errorf("parse student file: %w", err)
	}
	log.Debug("loaded student", "stnum", s.Stnum, "courses", len(s.Transcript))

	transcript := engine.NewTranscript(s.Transcript)
	env := filter.EvalEnv{GraduationYear: s.GraduationYear}

	result := engine.EvaluateArea(a, transcript, env)
	log.Info("audit complete", "run_id", result.RunID, "area", a.Name, "overall", result.Overall.Status)

	rows := report.Flatten(result)
	out, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
