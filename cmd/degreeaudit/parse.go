package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/area-audit/auditor/area"
)

var parseCmd = &cobra.Command{
	Use:   "parse <area.yaml>",
	Short: "Validate an area-of-study definition and print it back as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	log := newLogger("parse")

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read area file: %w", err)
	}

	var a area.AreaOfStudy
	if err := yaml.Unmarshal(raw, &a); err != nil {
		return fmt.Errorf("parse area file: %w", err)
	}
	log.Debug("parsed area", "name", a.Name, "requirements", len(a.Requirements))

	out, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("render area: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
