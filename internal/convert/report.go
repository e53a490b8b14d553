// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// FileOutcome is one per-profile record in the run report.
type FileOutcome struct {
	Input   string `yaml:"input"`
	Profile string `yaml:"profile,omitempty"`
	Type    string `yaml:"type,omitempty"`
	Status  string `yaml:"status"`
	Output  string `yaml:"output,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

// Report is the on-disk YAML summary of a conversion run.
type Report struct {
	Timestamp time.Time     `yaml:"timestamp"`
	Outcomes  []FileOutcome `yaml:"outcomes"`
	Summary   BatchResult   `yaml:"summary"`
}

// record appends one outcome to the run log kept for the report.
func (c *Converter) record(input, name, profileType string, st status, output string, err error) {
	o := FileOutcome{
		Input:   input,
		Profile: name,
		Type:    profileType,
		Status:  string(st),
		Output:  output,
	}
	if err != nil {
		o.Error = err.Error()
	}
	c.outcomes = append(c.outcomes, o)
}

// writeReport saves the run report to the configured path.
func (c *Converter) writeReport(result BatchResult) error {
	r := Report{
		Timestamp: time.Now().UTC(),
		Outcomes:  c.outcomes,
		Summary:   result,
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(c.cfg.ReportPath, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
