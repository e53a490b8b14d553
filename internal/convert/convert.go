// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives a batch conversion run: glob expansion, per-file
// profile loading and translation, existing-output policy, and JSON
// output. A failure in one file is reported and the batch continues.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/theophile/superslicer-to-orca/internal/mapping"
	"github.com/theophile/superslicer-to-orca/internal/profile"
	"github.com/theophile/superslicer-to-orca/internal/transform"
	"github.com/theophile/superslicer-to-orca/pkg/types"
)

// orcaVersion is the settings-schema version stamped into every converted
// profile. Orca refuses profiles without one.
const orcaVersion = "1.9.0.2"

// ErrUnsupportedProfile is returned when no translation table matches
// enough keys to identify the profile type.
var ErrUnsupportedProfile = errors.New("unsupported or unrecognized profile type")

// BatchResult holds the outcome counts of a conversion run.
type BatchResult struct {
	Converted int `json:"converted" yaml:"converted"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Failed    int `json:"failed" yaml:"failed"`
}

// Total returns the total number of profiles processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any profile failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// status is the per-profile outcome, also used in the run report.
type status string

const (
	statusConverted status = "converted"
	statusSkipped   status = "skipped"
	statusFailed    status = "failed"
)

// Converter runs conversions with a fixed configuration. The zero value is
// not usable; call NewConverter.
type Converter struct {
	cfg      types.ConvertConfig
	physical map[string]any // translated physical-printer keys, may be nil
	outcomes []FileOutcome
}

// NewConverter validates the output directory and, when configured, loads
// and translates the physical-printer profile merged into every printer.
func NewConverter(cfg types.ConvertConfig) (*Converter, error) {
	if err := ensureOutDir(cfg); err != nil {
		return nil, err
	}

	c := &Converter{cfg: cfg}
	if cfg.PhysicalPrinter != "" {
		phys, err := loadPhysicalPrinter(cfg.PhysicalPrinter, cfg.NozzleSize)
		if err != nil {
			return nil, fmt.Errorf("loading physical printer: %w", err)
		}
		c.physical = phys
	}
	return c, nil
}

// ensureOutDir verifies the output directory exists and is a directory,
// creating it when the force flag is set.
func ensureOutDir(cfg types.ConvertConfig) error {
	if cfg.OutDir == "" {
		return fmt.Errorf("output directory not set")
	}
	info, err := os.Stat(cfg.OutDir)
	if os.IsNotExist(err) {
		if !cfg.Force {
			return fmt.Errorf("output directory %s does not exist (use --force to create it)", cfg.OutDir)
		}
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %s is not a directory", cfg.OutDir)
	}
	return nil
}

// loadPhysicalPrinter reads a standalone physical-printer INI and returns
// its translated connection keys.
func loadPhysicalPrinter(path string, nozzleSize float64) (map[string]any, error) {
	profiles, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	tr := transform.New(types.ProfilePhysicalPrinter, profiles[0].Flavor, nozzleSize)
	return tr.Apply(profiles[0].Keys)
}

// Expand resolves glob patterns to a sorted, deduplicated file list.
// A pattern that matches nothing but names an existing file is kept, so
// shells that do not expand globs still work.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad input pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				matches = []string{pattern}
			}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run converts every file matched by the input patterns, writing per-file
// status lines to w and returning a summary. Per-file errors are logged
// and do not abort the batch.
func (c *Converter) Run(patterns []string, w io.Writer) (BatchResult, error) {
	files, err := Expand(patterns)
	if err != nil {
		return BatchResult{}, err
	}
	if len(files) == 0 {
		return BatchResult{}, fmt.Errorf("no input files match %v", patterns)
	}

	var result BatchResult
	for _, path := range files {
		profiles, err := profile.Load(path)
		if err != nil {
			result.Failed++
			c.record(path, "", "", statusFailed, "", err)
			fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
			continue
		}
		// Bundle physical-printer sections are not converted standalone;
		// their translated keys merge into the printer profile they name
		// (the "printer" key), or into every printer in the bundle when
		// they name none.
		physicals := make(map[string]map[string]any)
		rest := profiles[:0]
		for _, p := range profiles {
			if p.Type != types.ProfilePhysicalPrinter {
				rest = append(rest, p)
				continue
			}
			tr := transform.New(types.ProfilePhysicalPrinter, p.Flavor, c.cfg.NozzleSize)
			m, err := tr.Apply(p.Keys)
			if err != nil {
				result.Failed++
				c.record(path, p.Name, string(p.Type), statusFailed, "", err)
				fmt.Fprintf(w, "failed:  %s (%v)\n", p.Name, err)
				continue
			}
			physicals[p.Keys["printer"]] = m
		}

		for _, p := range rest {
			extra := physicals[p.Name]
			if extra == nil {
				extra = physicals[""]
			}
			st, outPath, err := c.convertProfile(p, extra)
			c.record(path, p.Name, string(p.Type), st, outPath, err)
			switch st {
			case statusConverted:
				result.Converted++
				fmt.Fprintf(w, "converted: %s -> %s\n", p.Name, outPath)
			case statusSkipped:
				result.Skipped++
				fmt.Fprintf(w, "skipped: %s (output exists)\n", p.Name)
			case statusFailed:
				result.Failed++
				fmt.Fprintf(w, "failed:  %s (%v)\n", p.Name, err)
			}
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())

	if c.cfg.ReportPath != "" {
		if err := c.writeReport(result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// convertProfile translates one source profile and writes the JSON output
// according to the existing-output policy. extra holds physical-printer
// keys from the same bundle, merged into printer profiles only.
func (c *Converter) convertProfile(p *types.SourceProfile, extra map[string]any) (status, string, error) {
	t := p.Type
	if t == "" {
		detected, _, ok := mapping.Detect(p.Keys)
		if !ok {
			return statusFailed, "", ErrUnsupportedProfile
		}
		t = detected
	}
	p.Type = t

	tr := transform.New(t, p.Flavor, c.cfg.NozzleSize)
	dst, err := tr.Apply(p.Keys)
	if err != nil {
		return statusFailed, "", err
	}

	if t == types.ProfilePrinter {
		for k, v := range c.physical {
			dst[k] = v
		}
		for k, v := range extra {
			dst[k] = v
		}
	}

	dst["name"] = p.Name
	dst[t.SettingsIDKey()] = p.Name
	dst["from"] = "User"
	dst["version"] = orcaVersion

	outDir := filepath.Join(c.cfg.OutDir, t.OutputDir())
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return statusFailed, "", fmt.Errorf("creating %s: %w", outDir, err)
	}
	outPath := filepath.Join(outDir, safeName(p.Name)+".json")

	if _, err := os.Stat(outPath); err == nil {
		switch c.cfg.OnExisting {
		case types.PolicyOverwrite:
			// fall through to write
		case types.PolicyMerge:
			merged, err := mergeExisting(outPath, dst)
			if err != nil {
				return statusFailed, outPath, err
			}
			dst = merged
		default:
			return statusSkipped, outPath, nil
		}
	}

	if err := writeJSON(outPath, dst); err != nil {
		return statusFailed, outPath, err
	}
	return statusConverted, outPath, nil
}

// mergeExisting unions the keys of the existing output file with the fresh
// conversion. Existing values win on conflict.
func mergeExisting(path string, fresh map[string]any) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading existing output: %w", err)
	}
	existing := make(map[string]any)
	if err := json.Unmarshal(data, &existing); err != nil {
		return nil, fmt.Errorf("parsing existing output %s: %w", path, err)
	}
	for k, v := range fresh {
		if _, ok := existing[k]; !ok {
			existing[k] = v
		}
	}
	return existing, nil
}

// writeJSON writes the profile as pretty JSON. Map marshalling sorts keys,
// so repeated runs produce byte-identical output.
func writeJSON(path string, dst map[string]any) error {
	data, err := json.MarshalIndent(dst, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// safeName strips path separators from a profile name so a bundle section
// name cannot escape the output directory.
func safeName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ReplaceAll(name, string(filepath.Separator), "_")
}
