// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExistingPolicy selects what happens when an output file already exists.
type ExistingPolicy string

const (
	// PolicySkip leaves the existing file untouched and counts the input
	// as skipped.
	PolicySkip ExistingPolicy = "skip"

	// PolicyOverwrite replaces the existing file with the fresh conversion.
	PolicyOverwrite ExistingPolicy = "overwrite"

	// PolicyMerge unions the existing JSON keys with the fresh conversion,
	// preferring existing values on conflict.
	PolicyMerge ExistingPolicy = "merge"
)

// Valid reports whether p is one of the recognized policies.
func (p ExistingPolicy) Valid() bool {
	switch p {
	case PolicySkip, PolicyOverwrite, PolicyMerge:
		return true
	}
	return false
}

// ConvertConfig holds the settings for a conversion run. Values come from
// the config file / environment via viper, overridden by command-line flags.
type ConvertConfig struct {
	// OutDir is the base output directory. Converted profiles land in
	// OutDir/process/, OutDir/filament/, OutDir/machine/.
	OutDir string `json:"outdir" yaml:"outdir"`

	// OnExisting selects the policy for pre-existing output files
	// (skip, overwrite, or merge; default skip).
	OnExisting ExistingPolicy `json:"on_existing" yaml:"on_existing"`

	// NozzleSize is the nozzle diameter in millimeters used to resolve
	// percent-based extrusion widths. Zero means "infer from layer height".
	NozzleSize float64 `json:"nozzle_size,omitempty" yaml:"nozzle_size,omitempty"`

	// PhysicalPrinter is the path of a physical-printer INI file whose
	// translated keys are merged into every converted printer profile.
	PhysicalPrinter string `json:"physical_printer,omitempty" yaml:"physical_printer,omitempty"`

	// Force creates the output directory tree if it does not exist.
	// Without it a missing output directory is a fatal error.
	Force bool `json:"force" yaml:"force"`

	// ReportPath, when set, receives a YAML summary of the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`
}
