// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProfileType identifies which kind of slicer profile an input file holds.
type ProfileType string

const (
	// ProfilePrint is a print/process profile (layer heights, speeds, walls).
	ProfilePrint ProfileType = "print"

	// ProfileFilament is a filament profile (temperatures, cooling, flow).
	ProfileFilament ProfileType = "filament"

	// ProfilePrinter is a printer/machine profile (bed shape, limits, g-code).
	ProfilePrinter ProfileType = "printer"

	// ProfilePhysicalPrinter is a secondary profile holding network/host
	// connection settings. It is never converted on its own; its keys are
	// merged into a printer profile.
	ProfilePhysicalPrinter ProfileType = "physical_printer"
)

// OutputDir returns the OrcaSlicer user-folder subdirectory for profiles of
// this type. Orca calls print profiles "process" and printer profiles
// "machine".
func (t ProfileType) OutputDir() string {
	switch t {
	case ProfilePrint:
		return "process"
	case ProfilePrinter, ProfilePhysicalPrinter:
		return "machine"
	default:
		return string(t)
	}
}

// SettingsIDKey returns the destination metadata key that pairs with "name"
// in a converted profile of this type.
func (t ProfileType) SettingsIDKey() string {
	switch t {
	case ProfilePrint:
		return "print_settings_id"
	case ProfilePrinter, ProfilePhysicalPrinter:
		return "printer_settings_id"
	default:
		return "filament_settings_id"
	}
}

// OrcaType returns the value of the "type" metadata field OrcaSlicer expects
// for profiles of this type.
func (t ProfileType) OrcaType() string {
	switch t {
	case ProfilePrint:
		return "process"
	case ProfilePrinter, ProfilePhysicalPrinter:
		return "machine"
	default:
		return "filament"
	}
}

// Flavor identifies the slicer application that generated a source profile,
// detected from its "# generated by ..." header comment.
type Flavor string

const (
	FlavorSuperSlicer Flavor = "SuperSlicer"
	FlavorPrusaSlicer Flavor = "PrusaSlicer"
	FlavorUnknown     Flavor = ""
)

// SourceProfile is one parsed input profile: an unordered key/value mapping
// plus the flavor tag and a display name derived from the filename or, for
// bundled files, the section header.
type SourceProfile struct {
	// Name is the profile name used for the output file and the
	// name/settings-id metadata pair.
	Name string `json:"name" yaml:"name"`

	// Path is the input file the profile was read from.
	Path string `json:"path" yaml:"path"`

	// Flavor is the slicer application that wrote the file.
	Flavor Flavor `json:"flavor" yaml:"flavor"`

	// Type is the profile type when it is known up front (bundled files
	// name it in the section header). Empty means "detect from keys".
	Type ProfileType `json:"type,omitempty" yaml:"type,omitempty"`

	// Keys holds the raw key/value pairs from the INI text.
	Keys map[string]string `json:"keys" yaml:"keys"`
}
