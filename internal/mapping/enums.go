// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapping

// InfillPatterns maps SuperSlicer/PrusaSlicer fill pattern names to Orca
// sparse-infill pattern names. Patterns Orca lacks fall back to the closest
// geometry.
var InfillPatterns = map[string]string{
	"3dhoneycomb":          "3dhoneycomb",
	"adaptivecubic":        "adaptivecubic",
	"alignedrectilinear":   "alignedrectilinear",
	"archimedeanchords":    "archimedeanchords",
	"concentric":           "concentric",
	"cubic":                "cubic",
	"grid":                 "grid",
	"gyroid":               "gyroid",
	"hilbertcurve":         "hilbertcurve",
	"honeycomb":            "honeycomb",
	"lightning":            "lightning",
	"line":                 "line",
	"monotonic":            "monotonic",
	"monotonicgapfill":     "monotonic",
	"monotoniclines":       "monotonicline",
	"octagramspiral":       "octagramspiral",
	"rectilinear":          "zig-zag",
	"sawtooth":             "zig-zag",
	"scatteredrectilinear": "zig-zag",
	"smooth":               "monotonic",
	"smoothhilbert":        "hilbertcurve",
	"smoothtriple":         "monotonic",
	"stars":                "tri-hexagon",
	"supportcubic":         "supportcubic",
	"triangles":            "triangles",
}

// SeamPositions maps seam placement modes. SuperSlicer's cost-based modes
// have no Orca equivalent and degrade to "nearest".
var SeamPositions = map[string]string{
	"aligned": "aligned",
	"cost":    "nearest",
	"hidden":  "nearest",
	"near":    "nearest",
	"nearest": "nearest",
	"random":  "random",
	"rear":    "back",
}

// GcodeFlavors maps firmware dialect names. Orca dropped the variants
// PrusaSlicer kept for antique firmwares; those degrade to plain marlin.
var GcodeFlavors = map[string]string{
	"klipper":        "klipper",
	"machinekit":     "marlin",
	"makerware":      "marlin",
	"marlin":         "marlin",
	"marlin2":        "marlin2",
	"no-extrusion":   "no-extrusion",
	"repetier":       "repetier",
	"reprap":         "reprapfirmware",
	"reprapfirmware": "reprapfirmware",
	"sailfish":       "marlin",
	"smoothie":       "smoothie",
	"sprinter":       "marlin",
	"teacup":         "teacup",
}

// HostTypes maps print-host kinds for physical printers. PrusaLink and
// PrusaConnect speak the OctoPrint API from Orca's point of view.
var HostTypes = map[string]string{
	"astrobox":     "astrobox",
	"duet":         "duet",
	"flashair":     "flashair",
	"klipper":      "octoprint",
	"mks":          "mks",
	"octoprint":    "octoprint",
	"prusaconnect": "octoprint",
	"prusalink":    "octoprint",
	"repetier":     "repetier",
}

// FilamentTypes maps material names that differ between the formats.
// Unlisted types pass through unchanged.
var FilamentTypes = map[string]string{
	"FLEX":  "TPU",
	"NYLON": "PA",
	"PET":   "PETG",
}

// SupportStyle is the pair of Orca fields a single legacy support style
// expands into.
type SupportStyle struct {
	Type  string // support_type
	Style string // support_style
}

// SupportStyles consolidates SuperSlicer's support_material_style into
// Orca's support_type + support_style pair.
var SupportStyles = map[string]SupportStyle{
	"grid":    {Type: "normal(auto)", Style: "grid"},
	"snug":    {Type: "normal(auto)", Style: "snug"},
	"organic": {Type: "tree(auto)", Style: "organic"},
	"tree":    {Type: "tree(auto)", Style: "tree_slim"},
}

// SupportBasePatterns is the set Orca accepts for support_base_pattern.
// Anything else falls back to "default".
var SupportBasePatterns = map[string]bool{
	"default":          true,
	"hollow":           true,
	"honeycomb":        true,
	"lightning":        true,
	"rectilinear":      true,
	"rectilinear-grid": true,
}

// SupportInterfacePatterns is the set Orca accepts for
// support_interface_pattern. Anything else falls back to "auto".
var SupportInterfacePatterns = map[string]bool{
	"auto":                   true,
	"concentric":             true,
	"rectilinear":            true,
	"rectilinear_interlaced": true,
}

// VolumetricSpeedDefaults supplies filament_max_volumetric_speed when the
// source profile left it at zero ("no limit" in SuperSlicer, which Orca does
// not model). Values are conservative per-material defaults in mm³/s.
var VolumetricSpeedDefaults = map[string]string{
	"ABS":  "12",
	"ASA":  "12",
	"PA":   "4",
	"PC":   "8",
	"PETG": "10",
	"PLA":  "15",
	"PVA":  "4",
	"TPU":  "3.5",
}

// CommonNozzleSizes lists the nozzle diameters a layer-height-derived guess
// snaps to, ascending.
var CommonNozzleSizes = []float64{0.15, 0.2, 0.25, 0.3, 0.35, 0.4, 0.5, 0.6, 0.8, 1.0}
