// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/theophile/superslicer-to-orca/internal/mapping"
	"github.com/theophile/superslicer-to-orca/pkg/types"
)

// nilSentinel marks a source value as "use the destination default". The
// key is dropped entirely so Orca fills in its own default.
const nilSentinel = "nil"

// Transformer converts one source profile's keys to destination keys. It
// carries the transient per-file state (combination flags, temperature
// maximum) that the post-processing step turns into derived fields. Create
// a fresh Transformer per input file.
type Transformer struct {
	Type       types.ProfileType
	Flavor     types.Flavor
	NozzleSize float64 // millimeters; 0 means infer from layer height

	table mapping.Table

	// flags recorded during the main pass, combined into derived enums
	// by the post-processors. The seen booleans distinguish "flag absent"
	// from "flag false" so absent flags emit no derived field.
	externalPerimetersFirst bool
	infillFirst             bool
	orderingSeen            bool
	ironing                 bool
	ironingSeen             bool
	ironingType             string

	// maxTemp is the running maximum of the nozzle temperature fields,
	// used to derive the filament temperature range.
	maxTemp float64
}

// New returns a Transformer for the given profile type.
func New(t types.ProfileType, flavor types.Flavor, nozzleSize float64) *Transformer {
	return &Transformer{
		Type:       t,
		Flavor:     flavor,
		NozzleSize: nozzleSize,
		table:      mapping.ForType(t),
	}
}

// transformFunc produces the destination entries for one special-case
// source key.
type transformFunc func(tr *Transformer, value string, src map[string]string) (map[string]any, error)

// Apply runs the per-key pass over the source keys and, for print and
// filament profiles, the derived-field post-processing. The result maps
// destination keys to strings or string slices.
func (tr *Transformer) Apply(src map[string]string) (map[string]any, error) {
	dst := make(map[string]any)

	for key, value := range src {
		targets, known := tr.table[key]
		if !known {
			continue
		}
		if strings.TrimSpace(value) == nilSentinel {
			continue
		}
		if tr.Type == types.ProfilePrint && speedKeys[key] {
			continue // resolved by the speed post-processor
		}
		if tr.track(key, value) {
			continue
		}
		if fn, ok := specials[key]; ok {
			out, err := fn(tr, value, src)
			if err != nil {
				return nil, fmt.Errorf("converting %s: %w", key, err)
			}
			for k, v := range out {
				dst[k] = v
			}
			continue
		}
		for _, t := range targets {
			dst[t] = value
		}
	}

	switch tr.Type {
	case types.ProfilePrint:
		if err := tr.applySpeeds(src, dst); err != nil {
			return nil, err
		}
		if tr.orderingSeen {
			dst["wall_infill_order"] = tr.wallInfillOrder()
		}
		if tr.ironingSeen {
			dst["ironing_type"] = tr.ironingMode()
		}
	case types.ProfileFilament:
		if tr.maxTemp > 0 {
			dst["nozzle_temperature_range_high"] = FormatDecimal(tr.maxTemp)
		}
	}

	return dst, nil
}

// track records combination flags instead of emitting them. It reports
// whether the key was consumed.
func (tr *Transformer) track(key, value string) bool {
	switch key {
	case "external_perimeters_first":
		tr.externalPerimetersFirst = isTrue(value)
		tr.orderingSeen = true
	case "infill_first":
		tr.infillFirst = isTrue(value)
		tr.orderingSeen = true
	case "ironing":
		tr.ironing = isTrue(value)
		tr.ironingSeen = true
	case "ironing_type":
		tr.ironingType = strings.TrimSpace(value)
	default:
		return false
	}
	return true
}

// wallInfillOrder combines the two tracked ordering booleans into Orca's
// print-order dropdown value.
func (tr *Transformer) wallInfillOrder() string {
	switch {
	case tr.infillFirst && tr.externalPerimetersFirst:
		return "infill/outer wall/inner wall"
	case tr.infillFirst:
		return "infill/inner wall/outer wall"
	case tr.externalPerimetersFirst:
		return "outer wall/inner wall/infill"
	default:
		return "inner wall/outer wall/infill"
	}
}

// ironingMode combines the tracked ironing enable flag and type into Orca's
// ironing dropdown value.
func (tr *Transformer) ironingMode() string {
	if !tr.ironing {
		return "no ironing"
	}
	switch tr.ironingType {
	case "topmost":
		return "topmost only"
	case "solid":
		return "all solid layer"
	default:
		return "top surface"
	}
}

// nozzle returns the nozzle diameter to resolve percent widths against:
// the explicit override if given, otherwise twice the layer height snapped
// to the nearest common nozzle size.
func (tr *Transformer) nozzle(src map[string]string) (float64, error) {
	if tr.NozzleSize > 0 {
		return tr.NozzleSize, nil
	}
	lh, ok := src["layer_height"]
	if !ok {
		return 0, fmt.Errorf("nozzle size not given and layer_height missing")
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(lh), 64)
	if err != nil || h <= 0 {
		return 0, fmt.Errorf("nozzle size not given and layer_height %q unusable", lh)
	}
	return snapNozzle(2 * h), nil
}

func snapNozzle(d float64) float64 {
	best := mapping.CommonNozzleSizes[0]
	for _, s := range mapping.CommonNozzleSizes {
		if abs(s-d) < abs(best-d) {
			best = s
		}
	}
	return best
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func isTrue(v string) bool {
	switch strings.TrimSpace(v) {
	case "1", "true", "True":
		return true
	}
	return false
}

// specials registers the value transforms that go beyond a key rename.
// Keys not present here use the plain table mapping.
var specials = map[string]transformFunc{
	// print
	"complete_objects":                   objectSequence,
	"fill_pattern":                       infillPattern("sparse_infill_pattern"),
	"top_fill_pattern":                   infillPattern("top_surface_pattern"),
	"bottom_fill_pattern":                infillPattern("bottom_surface_pattern"),
	"solid_fill_pattern":                 infillPattern("internal_solid_infill_pattern"),
	"seam_position":                      seamPosition,
	"support_material_style":             supportStyle,
	"support_material_pattern":           supportBasePattern,
	"support_material_interface_pattern": supportInterfacePattern,
	"output_filename_format":             filenameFormat,
	"first_layer_height":                 firstLayerHeight,
	"extrusion_width":                    lineWidth("line_width"),
	"perimeter_extrusion_width":          lineWidth("inner_wall_line_width"),
	"external_perimeter_extrusion_width": lineWidth("outer_wall_line_width"),
	"first_layer_extrusion_width":        lineWidth("initial_layer_line_width"),
	"infill_extrusion_width":             lineWidth("sparse_infill_line_width"),
	"solid_infill_extrusion_width":       lineWidth("internal_solid_infill_line_width"),
	"top_infill_extrusion_width":         lineWidth("top_surface_line_width"),
	"support_material_extrusion_width":   lineWidth("support_line_width"),

	// filament
	"filament_type":                 filamentType,
	"filament_max_volumetric_speed": maxVolumetricSpeed,
	"bridge_fan_speed":              fanSpeed("overhang_fan_speed"),
	"start_filament_gcode":          gcodeBlock("filament_start_gcode"),
	"end_filament_gcode":            gcodeBlock("filament_end_gcode"),
	"temperature":                   nozzleTemp("nozzle_temperature"),
	"first_layer_temperature":       nozzleTemp("nozzle_temperature_initial_layer"),
	"extrusion_multiplier":          flowRatio,

	// printer
	"gcode_flavor":       gcodeFlavor,
	"bed_shape":          bedShape,
	"nozzle_diameter":    commaList("nozzle_diameter"),
	"start_gcode":        gcodeBlock("machine_start_gcode"),
	"end_gcode":          gcodeBlock("machine_end_gcode"),
	"before_layer_gcode": gcodeBlock("before_layer_change_gcode"),
	"layer_gcode":        gcodeBlock("layer_change_gcode"),
	"toolchange_gcode":   gcodeBlock("change_filament_gcode"),
	"pause_print_gcode":  gcodeBlock("machine_pause_gcode"),

	// physical printer
	"host_type": hostType,
}

// objectSequence coerces the complete_objects boolean into Orca's
// sequence dropdown.
func objectSequence(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	seq := "by layer"
	if isTrue(value) {
		seq = "by object"
	}
	return map[string]any{"print_sequence": seq}, nil
}

func infillPattern(dst string) transformFunc {
	return func(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
		if mapped, ok := mapping.InfillPatterns[strings.TrimSpace(value)]; ok {
			value = mapped
		}
		return map[string]any{dst: value}, nil
	}
}

func seamPosition(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	pos, ok := mapping.SeamPositions[strings.TrimSpace(value)]
	if !ok {
		pos = "aligned"
	}
	return map[string]any{"seam_position": pos}, nil
}

// supportStyle expands the single legacy style enum into Orca's
// support_type + support_style pair.
func supportStyle(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	style, ok := mapping.SupportStyles[strings.TrimSpace(value)]
	if !ok {
		style = mapping.SupportStyle{Type: "normal(auto)", Style: "default"}
	}
	return map[string]any{
		"support_type":  style.Type,
		"support_style": style.Style,
	}, nil
}

func supportBasePattern(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	v := strings.TrimSpace(value)
	if !mapping.SupportBasePatterns[v] {
		v = "default"
	}
	return map[string]any{"support_base_pattern": v}, nil
}

func supportInterfacePattern(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	v := strings.TrimSpace(value)
	if !mapping.SupportInterfacePatterns[v] {
		v = "auto"
	}
	return map[string]any{"support_interface_pattern": v}, nil
}

var bracketVarRe = regexp.MustCompile(`\[([a-zA-Z0-9_]+)\]`)

// filenameFormat rewrites [placeholder] variables to the {placeholder}
// style Orca's filename templates use.
func filenameFormat(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	return map[string]any{"filename_format": bracketVarRe.ReplaceAllString(value, "{$1}")}, nil
}

// firstLayerHeight resolves a percent first layer height against the
// absolute layer height.
func firstLayerHeight(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	v, err := PercentToMM(src["layer_height"], value)
	if err != nil {
		return nil, err
	}
	return map[string]any{"initial_layer_print_height": v}, nil
}

// lineWidth resolves percent extrusion widths against the nozzle diameter.
func lineWidth(dst string) transformFunc {
	return func(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
		if !IsPercent(value) {
			return map[string]any{dst: value}, nil
		}
		nozzle, err := tr.nozzle(src)
		if err != nil {
			return nil, err
		}
		pct, err := parsePercent(value)
		if err != nil {
			return nil, err
		}
		return map[string]any{dst: FormatDecimal(nozzle * pct / 100)}, nil
	}
}

func filamentType(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	v := strings.TrimSpace(value)
	if mapped, ok := mapping.FilamentTypes[v]; ok {
		v = mapped
	}
	return map[string]any{"filament_type": v}, nil
}

// maxVolumetricSpeed replaces SuperSlicer's "0 = unlimited" with a
// per-material default, since Orca treats 0 as "do not extrude".
func maxVolumetricSpeed(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	v := strings.TrimSpace(value)
	f, err := strconv.ParseFloat(v, 64)
	if err == nil && f > 0 {
		return map[string]any{"filament_max_volumetric_speed": v}, nil
	}
	material := strings.TrimSpace(src["filament_type"])
	if mapped, ok := mapping.FilamentTypes[material]; ok {
		material = mapped
	}
	def, ok := mapping.VolumetricSpeedDefaults[material]
	if !ok {
		def = "10"
	}
	return map[string]any{"filament_max_volumetric_speed": def}, nil
}

// fanSpeed converts the -1 "disabled" sentinel to 0%.
func fanSpeed(dst string) transformFunc {
	return func(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing fan speed %q: %w", value, err)
		}
		if f < 0 {
			f = 0
		}
		return map[string]any{dst: FormatDecimal(f)}, nil
	}
}

// nozzleTemp emits the temperature and keeps the running maximum for the
// derived temperature-range field.
func nozzleTemp(dst string) transformFunc {
	return func(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && f > tr.maxTemp {
			tr.maxTemp = f
		}
		return map[string]any{dst: strings.TrimSpace(value)}, nil
	}
}

// flowRatio converts a percent extrusion multiplier to Orca's ratio form.
func flowRatio(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	v, err := PercentToRatio(value)
	if err != nil {
		return nil, err
	}
	return map[string]any{"filament_flow_ratio": v}, nil
}

func gcodeFlavor(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	v, ok := mapping.GcodeFlavors[strings.TrimSpace(value)]
	if !ok {
		v = "marlin"
	}
	return map[string]any{"gcode_flavor": v}, nil
}

// bedShape splits "0x0,250x0,250x210,0x210" into the point list Orca
// stores for printable_area.
func bedShape(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	points := strings.Split(strings.TrimSpace(value), ",")
	for i, p := range points {
		points[i] = strings.TrimSpace(p)
	}
	return map[string]any{"printable_area": points}, nil
}

// commaList emits a comma-separated per-extruder value as a string slice.
func commaList(dst string) transformFunc {
	return func(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
		parts := strings.Split(value, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return map[string]any{dst: parts}, nil
	}
}

func hostType(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
	v, ok := mapping.HostTypes[strings.TrimSpace(value)]
	if !ok {
		v = "octoprint"
	}
	return map[string]any{"host_type": v}, nil
}

// gcodeBlock unquotes and unescapes a custom g-code value. SuperSlicer
// stores multi-line blocks on one INI line with literal \n escapes,
// optionally wrapped in double quotes.
func gcodeBlock(dst string) transformFunc {
	return func(tr *Transformer, value string, src map[string]string) (map[string]any, error) {
		return map[string]any{dst: UnescapeGcode(value)}, nil
	}
}

// UnescapeGcode strips an optional surrounding quote pair and rewrites the
// INI escapes (\n, \", \\) to their literal characters.
func UnescapeGcode(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		v = v[1 : len(v)-1]
	}
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' || i+1 == len(v) {
			b.WriteByte(v[i])
			continue
		}
		switch v[i+1] {
		case 'n':
			b.WriteByte('\n')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(v[i])
			continue
		}
		i++
	}
	return b.String()
}
