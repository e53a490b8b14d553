// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"strconv"
	"strings"
)

// speedStep is one slot in the fixed speed-resolution sequence. ref names
// the source speed whose already-resolved absolute value anchors a percent;
// an empty ref anchors against the default_speed baseline.
type speedStep struct {
	src string
	dst string
	ref string
}

// speedOrder fixes the resolution sequence so percent references to sibling
// speeds always find an absolute value. The order is part of the conversion
// contract: a percent external perimeter speed resolves against the
// perimeter speed computed two slots earlier, and so on down the chain.
var speedOrder = []speedStep{
	{"perimeter_speed", "inner_wall_speed", ""},
	{"external_perimeter_speed", "outer_wall_speed", "perimeter_speed"},
	{"small_perimeter_speed", "small_perimeter_speed", "perimeter_speed"},
	{"infill_speed", "sparse_infill_speed", ""},
	{"solid_infill_speed", "internal_solid_infill_speed", "infill_speed"},
	{"top_solid_infill_speed", "top_surface_speed", "solid_infill_speed"},
	{"support_material_speed", "support_speed", ""},
	{"support_material_interface_speed", "support_interface_speed", "support_material_speed"},
	{"bridge_speed", "bridge_speed", ""},
	{"gap_fill_speed", "gap_infill_speed", ""},
	{"first_layer_speed", "initial_layer_speed", ""},
	{"first_layer_infill_speed", "initial_layer_infill_speed", "infill_speed"},
	{"travel_speed", "travel_speed", ""},
}

// speedKeys marks which source keys the main per-key pass must leave to the
// post-processor.
var speedKeys = func() map[string]bool {
	m := map[string]bool{
		"default_speed":   true,
		"overhangs_speed": true,
	}
	for _, s := range speedOrder {
		m[s.src] = true
	}
	return m
}()

// overhangSpeedFields receives the expanded four-tier overhang speed list.
// The source lists tiers from most to least overhang; Orca names them the
// other way around.
var overhangSpeedFields = []string{
	"overhang_1_4_speed",
	"overhang_2_4_speed",
	"overhang_3_4_speed",
	"overhang_4_4_speed",
}

// applySpeeds resolves the speed parameters of a print profile into
// absolute values in dst. SuperSlicer allows most of them to be a percent
// of another speed (or of the default_speed baseline, which has no Orca
// counterpart); each slot is resolved in speedOrder so the reference is
// already absolute. A slot whose reference cannot be resolved is omitted
// rather than guessed.
func (tr *Transformer) applySpeeds(src map[string]string, dst map[string]any) error {
	baseline := 0.0
	if v, ok := src["default_speed"]; ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			baseline = f
		}
	}

	resolved := make(map[string]float64, len(speedOrder))
	for _, step := range speedOrder {
		raw, ok := src[step.src]
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == nilSentinel {
			continue
		}

		var abs float64
		if IsPercent(raw) {
			base := baseline
			if step.ref != "" {
				base = resolved[step.ref]
			}
			if base <= 0 {
				continue // no absolute anchor for this percent
			}
			pct, err := parsePercent(raw)
			if err != nil {
				return err
			}
			abs = base * pct / 100
		} else {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue // non-numeric speed, leave to Orca's default
			}
			abs = f
		}

		if abs <= 0 {
			continue // 0 means "use default" in the source format
		}
		resolved[step.src] = abs
		dst[step.dst] = FormatDecimal(abs)
	}

	tr.applyOverhangSpeeds(src, dst)
	return nil
}

// applyOverhangSpeeds expands the comma-separated four-tier overhang speed
// list into Orca's four named fields, reversing the tier order.
func (tr *Transformer) applyOverhangSpeeds(src map[string]string, dst map[string]any) {
	raw, ok := src["overhangs_speed"]
	if !ok {
		return
	}
	parts := strings.Split(raw, ",")
	if len(parts) != len(overhangSpeedFields) {
		return
	}
	for i, field := range overhangSpeedFields {
		v := strings.TrimSpace(parts[len(parts)-1-i])
		if v == "" || v == nilSentinel {
			continue
		}
		dst[field] = v
	}
}
