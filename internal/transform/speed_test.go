// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"testing"

	"github.com/theophile/superslicer-to-orca/pkg/types"
)

func applySpeeds(t *testing.T, src map[string]string) map[string]any {
	t.Helper()
	tr := New(types.ProfilePrint, types.FlavorSuperSlicer, 0.4)
	dst := make(map[string]any)
	if err := tr.applySpeeds(src, dst); err != nil {
		t.Fatalf("applySpeeds: %v", err)
	}
	return dst
}

func TestApplySpeeds_AbsoluteValues(t *testing.T) {
	dst := applySpeeds(t, map[string]string{
		"perimeter_speed": "45",
		"infill_speed":    "80",
		"travel_speed":    "180",
	})
	if got := dst["inner_wall_speed"]; got != "45" {
		t.Errorf("inner_wall_speed = %v, want 45", got)
	}
	if got := dst["sparse_infill_speed"]; got != "80" {
		t.Errorf("sparse_infill_speed = %v, want 80", got)
	}
	if got := dst["travel_speed"]; got != "180" {
		t.Errorf("travel_speed = %v, want 180", got)
	}
}

func TestApplySpeeds_PercentOfSibling(t *testing.T) {
	dst := applySpeeds(t, map[string]string{
		"perimeter_speed":          "40",
		"external_perimeter_speed": "50%",
		"small_perimeter_speed":    "25%",
	})
	if got := dst["outer_wall_speed"]; got != "20" {
		t.Errorf("outer_wall_speed = %v, want 20 (50%% of 40)", got)
	}
	if got := dst["small_perimeter_speed"]; got != "10" {
		t.Errorf("small_perimeter_speed = %v, want 10 (25%% of 40)", got)
	}
}

func TestApplySpeeds_ChainedPercents(t *testing.T) {
	// top solid infill is a percent of solid infill, which is itself a
	// percent of sparse infill. Resolution order makes both work.
	dst := applySpeeds(t, map[string]string{
		"infill_speed":           "80",
		"solid_infill_speed":     "50%",
		"top_solid_infill_speed": "75%",
	})
	if got := dst["internal_solid_infill_speed"]; got != "40" {
		t.Errorf("internal_solid_infill_speed = %v, want 40", got)
	}
	if got := dst["top_surface_speed"]; got != "30" {
		t.Errorf("top_surface_speed = %v, want 30 (75%% of 40)", got)
	}
}

func TestApplySpeeds_DefaultSpeedBaseline(t *testing.T) {
	dst := applySpeeds(t, map[string]string{
		"default_speed":   "100",
		"perimeter_speed": "50%",
	})
	if got := dst["inner_wall_speed"]; got != "50" {
		t.Errorf("inner_wall_speed = %v, want 50 (50%% of default)", got)
	}
	if _, ok := dst["default_speed"]; ok {
		t.Error("default_speed has no destination field and must not be emitted")
	}
}

func TestApplySpeeds_UnanchoredPercentOmitted(t *testing.T) {
	// A percent with no baseline and no resolved sibling cannot be
	// resolved; the field is omitted rather than guessed.
	dst := applySpeeds(t, map[string]string{
		"first_layer_speed": "30%",
	})
	if _, ok := dst["initial_layer_speed"]; ok {
		t.Error("unresolvable percent speed should be omitted")
	}
}

func TestApplySpeeds_Rounding(t *testing.T) {
	dst := applySpeeds(t, map[string]string{
		"perimeter_speed":          "45",
		"external_perimeter_speed": "83.3%",
	})
	if got := dst["outer_wall_speed"]; got != "37.5" {
		t.Errorf("outer_wall_speed = %v, want 37.5", got)
	}
}

func TestApplySpeeds_ZeroMeansDefault(t *testing.T) {
	dst := applySpeeds(t, map[string]string{"gap_fill_speed": "0"})
	if _, ok := dst["gap_infill_speed"]; ok {
		t.Error("zero speed means 'use default' and must not be emitted")
	}
}

func TestOverhangSpeeds_ExpandedAndReversed(t *testing.T) {
	dst := applySpeeds(t, map[string]string{
		"overhangs_speed": "10,20,30,40",
	})
	want := map[string]string{
		"overhang_1_4_speed": "40",
		"overhang_2_4_speed": "30",
		"overhang_3_4_speed": "20",
		"overhang_4_4_speed": "10",
	}
	for key, val := range want {
		if got := dst[key]; got != val {
			t.Errorf("%s = %v, want %s", key, got, val)
		}
	}
}

func TestOverhangSpeeds_WrongTierCountIgnored(t *testing.T) {
	dst := applySpeeds(t, map[string]string{"overhangs_speed": "10,20"})
	if _, ok := dst["overhang_1_4_speed"]; ok {
		t.Error("a list without exactly four tiers should be ignored")
	}
}
