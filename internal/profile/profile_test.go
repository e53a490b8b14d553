// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/theophile/superslicer-to-orca/pkg/types"
)

func writeProfile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const filamentINI = `# generated by SuperSlicer 2.5.59 on 2024-01-15 at 10:32:01 UTC
bed_temperature = 60
fan_always_on = 1
filament_colour = #FF8000
filament_diameter = 1.75
filament_type = PLA
first_layer_temperature = 215
temperature = 210
start_filament_gcode = "; filament start\nM900 K0.05"
`

func TestLoad_SingleProfile(t *testing.T) {
	path := writeProfile(t, "Generic PLA.ini", filamentINI)

	profiles, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(profiles))
	}

	p := profiles[0]
	if p.Name != "Generic PLA" {
		t.Errorf("name = %q, want %q", p.Name, "Generic PLA")
	}
	if p.Flavor != types.FlavorSuperSlicer {
		t.Errorf("flavor = %q, want SuperSlicer", p.Flavor)
	}
	if p.Type != "" {
		t.Errorf("plain files carry no type hint, got %q", p.Type)
	}
	if got := p.Keys["temperature"]; got != "210" {
		t.Errorf("temperature = %q, want 210", got)
	}
	// The colour value starts with # and must survive inline-comment
	// handling.
	if got := p.Keys["filament_colour"]; got != "#FF8000" {
		t.Errorf("filament_colour = %q, want #FF8000", got)
	}
}

func TestLoad_UnknownFlavor(t *testing.T) {
	path := writeProfile(t, "mystery.ini", "layer_height = 0.2\nperimeters = 3\n")

	_, err := Load(path)
	if !errors.Is(err, ErrUnknownFlavor) {
		t.Fatalf("err = %v, want ErrUnknownFlavor", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_Bundle(t *testing.T) {
	bundle := `# generated by PrusaSlicer 2.7.1 on 2024-02-02 at 18:00:00 UTC
[print:0.20mm QUALITY]
layer_height = 0.2
perimeters = 2

[filament:Prusament PLA]
temperature = 215
filament_type = PLA

[printer:Original Prusa MK4]
nozzle_diameter = 0.4
retract_length = 0.7

[physical_printer:workshop]
print_host = 192.168.1.50
host_type = prusalink

[presets]
print = 0.20mm QUALITY
`
	path := writeProfile(t, "config_bundle.ini", bundle)

	profiles, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(profiles) != 4 {
		t.Fatalf("got %d profiles, want 4", len(profiles))
	}

	byType := make(map[types.ProfileType]*types.SourceProfile)
	for _, p := range profiles {
		byType[p.Type] = p
		if p.Flavor != types.FlavorPrusaSlicer {
			t.Errorf("%s: flavor = %q, want PrusaSlicer", p.Name, p.Flavor)
		}
	}

	if p := byType[types.ProfilePrint]; p == nil || p.Name != "0.20mm QUALITY" {
		t.Errorf("print profile = %+v, want name %q", p, "0.20mm QUALITY")
	}
	if p := byType[types.ProfileFilament]; p == nil || p.Keys["temperature"] != "215" {
		t.Errorf("filament profile = %+v, want temperature 215", p)
	}
	if p := byType[types.ProfilePrinter]; p == nil || p.Name != "Original Prusa MK4" {
		t.Errorf("printer profile = %+v, want name %q", p, "Original Prusa MK4")
	}
	if p := byType[types.ProfilePhysicalPrinter]; p == nil || p.Keys["host_type"] != "prusalink" {
		t.Errorf("physical printer profile = %+v, want host_type prusalink", p)
	}
}

func TestDetectFlavor(t *testing.T) {
	tests := []struct {
		name string
		data string
		want types.Flavor
	}{
		{
			name: "superslicer",
			data: "# generated by SuperSlicer 2.5.59 on 2024-01-15\nlayer_height = 0.2\n",
			want: types.FlavorSuperSlicer,
		},
		{
			name: "prusaslicer",
			data: "# generated by PrusaSlicer 2.7.1+win64 on 2024-02-02\n",
			want: types.FlavorPrusaSlicer,
		},
		{
			name: "header not on first line",
			data: "# some other comment\n# generated by SuperSlicer 2.4\n",
			want: types.FlavorSuperSlicer,
		},
		{
			name: "unrelated slicer",
			data: "# generated by Cura 5.0\n",
			want: types.FlavorUnknown,
		},
		{
			name: "no header",
			data: "layer_height = 0.2\n",
			want: types.FlavorUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFlavor([]byte(tt.data)); got != tt.want {
				t.Errorf("DetectFlavor = %q, want %q", got, tt.want)
			}
		})
	}
}
