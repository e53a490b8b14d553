// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapping

import (
	"testing"

	"github.com/theophile/superslicer-to-orca/pkg/types"
)

// keysFromTable builds an input that matches n keys of a table.
func keysFromTable(t *testing.T, table Table, n int) map[string]string {
	t.Helper()
	if len(table) < n {
		t.Fatalf("table has only %d keys, need %d", len(table), n)
	}
	keys := make(map[string]string, n)
	for k := range table {
		if len(keys) == n {
			break
		}
		keys[k] = "1"
	}
	return keys
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		want  types.ProfileType
	}{
		{name: "print", table: Print, want: types.ProfilePrint},
		{name: "filament", table: Filament, want: types.ProfileFilament},
		{name: "printer", table: Printer, want: types.ProfilePrinter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := keysFromTable(t, tt.table, MinMatchCount)
			got, matches, ok := Detect(keys)
			if !ok {
				t.Fatalf("Detect: no type found for %d %s keys", len(keys), tt.name)
			}
			if got != tt.want {
				t.Errorf("Detect = %q, want %q", got, tt.want)
			}
			if matches < MinMatchCount {
				t.Errorf("matches = %d, want >= %d", matches, MinMatchCount)
			}
		})
	}
}

func TestDetect_BelowThreshold(t *testing.T) {
	keys := keysFromTable(t, Print, MinMatchCount-1)
	_, matches, ok := Detect(keys)
	if ok {
		t.Error("Detect should report unsupported below the match threshold")
	}
	if matches != MinMatchCount-1 {
		t.Errorf("matches = %d, want %d", matches, MinMatchCount-1)
	}
}

func TestDetect_EmptyInput(t *testing.T) {
	if _, _, ok := Detect(map[string]string{}); ok {
		t.Error("Detect should report unsupported for empty input")
	}
}

func TestDetect_TieBreakIsStable(t *testing.T) {
	// Keys shared by the print and filament tables would tie; the fixed
	// priority order must pick print every time.
	keys := make(map[string]string)
	for k := range Print {
		if _, ok := Filament[k]; ok {
			keys[k] = "1"
		}
	}
	nPrint := 0
	nFilament := 0
	for k := range Print {
		if _, shared := keys[k]; !shared && nPrint < MinMatchCount {
			keys[k] = "1"
			nPrint++
		}
	}
	for k := range Filament {
		if _, taken := keys[k]; !taken && nFilament < nPrint {
			keys[k] = "1"
			nFilament++
		}
	}
	if nPrint != nFilament {
		t.Fatalf("fixture imbalance: %d print vs %d filament keys", nPrint, nFilament)
	}
	for i := 0; i < 20; i++ {
		got, _, ok := Detect(keys)
		if !ok {
			t.Fatal("Detect: no type found for tied input")
		}
		if got != types.ProfilePrint {
			t.Fatalf("tie broke to %q, want stable %q", got, types.ProfilePrint)
		}
	}
}

func TestMatchCount(t *testing.T) {
	keys := map[string]string{
		"layer_height":    "0.2",
		"perimeters":      "3",
		"no_such_setting": "1",
	}
	if got := MatchCount(keys, types.ProfilePrint); got != 2 {
		t.Errorf("MatchCount = %d, want 2", got)
	}
}

func TestForType_CoversAllTypes(t *testing.T) {
	for _, pt := range []types.ProfileType{
		types.ProfilePrint,
		types.ProfileFilament,
		types.ProfilePrinter,
		types.ProfilePhysicalPrinter,
	} {
		if ForType(pt) == nil {
			t.Errorf("ForType(%q) = nil", pt)
		}
	}
	if ForType(types.ProfileType("bogus")) != nil {
		t.Error("ForType should return nil for unknown types")
	}
}

func TestTables_MinimumSizes(t *testing.T) {
	// Each primary table must hold enough keys for the detector to ever
	// reach its threshold.
	for name, table := range map[string]Table{
		"print":    Print,
		"filament": Filament,
		"printer":  Printer,
	} {
		if len(table) < MinMatchCount {
			t.Errorf("%s table has %d keys, detector needs %d", name, len(table), MinMatchCount)
		}
	}
}
