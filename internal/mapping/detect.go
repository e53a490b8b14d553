// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapping

import "github.com/theophile/superslicer-to-orca/pkg/types"

// MinMatchCount is the minimum number of recognized keys a profile must
// share with a translation table before the detector will claim it.
const MinMatchCount = 10

// detectionOrder fixes the tie-break: when two types match the same number
// of keys, the one listed first wins. The order is stable across runs.
var detectionOrder = []types.ProfileType{
	types.ProfilePrint,
	types.ProfileFilament,
	types.ProfilePrinter,
	types.ProfilePhysicalPrinter,
}

// Detect returns the profile type whose translation table matches the most
// keys in the input, together with the match count. ok is false when no
// type reaches MinMatchCount.
func Detect(keys map[string]string) (t types.ProfileType, matches int, ok bool) {
	best := 0
	var bestType types.ProfileType
	for _, candidate := range detectionOrder {
		n := MatchCount(keys, candidate)
		if n > best {
			best = n
			bestType = candidate
		}
	}
	if best < MinMatchCount {
		return "", best, false
	}
	return bestType, best, true
}

// MatchCount counts how many input keys appear in the translation table for
// the given profile type.
func MatchCount(keys map[string]string, t types.ProfileType) int {
	table := ForType(t)
	n := 0
	for k := range keys {
		if _, ok := table[k]; ok {
			n++
		}
	}
	return n
}
