// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile reads SuperSlicer/PrusaSlicer INI profiles: flavor
// detection from the "generated by" header, plain single-profile files, and
// config bundles holding several profiles in typed sections.
package profile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/theophile/superslicer-to-orca/pkg/types"
)

// ErrUnknownFlavor is returned when a file carries no recognizable
// "# generated by ..." header, so the source application cannot be
// identified.
var ErrUnknownFlavor = errors.New("no recognizable 'generated by' header")

// generatedByPrefix introduces the header comment naming the source slicer.
const generatedByPrefix = "generated by"

// iniOptions keeps `;` inside custom g-code values intact; SuperSlicer
// writes g-code comments inline and the default INI reader would eat them.
var iniOptions = ini.LoadOptions{
	IgnoreInlineComment:      true,
	SkipUnrecognizableLines:  true,
	SpaceBeforeInlineComment: true,
}

// Load reads an INI profile file. A plain file yields one SourceProfile
// named after the file; a config bundle yields one per typed section.
func Load(path string) ([]*types.SourceProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	flavor := DetectFlavor(data)
	if flavor == types.FlavorUnknown {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFlavor)
	}

	f, err := ini.LoadSources(iniOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if profiles := splitBundle(f, path, flavor); len(profiles) > 0 {
		return profiles, nil
	}

	keys := sectionKeys(f.Section(ini.DefaultSection))
	if len(keys) == 0 {
		return nil, fmt.Errorf("%s: no key/value pairs found", path)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return []*types.SourceProfile{{
		Name:   name,
		Path:   path,
		Flavor: flavor,
		Keys:   keys,
	}}, nil
}

// DetectFlavor scans the comment lines for the "generated by" header and
// returns the slicer application that wrote the file.
func DetectFlavor(data []byte) types.Flavor {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "#") {
			continue
		}
		comment := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if !strings.HasPrefix(strings.ToLower(comment), generatedByPrefix) {
			continue
		}
		rest := strings.TrimSpace(comment[len(generatedByPrefix):])
		switch {
		case strings.HasPrefix(rest, "SuperSlicer"):
			return types.FlavorSuperSlicer
		case strings.HasPrefix(rest, "PrusaSlicer"):
			return types.FlavorPrusaSlicer
		}
	}
	return types.FlavorUnknown
}

// bundleSectionTypes maps a bundle section prefix to the profile type it
// declares.
var bundleSectionTypes = map[string]types.ProfileType{
	"print":            types.ProfilePrint,
	"filament":         types.ProfileFilament,
	"printer":          types.ProfilePrinter,
	"physical_printer": types.ProfilePhysicalPrinter,
}

// splitBundle extracts the typed sections of a config bundle. It returns
// nil when the file has none, meaning it is a plain single-profile file.
func splitBundle(f *ini.File, path string, flavor types.Flavor) []*types.SourceProfile {
	var profiles []*types.SourceProfile
	for _, section := range f.Sections() {
		prefix, name, ok := strings.Cut(section.Name(), ":")
		if !ok {
			continue
		}
		t, ok := bundleSectionTypes[prefix]
		if !ok {
			continue
		}
		keys := sectionKeys(section)
		if len(keys) == 0 {
			continue
		}
		profiles = append(profiles, &types.SourceProfile{
			Name:   name,
			Path:   path,
			Flavor: flavor,
			Type:   t,
			Keys:   keys,
		})
	}
	return profiles
}

func sectionKeys(s *ini.Section) map[string]string {
	keys := make(map[string]string, len(s.Keys()))
	for _, k := range s.Keys() {
		keys[k.Name()] = k.Value()
	}
	return keys
}
