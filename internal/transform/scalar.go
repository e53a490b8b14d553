// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform converts individual parameter values between the
// SuperSlicer/PrusaSlicer INI representation and the OrcaSlicer JSON
// representation: scalar unit conversions, the per-key dispatch pass, and
// the speed post-processing pass for print profiles.
package transform

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnresolvable is returned when a percent value refers to a base that is
// itself a percent, so no absolute value can be computed.
var ErrUnresolvable = errors.New("percent value has no absolute base")

var (
	decimalRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
	percentRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?%$`)
)

// IsDecimal reports whether v is a plain decimal number.
func IsDecimal(v string) bool {
	return decimalRe.MatchString(strings.TrimSpace(v))
}

// IsPercent reports whether v is a percent value like "45%" or "112.5%".
func IsPercent(v string) bool {
	return percentRe.MatchString(strings.TrimSpace(v))
}

// PercentToMM resolves a possibly-percent value against an absolute
// reference. Non-percent values pass through unchanged. A percent reference
// cannot anchor a percent value and yields ErrUnresolvable.
func PercentToMM(reference, value string) (string, error) {
	value = strings.TrimSpace(value)
	if !IsPercent(value) {
		return value, nil
	}
	if IsPercent(reference) {
		return "", ErrUnresolvable
	}
	ref, err := strconv.ParseFloat(strings.TrimSpace(reference), 64)
	if err != nil {
		return "", fmt.Errorf("parsing reference %q: %w", reference, err)
	}
	pct, err := parsePercent(value)
	if err != nil {
		return "", err
	}
	return FormatDecimal(ref * pct / 100), nil
}

// MMToPercent expresses an absolute value as a percent of an absolute
// reference. Percent values pass through unchanged; a percent reference
// yields ErrUnresolvable.
func MMToPercent(reference, value string) (string, error) {
	value = strings.TrimSpace(value)
	if IsPercent(value) {
		return value, nil
	}
	if IsPercent(reference) {
		return "", ErrUnresolvable
	}
	ref, err := strconv.ParseFloat(strings.TrimSpace(reference), 64)
	if err != nil {
		return "", fmt.Errorf("parsing reference %q: %w", reference, err)
	}
	if ref == 0 {
		return "", ErrUnresolvable
	}
	abs, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", fmt.Errorf("parsing value %q: %w", value, err)
	}
	return FormatDecimal(abs/ref*100) + "%", nil
}

// ratioCeiling caps percent-to-ratio conversions. Orca rejects flow-style
// ratios above 2.
const ratioCeiling = 2.0

// PercentToRatio converts "150%" to "1.5", clamping at 2. Non-percent
// values pass through unchanged.
func PercentToRatio(value string) (string, error) {
	value = strings.TrimSpace(value)
	if !IsPercent(value) {
		return value, nil
	}
	pct, err := parsePercent(value)
	if err != nil {
		return "", err
	}
	ratio := pct / 100
	if ratio > ratioCeiling {
		ratio = ratioCeiling
	}
	return strconv.FormatFloat(ratio, 'f', -1, 64), nil
}

// FormatDecimal rounds to one decimal place and strips trailing zeros, so
// resolved speeds read "42" and "37.5" rather than "42.0000".
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', -1, 64)
}

func parsePercent(v string) (float64, error) {
	n := strings.TrimSuffix(strings.TrimSpace(v), "%")
	pct, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing percent %q: %w", v, err)
	}
	return pct, nil
}
