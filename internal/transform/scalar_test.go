// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"5", true},
		{"0.2", true},
		{"-1", true},
		{"42.75", true},
		{"50%", false},
		{"", false},
		{"abc", false},
		{"1e3", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDecimal(tt.in), "IsDecimal(%q)", tt.in)
	}
}

func TestIsPercent(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"50%", true},
		{"112.5%", true},
		{"-20%", true},
		{"5", false},
		{"%", false},
		{"", false},
		{"50 %", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPercent(tt.in), "IsPercent(%q)", tt.in)
	}
}

func TestPercentToMM(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		value     string
		want      string
		wantErr   error
	}{
		{name: "percent of absolute", reference: "10", value: "50%", want: "5"},
		{name: "non-percent passes through", reference: "10", value: "5", want: "5"},
		{name: "rounds to one decimal", reference: "0.4", value: "112.5%", want: "0.5"},
		{name: "strips trailing zeros", reference: "40", value: "50%", want: "20"},
		{name: "percent reference is unresolvable", reference: "80%", value: "50%", wantErr: ErrUnresolvable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PercentToMM(tt.reference, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMMToPercent(t *testing.T) {
	got, err := MMToPercent("40", "20")
	require.NoError(t, err)
	assert.Equal(t, "50%", got)

	got, err = MMToPercent("40", "30%")
	require.NoError(t, err)
	assert.Equal(t, "30%", got, "percent value passes through")

	_, err = MMToPercent("80%", "20")
	require.ErrorIs(t, err, ErrUnresolvable)

	_, err = MMToPercent("0", "20")
	require.ErrorIs(t, err, ErrUnresolvable, "zero reference has no percent form")
}

func TestPercentToRatio(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"150%", "1.5"},
		{"100%", "1"},
		{"300%", "2"}, // clamped at the ceiling
		{"200%", "2"},
		{"1.2", "1.2"}, // already a ratio
	}
	for _, tt := range tests {
		got, err := PercentToRatio(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "PercentToRatio(%q)", tt.in)
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "5", FormatDecimal(5.0))
	assert.Equal(t, "37.5", FormatDecimal(37.5))
	assert.Equal(t, "42", FormatDecimal(41.96))
	assert.Equal(t, "0.4", FormatDecimal(0.4))
}
