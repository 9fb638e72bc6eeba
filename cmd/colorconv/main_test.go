package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-gamemath/color"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"red", 0xFFFF0000},
		{"White", 0xFFFFFFFF},
		{"#f00", 0xFFFF0000},
		{"#336699cc", 0xCC336699},
		{"0xFF00FF00", 0xFF00FF00},
		{"4278190335", 0xFF0000FF},
		{"ff8000", 0xFFFF8000},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	_, err := parseColor("#xyz")
	assert.ErrorIs(t, err, color.ErrInvalidHex)

	_, err = parseColor("notacolor")
	assert.ErrorIs(t, err, errUnrecognizedColor)
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	describe(&buf, "red", 0xFFFF0000)

	out := buf.String()
	assert.Contains(t, out, "0xFFFF0000")
	assert.Contains(t, out, "#ff0000ff")
	assert.Contains(t, out, "rgba(255, 0, 0, 255)")
	assert.Contains(t, out, "grayscale: 54")
	assert.Contains(t, out, "hsl:       0.0000 1.0000 0.5000")
}
