package a11y

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		value string
		want  [3]uint8
		ok    bool
	}{
		{"#000000", [3]uint8{0, 0, 0}, true},
		{"#fff", [3]uint8{255, 255, 255}, true},
		{"#1a2B3c", [3]uint8{26, 43, 60}, true},
		{"rgb(12, 34, 56)", [3]uint8{12, 34, 56}, true},
		{"white", [3]uint8{255, 255, 255}, true},
		{" Black ", [3]uint8{0, 0, 0}, true},
		{"rgb(300, 0, 0)", [3]uint8{}, false},
		{"#12", [3]uint8{}, false},
		{"var(--brand)", [3]uint8{}, false},
		{"", [3]uint8{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := parseColor(tt.value)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	white := [3]uint8{255, 255, 255}
	black := [3]uint8{0, 0, 0}

	// Black on white is the maximum ratio, 21:1.
	assert.InDelta(t, 21.0, contrastRatio(black, white), 0.01)

	// Same color is 1:1 and symmetric.
	assert.InDelta(t, 1.0, contrastRatio(white, white), 0.001)
	assert.Equal(
		t,
		contrastRatio(black, white),
		contrastRatio(white, black),
	)
}
