package outwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMaxLabelWidth(t *testing.T) {
	tests := []struct {
		name     string
		override int
		want     int
	}{
		{"standard terminal", 80, 35},
		{"narrow terminal clamps low", 40, 10},
		{"wide terminal clamps high", 200, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetMaxLabelWidth(tt.override))
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", truncateLabel("short", 20))
	assert.Equal(t, "this-is-a...", truncateLabel("this-is-a-long-label", 12))
	assert.Equal(t, "ab", truncateLabel("ab", 3), "tiny widths leave labels alone")
}
