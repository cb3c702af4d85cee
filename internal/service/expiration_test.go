package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Andriyshkoy/BurNote/internal/contract"
)

func TestParseExpiration(t *testing.T) {
	tests := []struct {
		preset string
		want   time.Duration
	}{
		{"", 0},
		{"1m", time.Minute},
		{"10m", 10 * time.Minute},
		{"1h", time.Hour},
		{"1d", 24 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"2w", 14 * 24 * time.Hour},
		{"1M", 30 * 24 * time.Hour},
		{"3M", 90 * 24 * time.Hour},
		{"6M", 180 * 24 * time.Hour},
		{"1y", 365 * 24 * time.Hour},
	}

	for _, tt := range tests {
		d, ok := ParseExpiration(tt.preset)
		assert.True(t, ok, "preset %q", tt.preset)
		assert.Equal(t, tt.want, d, "preset %q", tt.preset)
	}
}

func TestParseExpiration_Unknown(t *testing.T) {
	for _, preset := range []string{"5h", "1s", "never", "m1"} {
		_, ok := ParseExpiration(preset)
		assert.False(t, ok, "preset %q", preset)
	}
}

func TestParseExpiration_CoversContractPresets(t *testing.T) {
	for _, preset := range contract.ExpirationPresets {
		_, ok := ParseExpiration(preset)
		assert.True(t, ok, "contract preset %q has no offset", preset)
	}
}
