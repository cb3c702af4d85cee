package service

import "time"

const day = 24 * time.Hour

// Offsets for the expiration presets accepted at creation. Months and
// years are the usual 30/365-day approximations.
var expirationOffsets = map[string]time.Duration{
	"1m":  time.Minute,
	"10m": 10 * time.Minute,
	"1h":  time.Hour,
	"1d":  day,
	"1w":  7 * day,
	"2w":  14 * day,
	"1M":  30 * day,
	"3M":  90 * day,
	"6M":  180 * day,
	"1y":  365 * day,
}

// ParseExpiration resolves an expiration preset to its offset from now.
// The empty preset means "never expires" and reports ok with a zero
// duration.
func ParseExpiration(preset string) (time.Duration, bool) {
	if preset == "" {
		return 0, true
	}
	d, ok := expirationOffsets[preset]
	return d, ok
}
