package service

import (
	"time"
)

func NowUTC() time.Time {
	return time.Now().
		UTC().
		Truncate(time.Second)
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
