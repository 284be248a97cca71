// Package format holds the presentational helpers shared by the views.
// Nothing here aggregates or recomputes server data; it only turns
// trusted values into display strings.
package format

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	barCap  = 50
	maxTags = 8
)

// Percent renders a 0-1 rate as a percentage with one decimal place,
// e.g. 0.25 -> "25.0%".
func Percent(rate float64) string {
	return strconv.FormatFloat(rate*100, 'f', 1, 64) + "%"
}

// MedianMinutes renders a median first-response latency as whole
// minutes, or a dash when the backend reported no data.
func MedianMinutes(seconds *float64) string {
	if seconds == nil || *seconds == 0 {
		return "—"
	}
	return strconv.Itoa(int(math.Round(*seconds/60))) + "m"
}

// Bar renders a count as a run of '#' capped at 50 characters. The
// true numeric count is always shown next to the bar by the caller.
func Bar(n int) string {
	if n < 0 {
		n = 0
	}
	if n > barCap {
		n = barCap
	}
	return strings.Repeat("#", n)
}

// ClipTags limits a customer's tag list to the first 8 entries. No
// "+N more" indicator, plain truncation.
func ClipTags(tags []string) []string {
	if len(tags) > maxTags {
		return tags[:maxTags]
	}
	return tags
}

// When formats a server timestamp for display, falling back to the raw
// string when it does not parse as RFC 3339.
func When(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}
