package format

import (
	"strings"
	"testing"
	"time"
)

func TestPercent(t *testing.T) {
	testCases := []struct {
		rate float64
		want string
	}{
		{0.25, "25.0%"},
		{0, "0.0%"},
		{1, "100.0%"},
		{0.3333, "33.3%"},
		{0.005, "0.5%"},
	}
	for _, tc := range testCases {
		if got := Percent(tc.rate); got != tc.want {
			t.Errorf("Percent(%v) = %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestMedianMinutes(t *testing.T) {
	sec := func(v float64) *float64 { return &v }

	testCases := []struct {
		name    string
		seconds *float64
		want    string
	}{
		{"Missing", nil, "—"},
		{"Zero", sec(0), "—"},
		{"Rounds up", sec(150), "3m"},
		{"Rounds half up", sec(90), "2m"},
		{"Whole", sec(120), "2m"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MedianMinutes(tc.seconds); got != tc.want {
				t.Errorf("MedianMinutes = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBarNeverExceedsCap(t *testing.T) {
	testCases := []struct {
		n       int
		wantLen int
	}{
		{0, 0},
		{3, 3},
		{50, 50},
		{51, 50},
		{1000, 50},
		{-2, 0},
	}
	for _, tc := range testCases {
		got := Bar(tc.n)
		if len(got) != tc.wantLen {
			t.Errorf("Bar(%d) length = %d, want %d", tc.n, len(got), tc.wantLen)
		}
		if strings.Trim(got, "#") != "" {
			t.Errorf("Bar(%d) contains characters other than '#': %q", tc.n, got)
		}
	}
}

func TestClipTags(t *testing.T) {
	many := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	if got := ClipTags(many); len(got) != 8 {
		t.Errorf("Expected 8 tags, got %d", len(got))
	}
	few := []string{"a", "b"}
	if got := ClipTags(few); len(got) != 2 {
		t.Errorf("Expected 2 tags, got %d", len(got))
	}
	if got := ClipTags(nil); len(got) != 0 {
		t.Errorf("Expected no tags, got %d", len(got))
	}
}

func TestWhen(t *testing.T) {
	ts := "2026-08-30T10:15:00Z"
	parsed, _ := time.Parse(time.RFC3339, ts)
	want := parsed.Local().Format("Jan 2, 2006 15:04")
	if got := When(ts); got != want {
		t.Errorf("When(%q) = %q, want %q", ts, got, want)
	}

	// Unparseable timestamps render as-is rather than erroring.
	if got := When("yesterday"); got != "yesterday" {
		t.Errorf("Expected raw fallback, got %q", got)
	}
}
