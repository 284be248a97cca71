package main

import "testing"

func TestCanSend(t *testing.T) {
	testCases := []struct {
		body string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"\n\t ", false},
		{"hola", true},
		{"  hola  ", true},
	}
	for _, tc := range testCases {
		if got := canSend(tc.body); got != tc.want {
			t.Errorf("canSend(%q) = %v, want %v", tc.body, got, tc.want)
		}
	}
}

func TestFetchSeqDiscardsSupersededLoads(t *testing.T) {
	// Two loads issued back to back: the response for the first one
	// arrives after the second was issued and must be discarded.
	var seq fetchSeq
	first := seq.next()
	second := seq.next()

	if seq.current(first) {
		t.Error("Expected the first load to be superseded")
	}
	if !seq.current(second) {
		t.Error("Expected the second load to still be current")
	}

	third := seq.next()
	if seq.current(second) {
		t.Error("Expected the second load to be superseded by the third")
	}
	if !seq.current(third) {
		t.Error("Expected the third load to be current")
	}
}
