package main

import "testing"

func TestReadColorMode(t *testing.T) {
	cases := []struct {
		input string
		want  colorMode
	}{
		{"", colorModeAuto},
		{"auto", colorModeAuto},
		{"AUTO", colorModeAuto},
		{"on", colorModeOn},
		{" On ", colorModeOn},
		{"off", colorModeOff},
	}
	for _, tc := range cases {
		got, err := readColorMode(tc.input)
		if err != nil {
			t.Fatalf("readColorMode(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("readColorMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}

	if _, err := readColorMode("rainbow"); err == nil {
		t.Fatalf("readColorMode(rainbow) expected error")
	}
}

func TestShouldColor(t *testing.T) {
	if !shouldColor(colorModeOn) {
		t.Fatalf("shouldColor(on) = false")
	}
	if shouldColor(colorModeOff) {
		t.Fatalf("shouldColor(off) = true")
	}
	// auto is tty-dependent; under go test stdout is not a terminal.
	if shouldColor(colorModeAuto) {
		t.Fatalf("shouldColor(auto) = true without a terminal")
	}
}
