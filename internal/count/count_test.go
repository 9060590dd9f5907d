package count

import (
	"errors"
	"testing"
)

func TestParsePositive(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"3", 3},
		{"1", 1},
		{"10", 10},
		{"4096", 4096},
	}
	for _, tc := range cases {
		got, err := ParsePositive(tc.input)
		if err != nil {
			t.Fatalf("ParsePositive(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePositive(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParsePositiveRejects(t *testing.T) {
	cases := []string{"0", "foo", "-3", "3.5", "", " 3", "18446744073709551616"}
	for _, input := range cases {
		_, err := ParsePositive(input)
		if err == nil {
			t.Fatalf("ParsePositive(%q) expected error", input)
		}
		var invalid *InvalidCountError
		if !errors.As(err, &invalid) {
			t.Fatalf("ParsePositive(%q) error type %T, want *InvalidCountError", input, err)
		}
		if invalid.Token != input {
			t.Fatalf("ParsePositive(%q) carried token %q, want the original", input, invalid.Token)
		}
		if err.Error() != input {
			t.Fatalf("ParsePositive(%q) Error() = %q, want the bare token", input, err.Error())
		}
	}
}
