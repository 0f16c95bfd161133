package utils

import (
	"errors"
	"testing"
)

func TestParseLimit(t *testing.T) {
	cases := []struct {
		raw     string
		def     int
		want    int
		wantErr bool
	}{
		// empty / whitespace -> default
		{"", 10, 10, false},
		{"   ", 50, 50, false},
		// valid values (zero is legal)
		{"0", 10, 0, false},
		{"25", 50, 25, false},
		{" 25 ", 50, 25, false},
		// invalid
		{"-3", 50, 0, true},
		{"x", 50, 0, true},
		{"2.5", 50, 0, true},
		// overflow
		{"999999999999999999999999", 50, 0, true},
	}

	for _, tc := range cases {
		got, err := ParseLimit(tc.raw, tc.def)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidLimit) {
				t.Fatalf("ParseLimit(%q) err = %v; want ErrInvalidLimit", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLimit(%q) unexpected error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLimit(%q, %d) = %d; want %d", tc.raw, tc.def, got, tc.want)
		}
	}
}
