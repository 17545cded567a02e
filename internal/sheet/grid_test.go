package sheet_test

import (
	"image/color"
	"testing"

	"proofsheet/internal/sheet"
)

func TestParseGrid(t *testing.T) {
	cases := []struct {
		input string
		cols  int
		rows  int
		ok    bool
	}{
		{"4x4", 4, 4, true},
		{"2x3", 2, 3, true},
		{"2X3", 2, 3, true},
		{" 1x1 ", 1, 1, true},
		{"4", 0, 0, false},
		{"4x", 0, 0, false},
		{"x4", 0, 0, false},
		{"0x4", 0, 0, false},
		{"4x-1", 0, 0, false},
		{"4x4x4", 0, 0, false},
		{"", 0, 0, false},
		{"axb", 0, 0, false},
	}

	for _, tc := range cases {
		cols, rows, err := sheet.ParseGrid(tc.input)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseGrid(%q) returned error: %v", tc.input, err)
				continue
			}
			if cols != tc.cols || rows != tc.rows {
				t.Errorf("ParseGrid(%q) = (%d, %d), want (%d, %d)", tc.input, cols, rows, tc.cols, tc.rows)
			}
			continue
		}
		if err == nil {
			t.Errorf("ParseGrid(%q) expected error, got (%d, %d)", tc.input, cols, rows)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	got, err := sheet.ParseHexColor("808080")
	if err != nil {
		t.Fatalf("ParseHexColor returned error: %v", err)
	}
	want := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	if got != want {
		t.Fatalf("ParseHexColor = %+v, want %+v", got, want)
	}

	got, err = sheet.ParseHexColor("#ff0000")
	if err != nil {
		t.Fatalf("ParseHexColor with hash returned error: %v", err)
	}
	if got != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Fatalf("unexpected color: %+v", got)
	}

	for _, bad := range []string{"", "fff", "80808", "8080800", "gggggg", "#80"} {
		if _, err := sheet.ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) expected error", bad)
		}
	}
}
