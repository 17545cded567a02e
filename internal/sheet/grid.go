package sheet

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseGrid parses a COLSxROWS grid shape such as "4x4". Both dimensions must
// be strictly positive.
func ParseGrid(grid string) (cols, rows int, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(grid)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("grid must be in COLSxROWS format, e.g. 4x4 (got %q)", grid)
	}
	cols, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("grid must be in COLSxROWS format, e.g. 4x4 (got %q)", grid)
	}
	rows, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("grid must be in COLSxROWS format, e.g. 4x4 (got %q)", grid)
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("grid dimensions must be positive (got %q)", grid)
	}
	return cols, rows, nil
}

// ParseHexColor converts an RRGGBB hex string (with or without a leading '#')
// into an opaque color.
func ParseHexColor(value string) (color.NRGBA, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(trimmed) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", value)
	}
	channels := make([]uint8, 3)
	for i := 0; i < 3; i++ {
		parsed, err := strconv.ParseUint(trimmed[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q", value)
		}
		channels[i] = uint8(parsed)
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: 0xff}, nil
}
