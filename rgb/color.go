package rgb

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is a linear RGB triple with channels in [0,1].
type Color struct {
	R, G, B float64
}

var (
	White = Color{1, 1, 1}
	Black = Color{0, 0, 0}
	Red   = Color{1, 0, 0}
)

// FromHex builds a color from a packed 0xRRGGBB value.
func FromHex(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
	}
}

// Parse accepts "#rrggbb", "#rgb", "rrggbb" and "rgb(r, g, b)" with 0..255 channels.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if args, ok := strings.CutPrefix(s, "rgb("); ok {
		args, ok = strings.CutSuffix(args, ")")
		if !ok {
			return Color{}, fmt.Errorf("invalid color %q: missing ')'", s)
		}
		parts := strings.Split(args, ",")
		if len(parts) != 3 {
			return Color{}, fmt.Errorf("invalid color %q: want 3 channels", s)
		}
		var ch [3]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
			}
			ch[i] = v
		}
		return Color{R: channel(ch[0]), G: channel(ch[1]), B: channel(ch[2])}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return FromHex(uint32(v)), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func channel(v int) float64 {
	return float64(min(max(v, 0), 255)) / 255
}

func quantize(v float64) uint32 {
	return uint32(math.Round(min(max(v*255, 0), 255)))
}

// Hex returns the quantized 24-bit value.
func (c Color) Hex() uint32 {
	return quantize(c.R)<<16 | quantize(c.G)<<8 | quantize(c.B)
}

// HexString returns the quantized value as six lowercase hex digits, without '#'.
func (c Color) HexString() string {
	return fmt.Sprintf("%06x", c.Hex())
}

// CSS returns the color as "#rrggbb".
func (c Color) CSS() string {
	return "#" + c.HexString()
}

// Quantized snaps c onto the 24-bit grid.
func (c Color) Quantized() Color {
	return FromHex(c.Hex())
}

// Equal compares quantized 24-bit values, so float drift below one step is ignored.
func (c Color) Equal(o Color) bool {
	return c.Hex() == o.Hex()
}

// Lerp moves c toward target by alpha.
func (c Color) Lerp(target Color, alpha float64) Color {
	return Color{
		R: c.R + (target.R-c.R)*alpha,
		G: c.G + (target.G-c.G)*alpha,
		B: c.B + (target.B-c.B)*alpha,
	}
}

// RGBA converts to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	h := c.Hex()
	return color.RGBA{R: uint8(h >> 16), G: uint8(h >> 8), B: uint8(h), A: 0xff}
}

func (c Color) String() string {
	return c.CSS()
}
