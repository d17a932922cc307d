package favicon

import (
	"image/color"
)

// RGB returns an opaque color given by red, green, and blue ∈ [0,255].
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 0xff}
}

// RGBA returns a color given by red, green, and blue ∈ [0,255] (non alpha premultiplied) and alpha ∈ [0,1].
func RGBA(r, g, b uint8, a float64) color.RGBA {
	return color.RGBA{
		uint8(a * float64(r)),
		uint8(a * float64(g)),
		uint8(a * float64(b)),
		uint8(a * 255.0),
	}
}

// Hex parses a CSS hexadecimal color such as e.g. #ff0000 or F00. Invalid input returns Transparent.
func Hex(s string) color.RGBA {
	if 0 < len(s) && s[0] == '#' {
		s = s[1:]
	}
	h := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if '0' <= c && c <= '9' {
			h[i] = c - '0'
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + c - 'a'
		} else if 'A' <= c && c <= 'F' {
			h[i] = 10 + c - 'A'
		} else {
			return Transparent
		}
	}

	switch len(s) {
	case 3:
		return RGB(h[0]*17, h[1]*17, h[2]*17)
	case 4:
		return premultiply(h[0]*17, h[1]*17, h[2]*17, h[3]*17)
	case 6:
		return RGB(h[0]*16+h[1], h[2]*16+h[3], h[4]*16+h[5])
	case 8:
		return premultiply(h[0]*16+h[1], h[2]*16+h[3], h[4]*16+h[5], h[6]*16+h[7])
	}
	return Transparent
}

func premultiply(r, g, b, a uint8) color.RGBA {
	return color.RGBA{
		uint8(uint32(r) * uint32(a) / 0xff),
		uint8(uint32(g) * uint32(a) / 0xff),
		uint8(uint32(b) * uint32(a) / 0xff),
		a,
	}
}

// Transparent leaves the canvas untouched when used as a fill.
var Transparent = color.RGBA{0x00, 0x00, 0x00, 0x00}

// DarkBlue is the label color.
var DarkBlue = Hex("#05116c") // rgb(5, 17, 108)

// LightBlue is the background color of the circle variant.
var LightBlue = color.RGBA{240, 240, 255, 255}
