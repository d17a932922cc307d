package favicon

import (
	"image"
	"image/color"

	"github.com/gxapp/favicon/ico"
)

// OutputPath is the file that the icon is written to, relative to the working directory.
const OutputPath = "favicon.ico"

// Background selects what is drawn before the label.
type Background int

// see Background
const (
	BackgroundTransparent Background = iota
	BackgroundCircle                  // circle inscribed in the canvas
)

// OffsetPolicy selects how the centered label is shifted vertically.
type OffsetPolicy int

// see OffsetPolicy
const (
	// OffsetBaseline raises the label by half the top offset of its bounding box plus Shift.
	OffsetBaseline OffsetPolicy = iota
	// OffsetFixed raises the label by Shift only.
	OffsetFixed
)

// Variant holds every parameter of one icon design.
type Variant struct {
	Size  int   // canvas width and height in px
	Sizes []int // embedded icon sizes, the largest equals Size

	Background      Background
	BackgroundColor color.RGBA

	Text      string
	TextColor color.RGBA
	FontName  string
	FontSize  float64 // in px per em

	Offset OffsetPolicy
	Shift  int // upward shift in px applied after centering
}

// TransparentIcon is the label on a transparent background.
var TransparentIcon = Variant{
	Size:       1000,
	Sizes:      ico.Sizes(1000),
	Background: BackgroundTransparent,
	Text:       "GX",
	TextColor:  DarkBlue,
	FontName:   "arialbd.ttf",
	FontSize:   690,
	Offset:     OffsetBaseline,
	Shift:      14,
}

// CircleIcon is the label on a light blue circle that fills the canvas.
var CircleIcon = Variant{
	Size:            1250,
	Sizes:           ico.Sizes(1250),
	Background:      BackgroundCircle,
	BackgroundColor: LightBlue,
	Text:            "GX",
	TextColor:       DarkBlue,
	FontName:        "arialbd.ttf",
	FontSize:        690,
	Offset:          OffsetFixed,
	Shift:           80,
}

// TextPosition returns where the label is drawn: the pen origin in x and the ascender line in y. The label is centered on the canvas using its bounding box and then raised according to the offset policy.
func (v Variant) TextPosition(bounds TextBounds) image.Point {
	x := floorDiv(v.Size-bounds.Width(), 2)
	y := floorDiv(v.Size-bounds.Height(), 2)
	switch v.Offset {
	case OffsetBaseline:
		y -= floorDiv(bounds.Top, 2) + v.Shift
	case OffsetFixed:
		y -= v.Shift
	}
	return image.Point{x, y}
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
