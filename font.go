package favicon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Font is a parsed TrueType or OpenType font.
type Font struct {
	sfnt *sfnt.Font
	name string
}

// LoadFontFile loads a font from a file. Font collections (.ttc) use their first font.
func LoadFontFile(filename string) (*Font, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load font file '%s': %w", filename, err)
	}
	return LoadFont(filepath.Base(filename), b)
}

// LoadFont loads a font from memory.
func LoadFont(name string, b []byte) (*Font, error) {
	f, err := sfnt.Parse(b)
	if err != nil {
		c, errCollection := sfnt.ParseCollection(b)
		if errCollection != nil || c.NumFonts() == 0 {
			return nil, fmt.Errorf("failed to parse font '%s': %w", name, err)
		}
		if f, err = c.Font(0); err != nil {
			return nil, fmt.Errorf("failed to parse font '%s': %w", name, err)
		}
	}

	var buf sfnt.Buffer
	if family, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && family != "" {
		name = family
	}
	return &Font{
		sfnt: f,
		name: name,
	}, nil
}

// Name returns the family name of the font, or the name it was loaded with if the font has none.
func (f *Font) Name() string {
	return f.name
}

// Face returns a font face of the given size in pixels per em. At 72 DPI this equals the size in points.
func (f *Font) Face(size float64) *FontFace {
	return &FontFace{
		Font: f,
		Size: size,
	}
}

// FontFace is a font at a specific size.
type FontFace struct {
	Font *Font
	Size float64 // in px per em
}

// Name returns the name of the underlying font.
func (face *FontFace) Name() string {
	return face.Font.name
}

func (face *FontFace) ppem() fixed.Int26_6 {
	return fixed.Int26_6(face.Size*64.0 + 0.5)
}

// Metrics returns the vertical metrics of the face in pixels.
func (face *FontFace) Metrics() (font.Metrics, error) {
	var buf sfnt.Buffer
	return face.Font.sfnt.Metrics(&buf, face.ppem(), font.HintingNone)
}

// Ascent returns the distance from the ascender line to the baseline, rounded up to whole pixels.
func (face *FontFace) Ascent() (int, error) {
	metrics, err := face.Metrics()
	if err != nil {
		return 0, err
	}
	return metrics.Ascent.Ceil(), nil
}

// walk calls fn for every outline segment of s, offset by the pen position. The string is NFC-normalized so that combining sequences map to precomposed glyphs. Kerning from the kern table is applied between glyph pairs.
func (face *FontFace) walk(s string, fn func(sfnt.Segment)) (fixed.Int26_6, error) {
	var buf sfnt.Buffer
	f := face.Font.sfnt
	ppem := face.ppem()

	pen := fixed.Int26_6(0)
	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, r := range norm.NFC.String(s) {
		glyphID, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return 0, fmt.Errorf("glyph index of %q: %w", r, err)
		}
		if hasPrev {
			kern, err := f.Kern(&buf, prev, glyphID, ppem, font.HintingNone)
			if err == nil {
				pen += kern
			} else if !errors.Is(err, sfnt.ErrNotFound) {
				return 0, fmt.Errorf("kerning of %q: %w", r, err)
			}
		}

		segments, err := f.LoadGlyph(&buf, glyphID, ppem, nil)
		if err != nil {
			return 0, fmt.Errorf("glyph outline of %q: %w", r, err)
		}
		for _, seg := range segments {
			for i := range seg.Args {
				seg.Args[i].X += pen
			}
			fn(seg)
		}

		advance, err := f.GlyphAdvance(&buf, glyphID, ppem, font.HintingNone)
		if err != nil {
			return 0, fmt.Errorf("glyph advance of %q: %w", r, err)
		}
		pen += advance
		prev, hasPrev = glyphID, true
	}
	return pen, nil
}

// ToPath returns the outline of s with the pen starting at the origin and the baseline at y=0, together with the total advance in pixels.
func (face *FontFace) ToPath(s string) (*Path, float64, error) {
	p := &Path{}
	advance, err := face.walk(s, func(seg sfnt.Segment) {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p.MoveTo(fixedToFloat(a[0].X), fixedToFloat(a[0].Y))
		case sfnt.SegmentOpLineTo:
			p.LineTo(fixedToFloat(a[0].X), fixedToFloat(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(fixedToFloat(a[0].X), fixedToFloat(a[0].Y), fixedToFloat(a[1].X), fixedToFloat(a[1].Y))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(fixedToFloat(a[0].X), fixedToFloat(a[0].Y), fixedToFloat(a[1].X), fixedToFloat(a[1].Y), fixedToFloat(a[2].X), fixedToFloat(a[2].Y))
		}
	})
	if err != nil {
		return nil, 0.0, err
	}
	return p, fixedToFloat(advance), nil
}

// TextBounds is the bounding box of rendered text in whole pixels, measured with the pen at x=0 and the ascender line at y=0.
type TextBounds struct {
	Left, Top, Right, Bottom int
}

// Width returns Right-Left.
func (b TextBounds) Width() int {
	return b.Right - b.Left
}

// Height returns Bottom-Top.
func (b TextBounds) Height() int {
	return b.Bottom - b.Top
}

// Bounds returns the control box of s, i.e. the box around all outline points including off-curve control points. Text without outlines returns a zero TextBounds.
func (face *FontFace) Bounds(s string) (TextBounds, error) {
	ascent, err := face.Ascent()
	if err != nil {
		return TextBounds{}, err
	}

	var box fixed.Rectangle26_6
	empty := true
	_, err = face.walk(s, func(seg sfnt.Segment) {
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for _, pt := range seg.Args[:n] {
			if empty {
				box = fixed.Rectangle26_6{Min: pt, Max: pt}
				empty = false
				continue
			}
			box.Min.X = min(box.Min.X, pt.X)
			box.Min.Y = min(box.Min.Y, pt.Y)
			box.Max.X = max(box.Max.X, pt.X)
			box.Max.Y = max(box.Max.Y, pt.Y)
		}
	})
	if err != nil {
		return TextBounds{}, err
	} else if empty {
		return TextBounds{}, nil
	}
	return TextBounds{
		Left:   box.Min.X.Floor(),
		Top:    ascent + box.Min.Y.Floor(),
		Right:  box.Max.X.Ceil(),
		Bottom: ascent + box.Max.Y.Ceil(),
	}, nil
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
