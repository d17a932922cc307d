package favicon

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	ico "github.com/sergeymakinen/go-ico"
	"github.com/tdewolff/test"
)

// newTestRenderer always uses the built-in font so that output does not depend on installed fonts.
func newTestRenderer() *Renderer {
	return NewRenderer(WithFallback(SystemFonts{Dirs: []string{}}, zerolog.Nop()), zerolog.Nop())
}

func countColor(img *image.RGBA, col color.RGBA) int {
	n := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestRenderTransparent(t *testing.T) {
	c, err := newTestRenderer().Render(TransparentIcon)
	test.Error(t, err)
	test.T(t, c.Size(), 1000)

	img := c.Image()
	for _, pt := range []image.Point{{0, 0}, {999, 0}, {0, 999}, {999, 999}, {500, 5}, {500, 995}} {
		test.T(t, img.RGBAAt(pt.X, pt.Y), Transparent, pt)
	}
	test.That(t, 10000 < countColor(img, DarkBlue), "label is drawn in dark blue")
	test.T(t, countColor(img, LightBlue), 0)

	// every drawn pixel is dark blue at some coverage
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if col := img.RGBAAt(x, y); col.A != 0 {
				if col.B < col.R || col.B < col.G {
					test.Fail(t, "pixel is not dark blue", x, y, col)
					return
				}
			}
		}
	}
}

func TestRenderCircle(t *testing.T) {
	c, err := newTestRenderer().Render(CircleIcon)
	test.Error(t, err)
	test.T(t, c.Size(), 1250)

	img := c.Image()
	for _, pt := range []image.Point{{0, 0}, {1249, 0}, {0, 1249}, {1249, 1249}, {40, 40}} {
		test.T(t, img.RGBAAt(pt.X, pt.Y), Transparent, pt)
	}
	for _, pt := range []image.Point{{625, 20}, {625, 1230}, {20, 625}, {1230, 625}, {200, 200}} {
		test.T(t, img.RGBAAt(pt.X, pt.Y), LightBlue, pt)
	}
	test.That(t, 10000 < countColor(img, DarkBlue), "label is drawn in dark blue")
}

func TestRenderLabelPosition(t *testing.T) {
	r := newTestRenderer()
	c, err := r.Render(TransparentIcon)
	test.Error(t, err)

	face, err := DefaultFace(TransparentIcon.FontSize)
	test.Error(t, err)
	bounds, err := face.Bounds(TransparentIcon.Text)
	test.Error(t, err)
	pos := TransparentIcon.TextPosition(bounds)
	test.T(t, pos.X, (1000-bounds.Width())/2)

	// no ink outside the measured box around the draw position
	box := image.Rect(pos.X+bounds.Left, pos.Y+bounds.Top, pos.X+bounds.Right, pos.Y+bounds.Bottom)
	img := c.Image()
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if !(image.Point{x, y}).In(box) && img.RGBAAt(x, y).A != 0 {
				test.Fail(t, "ink outside bounding box", x, y, box)
				return
			}
		}
	}
}

func TestRenderInvalid(t *testing.T) {
	_, err := newTestRenderer().Render(Variant{})
	test.That(t, err != nil)
}

func TestEncode(t *testing.T) {
	r := newTestRenderer()
	for _, v := range []Variant{TransparentIcon, CircleIcon} {
		var buf bytes.Buffer
		test.Error(t, r.Encode(&buf, v))

		imgs, err := ico.DecodeAll(bytes.NewReader(buf.Bytes()))
		test.Error(t, err)
		test.T(t, len(imgs), len(v.Sizes))
		for i, img := range imgs {
			test.T(t, img.Bounds().Size(), image.Pt(v.Sizes[i], v.Sizes[i]))
		}

		largest := imgs[len(imgs)-1]
		test.T(t, largest.Bounds().Size(), image.Pt(v.Size, v.Size))
		_, _, _, a := largest.At(0, 0).RGBA()
		test.T(t, a, uint32(0))
	}
}

func TestWriteFileIdempotent(t *testing.T) {
	filename := filepath.Join(t.TempDir(), OutputPath)
	test.Error(t, os.WriteFile(filename, []byte("previous content that is overwritten"), 0644))

	r := newTestRenderer()
	test.Error(t, r.WriteFile(TransparentIcon, filename))
	b1, err := os.ReadFile(filename)
	test.Error(t, err)
	test.That(t, 0 < len(b1))
	test.T(t, b1[:4], []byte{0, 0, 1, 0})

	test.Error(t, r.WriteFile(TransparentIcon, filename))
	b2, err := os.ReadFile(filename)
	test.Error(t, err)
	test.That(t, bytes.Equal(b1, b2), "output must be byte-identical")
}

func TestGenerate(t *testing.T) {
	filename := filepath.Join(t.TempDir(), OutputPath)
	stdout := &bytes.Buffer{}
	test.Error(t, newTestRenderer().Generate(stdout, CircleIcon, filename))
	test.String(t, stdout.String(), "Icon saved as "+filename+"\n")

	f, err := os.Open(filename)
	test.Error(t, err)
	defer f.Close()
	img, err := ico.Decode(f)
	test.Error(t, err)
	test.T(t, img.Bounds().Size(), image.Pt(1250, 1250))
}

func TestGenerateUnwritable(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing", OutputPath)
	stdout := &bytes.Buffer{}
	err := newTestRenderer().Generate(stdout, TransparentIcon, filename)
	test.That(t, err != nil)
	test.String(t, stdout.String(), "")
}

func TestNewRendererDefaultFonts(t *testing.T) {
	// whatever fonts are installed, rendering succeeds
	r := NewRenderer(nil, zerolog.Nop())
	c, err := r.Render(TransparentIcon)
	test.Error(t, err)
	test.T(t, c.Size(), 1000)
}
