package favicon

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Canvas is a square RGBA pixel buffer that paths and text are drawn on.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns a fully transparent canvas of size×size pixels.
func NewCanvas(size int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, size, size)),
	}
}

// Size returns the width (and height) of the canvas in pixels.
func (c *Canvas) Size() int {
	return c.img.Bounds().Dx()
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Fill replaces every pixel by col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawPath fills path with col using the non-zero winding rule, compositing over the existing pixels.
func (c *Canvas) DrawPath(path *Path, col color.Color) {
	if path.Empty() {
		return
	} else if _, _, _, a := col.RGBA(); a == 0 {
		return
	}

	size := c.img.Bounds().Size()
	ras := vector.NewRasterizer(size.X, size.Y)
	ras.DrawOp = draw.Over
	path.ToRasterizer(ras)
	ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// DrawText draws s with its pen origin at x and its ascender line at y.
func (c *Canvas) DrawText(x, y int, face *FontFace, s string, col color.Color) error {
	ascent, err := face.Ascent()
	if err != nil {
		return err
	}
	path, _, err := face.ToPath(s)
	if err != nil {
		return err
	}
	path.Translate(float64(x), float64(y+ascent))
	c.DrawPath(path, col)
	return nil
}
