package favicon

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/gxapp/favicon/ico"
)

// Renderer draws icon variants and writes them as ICO files.
type Renderer struct {
	fonts  FontProvider
	logger zerolog.Logger
}

// NewRenderer returns a renderer that resolves fonts through fonts. A nil fonts searches the system fonts and falls back to the built-in font.
func NewRenderer(fonts FontProvider, logger zerolog.Logger) *Renderer {
	if fonts == nil {
		fonts = WithFallback(SystemFonts{}, logger)
	}
	return &Renderer{
		fonts:  fonts,
		logger: logger,
	}
}

// Render draws the variant: the background, then its label centered and shifted according to the offset policy.
func (r *Renderer) Render(v Variant) (*Canvas, error) {
	if v.Size <= 0 {
		return nil, fmt.Errorf("invalid canvas size %d", v.Size)
	}

	c := NewCanvas(v.Size)
	if v.Background == BackgroundCircle {
		size := float64(v.Size)
		c.DrawPath(Ellipse(0.0, 0.0, size, size), v.BackgroundColor)
	}

	face, err := r.fonts.Resolve(v.FontName, v.FontSize)
	if err != nil {
		return nil, fmt.Errorf("resolve font '%s': %w", v.FontName, err)
	}
	bounds, err := face.Bounds(v.Text)
	if err != nil {
		return nil, fmt.Errorf("measure %q: %w", v.Text, err)
	}
	pos := v.TextPosition(bounds)
	r.logger.Debug().
		Str("font", face.Name()).
		Ints("bounds", []int{bounds.Left, bounds.Top, bounds.Right, bounds.Bottom}).
		Int("x", pos.X).
		Int("y", pos.Y).
		Msg("draw label")

	if err := c.DrawText(pos.X, pos.Y, face, v.Text, v.TextColor); err != nil {
		return nil, fmt.Errorf("draw %q: %w", v.Text, err)
	}
	return c, nil
}

// Encode renders the variant and writes it to w in ICO format.
func (r *Renderer) Encode(w io.Writer, v Variant) error {
	c, err := r.Render(v)
	if err != nil {
		return err
	}
	return ico.Encode(w, c.Image(), v.Sizes)
}

// WriteFile renders the variant into filename, replacing any existing file.
func (r *Renderer) WriteFile(v Variant, filename string) error {
	var buf bytes.Buffer
	if err := r.Encode(&buf, v); err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write icon: %w", err)
	}
	r.logger.Debug().Str("path", filename).Int("bytes", buf.Len()).Ints("sizes", v.Sizes).Msg("icon written")
	return nil
}

// Generate writes the variant into filename and prints a confirmation line to stdout.
func (r *Renderer) Generate(stdout io.Writer, v Variant, filename string) error {
	if err := r.WriteFile(v, filename); err != nil {
		return err
	}
	_, err := fmt.Fprintf(stdout, "Icon saved as %s\n", filename)
	return err
}
