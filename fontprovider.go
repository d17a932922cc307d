package favicon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/rs/zerolog"
	canvasFont "github.com/tdewolff/font"
)

// ErrFontNotFound is returned when a font name cannot be resolved to a font file.
var ErrFontNotFound = errors.New("font not found")

// FontProvider resolves a font by name and returns a face of the given size in pixels per em.
type FontProvider interface {
	Resolve(name string, size float64) (*FontFace, error)
}

// FontFunc is a function that implements FontProvider.
type FontFunc func(name string, size float64) (*FontFace, error)

// Resolve calls f(name, size).
func (f FontFunc) Resolve(name string, size float64) (*FontFace, error) {
	return f(name, size)
}

// SystemFonts resolves fonts from the filesystem. A name is tried as a file path, then as a file name inside Dirs (e.g. "arialbd.ttf"), and finally, when it has no extension, as a family name whose bold style is looked up in Dirs (e.g. "Arial").
type SystemFonts struct {
	Dirs []string // defaults to the platform's font directories
}

func (s SystemFonts) dirs() []string {
	if s.Dirs != nil {
		return s.Dirs
	}
	return canvasFont.DefaultFontDirs()
}

// Resolve implements FontProvider.
func (s SystemFonts) Resolve(name string, size float64) (*FontFace, error) {
	filename, err := s.Find(name)
	if err != nil {
		return nil, err
	}
	f, err := LoadFontFile(filename)
	if err != nil {
		return nil, err
	}
	return f.Face(size), nil
}

// Find returns the filename of the font with the given name.
func (s SystemFonts) Find(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty font name: %w", ErrFontNotFound)
	}
	if info, err := os.Stat(name); err == nil && info.Mode().IsRegular() {
		return name, nil
	}

	dirs := s.dirs()
	if filepath.Ext(name) != "" {
		if filename, ok := findFile(dirs, filepath.Base(name)); ok {
			return filename, nil
		}
		return "", fmt.Errorf("font file '%s': %w", name, ErrFontNotFound)
	}

	fonts, err := canvasFont.FindSystemFonts(dirs)
	if err != nil {
		return "", fmt.Errorf("font family '%s': %w", name, err)
	}
	if metadata, ok := fonts.Match(name, canvasFont.Bold); ok {
		return metadata.Filename, nil
	}
	return "", fmt.Errorf("font family '%s': %w", name, ErrFontNotFound)
}

// findFile walks dirs in order and returns the first file whose name equals base, ignoring case.
func findFile(dirs []string, base string) (string, bool) {
	found := ""
	for _, dir := range dirs {
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			} else if !d.IsDir() && strings.EqualFold(d.Name(), base) {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, true
		}
	}
	return "", false
}

var (
	defaultFont     *Font
	defaultFontErr  error
	defaultFontOnce sync.Once
)

// DefaultFont returns the built-in bold sans-serif font (Latin Modern Sans Bold) used when a requested font is unavailable.
func DefaultFont() (*Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = LoadFont("Latin Modern Sans Bold", lmsans10bold.TTF)
	})
	return defaultFont, defaultFontErr
}

// DefaultFace returns the built-in font at the given size.
func DefaultFace(size float64) (*FontFace, error) {
	f, err := DefaultFont()
	if err != nil {
		return nil, err
	}
	return f.Face(size), nil
}

type fallbackFonts struct {
	fonts  FontProvider
	logger zerolog.Logger
}

// WithFallback returns a provider that substitutes the built-in font whenever fonts fails to resolve a font, whatever the reason. A nil fonts always yields the built-in font.
func WithFallback(fonts FontProvider, logger zerolog.Logger) FontProvider {
	return fallbackFonts{
		fonts:  fonts,
		logger: logger,
	}
}

func (p fallbackFonts) Resolve(name string, size float64) (*FontFace, error) {
	if p.fonts != nil {
		face, err := p.fonts.Resolve(name, size)
		if err == nil {
			return face, nil
		}
		p.logger.Debug().Err(err).Str("font", name).Msg("font unavailable, using default font")
	}
	return DefaultFace(size)
}

// DefaultFonts returns the system font lookup with the built-in font as fallback.
func DefaultFonts() FontProvider {
	return WithFallback(SystemFonts{}, zerolog.Nop())
}
