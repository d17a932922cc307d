// Package ico encodes images as multi-resolution Windows icon (ICO) files.
//
// Every entry is stored as a 32-bit PNG, which also allows entries larger than 256×256. Their directory width and height bytes are zero and readers take the real dimensions from the PNG header.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"slices"

	"golang.org/x/image/draw"
)

const (
	fileHeaderLen = 6
	dirEntryLen   = 16
	maxSize       = 1<<16 - 1
)

// ErrNoSizes is returned when the list of sizes is empty.
var ErrNoSizes = errors.New("ico: no sizes")

// ErrInvalidSize is returned for a size that is not positive, exceeds the source image, or is listed twice.
var ErrInvalidSize = errors.New("ico: invalid size")

// Sizes returns the standard favicon size list 64, 128, 256, 512 followed by the native size.
func Sizes(native int) []int {
	sizes := []int{}
	for _, size := range []int{64, 128, 256, 512} {
		if size < native {
			sizes = append(sizes, size)
		}
	}
	return append(sizes, native)
}

type header struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type dirEntry struct {
	Width       uint8
	Height      uint8
	Colors      uint8
	Reserved    uint8
	Planes      uint16
	BPP         uint16
	ImageSize   uint32
	ImageOffset uint32
}

// Encode writes img to w as an ICO file with one square entry per size, in the given order. The source is resampled with Catmull-Rom for every size other than its own width.
func Encode(w io.Writer, img image.Image, sizes []int) error {
	if err := validate(img, sizes); err != nil {
		return err
	}

	pngs := make([][]byte, len(sizes))
	for i, size := range sizes {
		var buf bytes.Buffer
		if err := png.Encode(&buf, Resize(img, size)); err != nil {
			return fmt.Errorf("ico: encode %dx%d entry: %w", size, size, err)
		}
		pngs[i] = buf.Bytes()
	}

	if err := binary.Write(w, binary.LittleEndian, header{Type: 1, Count: uint16(len(sizes))}); err != nil {
		return err
	}
	offset := fileHeaderLen + dirEntryLen*len(sizes)
	for i, size := range sizes {
		entry := dirEntry{
			Width:       trunc(size),
			Height:      trunc(size),
			Planes:      1,
			BPP:         32,
			ImageSize:   uint32(len(pngs[i])),
			ImageOffset: uint32(offset),
		}
		if err := binary.Write(w, binary.LittleEndian, entry); err != nil {
			return err
		}
		offset += len(pngs[i])
	}
	for _, b := range pngs {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

func validate(img image.Image, sizes []int) error {
	if len(sizes) == 0 {
		return ErrNoSizes
	}
	bounds := img.Bounds()
	native := min(bounds.Dx(), bounds.Dy())
	for i, size := range sizes {
		if size < 1 || native < size || maxSize < size {
			return fmt.Errorf("%w: %d (source is %dx%d)", ErrInvalidSize, size, bounds.Dx(), bounds.Dy())
		} else if slices.Contains(sizes[:i], size) {
			return fmt.Errorf("%w: %d listed twice", ErrInvalidSize, size)
		}
	}
	return nil
}

// trunc returns the directory byte for a dimension, where 0 stands for 256 or more.
func trunc(n int) uint8 {
	if 256 <= n {
		return 0
	}
	return uint8(n)
}

// Resize returns img scaled to size×size. An image that already has that size is returned as is.
func Resize(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == size && bounds.Dy() == size {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
