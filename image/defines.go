package image

import (
	"bytes"
	"fmt"
)

// Dimension is a pixel count along one axis.
type Dimension uint32

// Quality is a JPEG quality value, 1..100.
type Quality uint8

const (
	// DefaultBound is the maximum allowed value for the larger side of a
	// resized image.
	DefaultBound Dimension = 1280
	// DefaultQuality is the fixed re-encoding quality.
	DefaultQuality Quality = 70
)

const sigJPEG = "\xff\xd8\xff"

// IsJPEG reports whether data starts with the JPEG signature.
func IsJPEG(data []byte) bool {
	return bytes.HasPrefix(data, []byte(sigJPEG))
}

// Geometry is a width/height pair.
type Geometry struct {
	Width, Height Dimension
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Marker is one embedded auxiliary segment (APPn or COM) from a JPEG
// container: the marker byte and its payload, verbatim.
type Marker struct {
	Tag  byte
	Data []byte
}

// SourceImage is a decoded picture: row-major RGB triples plus the
// container's metadata segments in their original order.
type SourceImage struct {
	Width, Height Dimension
	Pix           []byte
	Markers       []Marker
}

// ResizedImage is the transform output, same pixel layout as SourceImage.
type ResizedImage struct {
	Width, Height Dimension
	Pix           []byte
}

// checkPix verifies a row-major RGB buffer against its dimensions.
func checkPix(w, h Dimension, pix []byte, class error) error {
	if w == 0 || h == 0 {
		return fmt.Errorf("%w: zero size %dx%d", ErrDimension, w, h)
	}
	if want := int(w) * int(h) * 3; len(pix) != want {
		return fmt.Errorf("%w: pixel buffer is %d bytes, want %d for %dx%d",
			class, len(pix), want, w, h)
	}
	return nil
}

// Valid reports a usable pixel buffer, rejecting length mismatches before
// any scanline access happens.
func (m *SourceImage) Valid() error {
	return checkPix(m.Width, m.Height, m.Pix, ErrDecode)
}

// Valid is the encoder-side counterpart of SourceImage.Valid.
func (m *ResizedImage) Valid() error {
	return checkPix(m.Width, m.Height, m.Pix, ErrEncode)
}
