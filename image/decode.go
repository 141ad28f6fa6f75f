package image

import (
	"bytes"
	"fmt"

	"github.com/gen2brain/jpegn"
)

// Decode turns raw JPEG bytes into RGB pixels plus the container's
// metadata segments. The pixel decode and the marker scan are independent
// passes over the same buffer; the input is never modified.
func Decode(data []byte) (*SourceImage, error) {
	if !IsJPEG(data) {
		return nil, ErrorFormat
	}

	markers, err := ScanMarkers(data)
	if err != nil {
		return nil, err
	}

	m, err := jpegn.Decode(bytes.NewReader(data), &jpegn.Options{
		ToRGBA:         true,
		UpsampleMethod: jpegn.CatmullRom,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	w, h, pix, err := rgbScanlines(m)
	if err != nil {
		return nil, err
	}

	si := &SourceImage{Width: w, Height: h, Pix: pix, Markers: markers}
	if err = si.Valid(); err != nil {
		return nil, err
	}
	return si, nil
}
