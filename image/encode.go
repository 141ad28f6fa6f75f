package image

import (
	"bytes"
	"fmt"
	"image/jpeg"
)

// Encode compresses the pixel buffer into a baseline single-scan JPEG at
// the given quality and splices the preserved metadata segments in right
// after SOI. The result is a complete in-memory file body; writing it out
// is the caller's job.
func Encode(img *ResizedImage, markers []Marker, q Quality) ([]byte, error) {
	if img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("%w: zero size %dx%d", ErrDimension, img.Width, img.Height)
	}
	if q < 1 || q > 100 {
		return nil, fmt.Errorf("%w: quality %d out of range 1..100", ErrEncode, q)
	}
	if err := img.Valid(); err != nil {
		return nil, err
	}

	frame, err := rgbaFrame(img.Width, img.Height, img.Pix)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(img.Pix) / 4)
	if err = jpeg.Encode(&buf, frame, &jpeg.Options{Quality: int(q)}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return spliceMarkers(buf.Bytes(), markers)
}
