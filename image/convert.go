package image

import (
	"fmt"
	"image"
)

// rgbScanlines flattens an image into row-major RGB triples, one scanline
// at a time. Rows are counted and checked against the height so a short or
// duplicated row surfaces as an error instead of a corrupt buffer.
func rgbScanlines(m image.Image) (Dimension, Dimension, []byte, error) {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return 0, 0, nil, fmt.Errorf("%w: empty bounds %v", ErrDimension, b)
	}

	pix := make([]byte, 0, w*h*3)
	rows := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := m.At(x, y).RGBA()
			pix = append(pix, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
		rows++
	}
	if rows != h {
		return 0, 0, nil, fmt.Errorf("%w: extracted %d scanlines, want %d", ErrDecode, rows, h)
	}
	if len(pix) != w*h*3 {
		return 0, 0, nil, fmt.Errorf("%w: pixel buffer is %d bytes, want %d",
			ErrDecode, len(pix), w*h*3)
	}
	return Dimension(w), Dimension(h), pix, nil
}

// rgbaFrame rebuilds a drawable frame from RGB triples, scanline by
// scanline with bounds-checked slices. The buffer length must already be
// validated by the caller; the row counter is re-checked here regardless.
func rgbaFrame(w, h Dimension, pix []byte) (*image.RGBA, error) {
	iw, ih := int(w), int(h)
	frame := image.NewRGBA(image.Rect(0, 0, iw, ih))
	stride := iw * 3

	rows := 0
	for y := 0; y < ih; y++ {
		lo, hi := y*stride, (y+1)*stride
		if hi > len(pix) {
			return nil, fmt.Errorf("%w: scanline %d overruns pixel buffer", ErrEncode, y)
		}
		line := pix[lo:hi]
		off := frame.PixOffset(0, y)
		for x := 0; x < iw; x++ {
			frame.Pix[off+0] = line[x*3+0]
			frame.Pix[off+1] = line[x*3+1]
			frame.Pix[off+2] = line[x*3+2]
			frame.Pix[off+3] = 0xff
			off += 4
		}
		rows++
	}
	if rows != ih {
		return nil, fmt.Errorf("%w: wrote %d scanlines, want %d", ErrEncode, rows, ih)
	}
	return frame, nil
}
