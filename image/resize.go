package image

import (
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// sharpenSigma is the fixed unsharp radius applied after resampling.
const sharpenSigma = 0.5

// FitGeometry scales (w, h) so the larger side equals bound while the
// aspect ratio is preserved; the shorter side is floor(dim*bound/larger),
// never below 1. Images already inside the bound pass through with their
// original geometry, so the function is idempotent.
func FitGeometry(w, h, bound Dimension) Geometry {
	if bound == 0 || (w <= bound && h <= bound) {
		return Geometry{Width: w, Height: h}
	}
	if w >= h {
		nh := Dimension(uint64(h) * uint64(bound) / uint64(w))
		if nh == 0 {
			nh = 1
		}
		return Geometry{Width: bound, Height: nh}
	}
	nw := Dimension(uint64(w) * uint64(bound) / uint64(h))
	if nw == 0 {
		nw = 1
	}
	return Geometry{Width: nw, Height: bound}
}

// Resize fits src into bound with Lanczos3 resampling and optionally runs
// a fixed unsharp pass afterwards; sharpening before downsizing would give
// different edge contrast. A source already inside the bound is copied
// unchanged (pass-through policy), with no resample and no sharpening.
func Resize(src *SourceImage, bound Dimension, sharpen bool) (*ResizedImage, error) {
	if err := src.Valid(); err != nil {
		return nil, err
	}

	g := FitGeometry(src.Width, src.Height, bound)
	if g.Width == src.Width && g.Height == src.Height {
		pix := make([]byte, len(src.Pix))
		copy(pix, src.Pix)
		return &ResizedImage{Width: g.Width, Height: g.Height, Pix: pix}, nil
	}

	frame, err := rgbaFrame(src.Width, src.Height, src.Pix)
	if err != nil {
		return nil, err
	}

	m := resize.Resize(uint(g.Width), uint(g.Height), frame, resize.Lanczos3)
	if sharpen {
		m = imaging.Sharpen(m, sharpenSigma)
	}

	w, h, pix, err := rgbScanlines(m)
	if err != nil {
		return nil, err
	}

	ri := &ResizedImage{Width: w, Height: h, Pix: pix}
	if err = ri.Valid(); err != nil {
		return nil, err
	}
	return ri, nil
}
