package image

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitGeometry(t *testing.T) {
	tests := []struct {
		name       string
		w, h       Dimension
		bound      Dimension
		wantW      Dimension
		wantH      Dimension
	}{
		{name: "landscape 4:3", w: 4000, h: 3000, bound: 1280, wantW: 1280, wantH: 960},
		{name: "portrait 3:4", w: 3000, h: 4000, bound: 1280, wantW: 960, wantH: 1280},
		{name: "already smaller passes through", w: 800, h: 600, bound: 1280, wantW: 800, wantH: 600},
		{name: "exactly at bound", w: 1280, h: 960, bound: 1280, wantW: 1280, wantH: 960},
		{name: "square", w: 5000, h: 5000, bound: 1280, wantW: 1280, wantH: 1280},
		{name: "extreme ratio floors to one", w: 10000, h: 2, bound: 100, wantW: 100, wantH: 1},
		{name: "odd ratio floors", w: 1999, h: 1000, bound: 500, wantW: 500, wantH: 250},
		{name: "zero bound passes through", w: 640, h: 480, bound: 0, wantW: 640, wantH: 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := FitGeometry(tt.w, tt.h, tt.bound)
			assert.Equal(t, tt.wantW, g.Width)
			assert.Equal(t, tt.wantH, g.Height)
		})
	}
}

func TestFitGeometryIdempotent(t *testing.T) {
	g := FitGeometry(4000, 3000, 1280)
	again := FitGeometry(g.Width, g.Height, 1280)
	assert.Equal(t, g, again, "resizing an already fitted image must not drift")
}

func TestFitGeometryAspect(t *testing.T) {
	cases := []Geometry{
		{3872, 2592}, {2592, 3872}, {1921, 1080}, {4032, 3024}, {7000, 500},
	}
	for _, c := range cases {
		g := FitGeometry(c.Width, c.Height, 1280)
		larger := g.Width
		if g.Height > larger {
			larger = g.Height
		}
		assert.Equal(t, Dimension(1280), larger, "source %s", c)

		// the fitted ratio may differ from the source ratio by at most the
		// rounding of one pixel on the shorter side
		got := float64(g.Width) / float64(g.Height)
		want := float64(c.Width) / float64(c.Height)
		short := g.Height
		if g.Width < short {
			short = g.Width
		}
		tol := want / float64(short)
		assert.LessOrEqual(t, math.Abs(got-want), tol, "source %s fitted to %s", c, g)
	}
}

func TestResize(t *testing.T) {
	src := newGradientSource(t, 200, 150)

	dst, err := Resize(src, 100, false)
	require.NoError(t, err)
	assert.Equal(t, Dimension(100), dst.Width)
	assert.Equal(t, Dimension(75), dst.Height)
	assert.Len(t, dst.Pix, 100*75*3)
}

func TestResizeSharpen(t *testing.T) {
	src := newGradientSource(t, 200, 150)

	plain, err := Resize(src, 100, false)
	require.NoError(t, err)
	sharp, err := Resize(src, 100, true)
	require.NoError(t, err)

	assert.Equal(t, plain.Width, sharp.Width)
	assert.Equal(t, plain.Height, sharp.Height)
	assert.Len(t, sharp.Pix, len(plain.Pix))
}

func TestResizePassThrough(t *testing.T) {
	src := newGradientSource(t, 120, 90)

	dst, err := Resize(src, 1280, true)
	require.NoError(t, err)
	assert.Equal(t, src.Width, dst.Width)
	assert.Equal(t, src.Height, dst.Height)
	// pass-through copies pixels untouched, no resample and no sharpening
	assert.Equal(t, src.Pix, dst.Pix)

	// and the copy is a copy, not an alias
	dst.Pix[0]++
	assert.NotEqual(t, src.Pix[0], dst.Pix[0])
}

func TestResizeBadBuffer(t *testing.T) {
	src := &SourceImage{Width: 10, Height: 10, Pix: make([]byte, 7)}
	_, err := Resize(src, 100, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Resize(&SourceImage{}, 100, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimension)
}

// newGradientSource builds a SourceImage with a deterministic gradient.
func newGradientSource(t *testing.T, w, h int) *SourceImage {
	t.Helper()
	pix := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix = append(pix, byte(x*255/w), byte(y*255/h), byte((x+y)%256))
		}
	}
	src := &SourceImage{Width: Dimension(w), Height: Dimension(h), Pix: pix}
	require.NoError(t, src.Valid())
	return src
}
