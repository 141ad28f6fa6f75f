package image

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeJPEG encodes a small gradient picture with the standard library.
func makeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, color.RGBA{
				R: byte(x * 255 / w),
				G: byte(y * 255 / h),
				B: byte((x + y) % 256),
				A: 0xff,
			})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, m, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

// withMarkers inserts extra metadata segments right after SOI.
func withMarkers(t *testing.T, raw []byte, markers []Marker) []byte {
	t.Helper()
	out, err := spliceMarkers(raw, markers)
	require.NoError(t, err)
	return out
}

func TestDecode(t *testing.T) {
	data := makeJPEG(t, 96, 64)

	src, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Dimension(96), src.Width)
	assert.Equal(t, Dimension(64), src.Height)
	assert.Len(t, src.Pix, 96*64*3)
	assert.NoError(t, src.Valid())
}

func TestDecodeKeepsMarkers(t *testing.T) {
	markers := []Marker{
		{Tag: 0xe5, Data: []byte("camera stuff")},
		{Tag: 0xfe, Data: []byte("a comment")},
	}
	data := withMarkers(t, makeJPEG(t, 48, 48), markers)

	src, err := Decode(data)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(src.Markers), 2)
	assert.Equal(t, markers[0], src.Markers[0])
	assert.Equal(t, markers[1], src.Markers[1])
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("this is not an image at all"))
	assert.ErrorIs(t, err, ErrorFormat)

	_, err = Decode([]byte{0xff, 0xd8, 0xff, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Decode([]byte{0xff, 0xd8, 0xff})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestEncode(t *testing.T) {
	src := newGradientSource(t, 80, 60)
	img := &ResizedImage{Width: src.Width, Height: src.Height, Pix: src.Pix}

	blob, err := Encode(img, nil, DefaultQuality)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, 60, cfg.Height)
}

func TestEncodeCarriesMarkers(t *testing.T) {
	src := newGradientSource(t, 40, 30)
	img := &ResizedImage{Width: src.Width, Height: src.Height, Pix: src.Pix}
	markers := []Marker{
		{Tag: 0xe5, Data: []byte{1, 2, 3, 0, 255}},
		{Tag: 0xe7, Data: []byte("second")},
		{Tag: 0xfe, Data: []byte("third")},
	}

	blob, err := Encode(img, markers, DefaultQuality)
	require.NoError(t, err)

	// the output is still a decodable JPEG
	_, err = jpeg.Decode(bytes.NewReader(blob))
	require.NoError(t, err)

	got, err := ScanMarkers(blob)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(got), 3)
	for i, m := range markers {
		assert.Equal(t, m, got[i], "marker %d out of order or mangled", i)
	}
}

func TestEncodeErrors(t *testing.T) {
	good := newGradientSource(t, 8, 8)

	_, err := Encode(&ResizedImage{Width: 0, Height: 8}, nil, 70)
	assert.ErrorIs(t, err, ErrDimension)

	_, err = Encode(&ResizedImage{Width: good.Width, Height: good.Height, Pix: good.Pix}, nil, 0)
	assert.ErrorIs(t, err, ErrEncode)

	_, err = Encode(&ResizedImage{Width: good.Width, Height: good.Height, Pix: good.Pix}, nil, 101)
	assert.ErrorIs(t, err, ErrEncode)

	_, err = Encode(&ResizedImage{Width: 8, Height: 8, Pix: make([]byte, 100)}, nil, 70)
	assert.ErrorIs(t, err, ErrEncode)
}

// decode → resize (pass-through) → encode keeps dimensions exactly
func TestRoundTripPassThrough(t *testing.T) {
	data := withMarkers(t, makeJPEG(t, 120, 90), []Marker{{Tag: 0xe5, Data: []byte("keep me")}})

	src, err := Decode(data)
	require.NoError(t, err)

	dst, err := Resize(src, DefaultBound, true)
	require.NoError(t, err)

	blob, err := Encode(dst, src.Markers, DefaultQuality)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 90, cfg.Height)

	kept, err := ScanMarkers(blob)
	require.NoError(t, err)
	require.NotEmpty(t, kept)
	assert.Equal(t, Marker{Tag: 0xe5, Data: []byte("keep me")}, kept[0])
}
