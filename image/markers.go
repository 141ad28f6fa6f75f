package image

import (
	"bytes"
	"fmt"
)

// JPEG marker bytes used by the segment walk.
const (
	mTEM   = 0x01
	mRST0  = 0xd0
	mRST7  = 0xd7
	mSOI   = 0xd8
	mEOI   = 0xd9
	mSOS   = 0xda
	mAPP0  = 0xe0
	mAPP15 = 0xef
	mCOM   = 0xfe
)

// isMetaTag reports whether tag carries auxiliary data worth preserving
// through a re-encode (APP0..APP15 and comments; EXIF lives in APP1).
func isMetaTag(tag byte) bool {
	return (tag >= mAPP0 && tag <= mAPP15) || tag == mCOM
}

// ScanMarkers walks the segment stream of a JPEG file from SOI up to the
// start of scan and collects every APPn/COM segment verbatim, in order.
// Pixel data is not touched.
func ScanMarkers(data []byte) ([]Marker, error) {
	if !IsJPEG(data) {
		return nil, ErrorFormat
	}

	var markers []Marker
	i := 2 // past SOI
	for {
		if i+2 > len(data) {
			return nil, fmt.Errorf("%w: truncated segment stream at %d", ErrDecode, i)
		}
		if data[i] != 0xff {
			return nil, fmt.Errorf("%w: bad segment start %#02x at %d", ErrDecode, data[i], i)
		}
		tag := data[i+1]
		if tag == mSOS || tag == mEOI {
			return markers, nil
		}
		// standalone markers carry no length word
		if tag == mTEM || (tag >= mRST0 && tag <= mRST7) {
			i += 2
			continue
		}
		if i+4 > len(data) {
			return nil, fmt.Errorf("%w: truncated segment header at %d", ErrDecode, i)
		}
		n := int(data[i+2])<<8 | int(data[i+3])
		if n < 2 || i+2+n > len(data) {
			return nil, fmt.Errorf("%w: segment %#02x at %d overruns buffer", ErrDecode, tag, i)
		}
		if isMetaTag(tag) {
			payload := make([]byte, n-2)
			copy(payload, data[i+4:i+2+n])
			markers = append(markers, Marker{Tag: tag, Data: payload})
		}
		i += 2 + n
	}
}

// spliceMarkers writes the preserved segments back into an encoded JPEG,
// directly after SOI and before everything the encoder emitted. Tags and
// payloads are copied byte for byte.
func spliceMarkers(raw []byte, markers []Marker) ([]byte, error) {
	if len(markers) == 0 {
		return raw, nil
	}
	if !IsJPEG(raw) {
		return nil, fmt.Errorf("%w: encoder produced no JPEG signature", ErrEncode)
	}

	extra := 0
	for _, m := range markers {
		if len(m.Data)+2 > 0xffff {
			return nil, fmt.Errorf("%w: marker %#02x payload of %d bytes does not fit a segment",
				ErrEncode, m.Tag, len(m.Data))
		}
		extra += 4 + len(m.Data)
	}

	var buf bytes.Buffer
	buf.Grow(len(raw) + extra)
	buf.Write(raw[:2])
	for _, m := range markers {
		n := len(m.Data) + 2
		buf.WriteByte(0xff)
		buf.WriteByte(m.Tag)
		buf.WriteByte(byte(n >> 8))
		buf.WriteByte(byte(n))
		buf.Write(m.Data)
	}
	buf.Write(raw[2:])
	return buf.Bytes(), nil
}
