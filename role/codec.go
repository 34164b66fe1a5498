package role

import (
	"encoding/binary"
	"errors"
)

// ErrInvalidMaskBlob is returned by [DecodeMask] for blobs whose length does
// not match a supported mask width.
var ErrInvalidMaskBlob = errors.New("invalid mask blob size")

// EncodeMask serializes a mask into the big-endian blob format persisted by
// the membership store. Blob length selects the width on decode: 8 bytes for
// [Mask64], 16 bytes for [Mask128].
func EncodeMask(mask Mask) ([]byte, error) {
	switch m := mask.(type) {
	case *Mask64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, uint64(*m))
		return b, nil
	case *Mask128:
		b := make([]byte, 16)
		binary.BigEndian.PutUint64(b[0:8], m.A)
		binary.BigEndian.PutUint64(b[8:16], m.B)
		return b, nil
	default:
		return nil, errors.New("invalid mask type")
	}
}

// DecodeMask deserializes a blob produced by [EncodeMask].
func DecodeMask(data []byte) (Mask, error) {
	switch len(data) {
	case 8:
		m := Mask64(binary.BigEndian.Uint64(data))
		return &m, nil
	case 16:
		return &Mask128{
			A: binary.BigEndian.Uint64(data[0:8]),
			B: binary.BigEndian.Uint64(data[8:16]),
		}, nil
	default:
		return nil, ErrInvalidMaskBlob
	}
}
