package rate

import (
	"github.com/calebcase/wad"
	"github.com/calebcase/wad/wideint"
)

// PackedLen is the length in bytes of the packed representation: the raw
// scaled value as a 128 bit little-endian integer.
const PackedLen = 16

// MarshalBinary implements encoding.BinaryMarshaler. The full rate width
// packs, so the error is always nil; the fallible signature is kept for the
// interface and for symmetry with the wide type.
func (r Rate) MarshalBinary() (data []byte, err error) {
	data = make([]byte, PackedLen)
	r.val.PutBytesLE(data)

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Rate) UnmarshalBinary(data []byte) (err error) {
	if len(data) != PackedLen {
		return wad.Error.New("invalid length: %d", len(data))
	}

	*r = FromScaled(wideint.U128FromBytesLE(data))

	return nil
}
