package decimal

import (
	"github.com/calebcase/wad"
	"github.com/calebcase/wad/wideint"
)

// PackedLen is the length in bytes of the packed representation: the raw
// scaled value as a 128 bit little-endian integer.
const PackedLen = 16

// MarshalBinary implements encoding.BinaryMarshaler. A value whose raw
// magnitude does not fit within 128 bits cannot be packed and reports
// wad.ErrUnableToRoundU128.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	raw, err := d.Scaled()
	if err != nil {
		return nil, wad.Error.Wrap(err)
	}

	data = make([]byte, PackedLen)
	raw.PutBytesLE(data)

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	if len(data) != PackedLen {
		return wad.Error.New("invalid length: %d", len(data))
	}

	*d = FromScaled(wideint.U128FromBytesLE(data))

	return nil
}
