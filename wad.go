package wad

// Scale is the number of fractional decimal digits preserved by a scaled
// value.
const Scale = 18

// Scaling constants. WAD is the fixed scale factor, HalfWAD is used for
// round-half-up, and the scalers convert integer percent and basis point
// inputs into scaled values.
const (
	WAD           uint64 = 1_000_000_000_000_000_000
	HalfWAD              = WAD / 2
	PercentScaler        = WAD / 100
	BipsScaler           = WAD / 10_000
)
