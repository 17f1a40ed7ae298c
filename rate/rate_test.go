package rate_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/wad"
	"github.com/calebcase/wad/rate"
	"github.com/calebcase/wad/wideint"
)

var max128 = wideint.Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

func TestRoundTripUint64(t *testing.T) {
	type TC struct {
		val  uint64
		Mark error
	}

	tcs := []TC{
		{val: 0, Mark: oops.New("unexpected")},
		{val: 1, Mark: oops.New("unexpected")},
		{val: 10_000, Mark: oops.New("unexpected")},
		{val: ^uint64(0), Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			r := rate.FromUint64(tc.val)

			val, err := r.TryFloorUint64()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.val, val, tc.Mark)

			val, err = r.TryCeilUint64()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.val, val, tc.Mark)

			val, err = r.TryRoundUint64()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.val, val, tc.Mark)
		})
	}
}

func TestIdentities(t *testing.T) {
	one, err := rate.One().TryMul(rate.One())
	require.NoError(t, err)
	require.Equal(t, rate.One(), one)

	for _, x := range []rate.Rate{
		rate.Zero(),
		rate.One(),
		rate.FromBips(1),
		rate.FromPercent(255),
	} {
		sum, err := rate.Zero().TryAdd(x)
		require.NoError(t, err)
		require.Equal(t, x, sum)
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "0.500000000000000000", rate.FromPercent(50).String())
	require.Equal(t, "0.000100000000000000", rate.FromBips(1).String())
	require.Equal(t, "1.000000000000000000", rate.One().String())
}

func TestFromBips(t *testing.T) {
	require.Equal(
		t,
		rate.FromScaled(wideint.U128From64(100_000_000_000_000)),
		rate.FromBips(1),
	)
	require.Equal(t, rate.One(), rate.FromBips(10_000))

	// Inputs past the 64 bit wrap point stay exact at storage width.
	require.Equal(t, rate.FromUint64(20), rate.FromBips(200_000))
}

// TestNarrowWidth pins the compact type's reason to exist: results that the
// wide type can hold must still fail here.
func TestNarrowWidth(t *testing.T) {
	max := ^uint64(0)

	_, err := rate.FromUint64(max).TryMulUint64(max)
	require.ErrorIs(t, err, wad.ErrMulOverflow)

	_, err = rate.FromUint64(max).TryMul(rate.FromUint64(max))
	require.ErrorIs(t, err, wad.ErrMulOverflow)

	_, err = rate.FromScaled(max128).TryAdd(rate.One())
	require.ErrorIs(t, err, wad.ErrAddOverflow)

	// Near the top of the width the half-wad add has no room left.
	_, err = rate.FromScaled(max128).TryRoundUint64()
	require.ErrorIs(t, err, wad.ErrAddOverflow)

	_, err = rate.FromScaled(max128).TryCeilUint64()
	require.ErrorIs(t, err, wad.ErrAddOverflow)

	// The floor is exact but exceeds 64 bits.
	_, err = rate.FromScaled(max128).TryFloorUint64()
	require.ErrorIs(t, err, wad.ErrUnableToRoundU64)
}

func TestDividedByZero(t *testing.T) {
	_, err := rate.One().TryDiv(rate.Zero())
	require.ErrorIs(t, err, wad.ErrDividedByZero)

	_, err = rate.One().TryDivUint64(0)
	require.ErrorIs(t, err, wad.ErrDividedByZero)
}

func TestSubUnderflow(t *testing.T) {
	_, err := rate.Zero().TrySub(rate.One())
	require.ErrorIs(t, err, wad.ErrSubUnderflow)
}

func TestTryPow(t *testing.T) {
	type TC struct {
		base rate.Rate
		exp  uint64
		want rate.Rate
		Mark error
	}

	tcs := []TC{
		{
			base: rate.Zero(),
			exp:  0,
			want: rate.One(),
			Mark: oops.New("unexpected"),
		},
		{
			base: rate.FromPercent(10),
			exp:  0,
			want: rate.One(),
			Mark: oops.New("unexpected"),
		},
		{
			base: rate.FromPercent(10),
			exp:  1,
			want: rate.FromPercent(10),
			Mark: oops.New("unexpected"),
		},
		{
			base: rate.FromPercent(10),
			exp:  2,
			want: rate.FromPercent(1),
			Mark: oops.New("unexpected"),
		},
		{
			base: rate.FromUint64(2),
			exp:  3,
			want: rate.FromUint64(8),
			Mark: oops.New("unexpected"),
		},
		{
			// 1.1^4 == 1.4641 exactly.
			base: rate.FromPercent(110),
			exp:  4,
			want: rate.FromScaled(wideint.U128From64(1_464_100_000_000_000_000)),
			Mark: oops.New("unexpected"),
		},
		{
			base: rate.One(),
			exp:  1_000_000,
			want: rate.One(),
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			got, err := tc.base.TryPow(tc.exp)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.want, got, tc.Mark)
		})
	}

	_, err := rate.FromUint64(^uint64(0)).TryPow(2)
	require.ErrorIs(t, err, wad.ErrMulOverflow)
}

func TestCodec(t *testing.T) {
	for _, raw := range []wideint.Uint128{
		{},
		wideint.U128From64(wad.WAD),
		{Hi: 54_321, Lo: 12_345},
		max128,
	} {
		r := rate.FromScaled(raw)

		data, err := r.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, rate.PackedLen)

		var out rate.Rate

		err = out.UnmarshalBinary(data)
		require.NoError(t, err)
		require.Equal(t, r, out)
	}

	var r rate.Rate

	err := r.UnmarshalBinary(make([]byte, 8))
	require.Error(t, err)
	require.True(t, wad.Error.Has(err))
}

func TestCmp(t *testing.T) {
	require.Equal(t, 0, rate.One().Cmp(rate.FromPercent(100)))
	require.Equal(t, -1, rate.Zero().Cmp(rate.One()))
	require.Equal(t, 1, rate.FromUint64(2).Cmp(rate.One()))
	require.True(t, rate.Zero().IsZero())
	require.False(t, rate.One().IsZero())
}
