package bitcount

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/hideo55/go-popcount"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable16(t *testing.T) {
	t.Parallel()

	require.Len(t, table16, 65536)

	for i := range table16 {
		if int(table16[i]) != bits.OnesCount16(uint16(i)) {
			t.Fatalf("table16[%#04x] is %d, expected %d", i, table16[i], bits.OnesCount16(uint16(i)))
		}
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Val uint64
		Exp int
	}{
		{0, 0},
		{1, 1},
		{0b_1011, 3},
		{0xFFFF, 16},
		{0x1_0000, 1},
		{0xFFFF_FFFF, 32},
		{0x8000_0000_0000_0000, 1},
		{0x8000_0000_0000_0001, 2},
		{0x5555_5555_5555_5555, 32},
		{0xFFFF_FFFF_FFFF_FFFF, 64},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%#x", tcase.Val)
		)

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tcase.Exp, Count64(tcase.Val))
			assert.Equal(t, tcase.Exp, Table(tcase.Val))
			assert.Equal(t, tcase.Exp, Native(tcase.Val))

			if tcase.Val <= 0xFFFF_FFFF {
				assert.Equal(t, tcase.Exp, Count32(uint32(tcase.Val)))
			}
			if tcase.Val <= 0xFFFF {
				assert.Equal(t, tcase.Exp, Count16(uint16(tcase.Val)))
			}
		})
	}
}

func TestCount_FakeData(t *testing.T) {
	t.Parallel()

	const (
		total = 100_000
		seed  = 1234567890
	)

	fake := gofakeit.New(seed)

	for i := 0; i < total; i++ {
		val := fake.Uint64()

		if Count64(val) != int(popcount.Count(val)) {
			t.Fatalf("Count64(%#x) is %d, expected %d", val, Count64(val), popcount.Count(val))
		}
		if Count32(uint32(val)) != bits.OnesCount32(uint32(val)) {
			t.Fatalf("Count32(%#x) is %d, expected %d", uint32(val), Count32(uint32(val)), bits.OnesCount32(uint32(val)))
		}
	}
}

func TestRank(t *testing.T) {
	t.Parallel()

	//                 bit: 6  4 3  1
	const bitmap = uint64(0b_1011010)

	for _, count := range []Counter{Table, Native} {
		assert.Equal(t, 0, Rank(count, bitmap, 1<<0))
		assert.Equal(t, 0, Rank(count, bitmap, 1<<1))
		assert.Equal(t, 1, Rank(count, bitmap, 1<<3))
		assert.Equal(t, 2, Rank(count, bitmap, 1<<4))
		assert.Equal(t, 3, Rank(count, bitmap, 1<<6))
		assert.Equal(t, 4, Rank(count, bitmap, 1<<63))
	}
}

func BenchmarkTable(b *testing.B) {
	var sum int

	for i := 0; i < b.N; i++ {
		sum += Table(uint64(i) * 0x9E37_79B9_7F4A_7C15)
	}

	_ = sum
}

func BenchmarkNative(b *testing.B) {
	var sum int

	for i := 0; i < b.N; i++ {
		sum += Native(uint64(i) * 0x9E37_79B9_7F4A_7C15)
	}

	_ = sum
}
