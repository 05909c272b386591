// bitutil.go implements the bitboard primitives used throughout move
// generation and evaluation: population count (SWAR bit counting) and
// least-significant-bit index (a De Bruijn-sequence bitscan), neither
// using a bit-by-bit loop.
//
// Grounded on treepeck-chego's bitutil package, which uses the same
// De Bruijn lookup technique described in section 3.2 of
// http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf.

package engine

// debruijn64 is a De Bruijn sequence multiplier used to map an isolated
// bit to its index via the top 6 bits of (bit * debruijn64).
const debruijn64 = 0x03f79d71b4cb0a89

var debruijnIndex = [64]uint8{
	0, 1, 48, 2, 57, 49, 28, 3,
	61, 58, 50, 42, 38, 29, 17, 4,
	62, 55, 59, 36, 53, 51, 43, 22,
	45, 39, 33, 30, 24, 18, 12, 5,
	63, 47, 56, 27, 60, 41, 37, 16,
	54, 35, 52, 21, 44, 32, 23, 11,
	46, 26, 40, 15, 34, 20, 31, 10,
	25, 14, 19, 9, 13, 8, 7, 6,
}

// trailingZeros64 returns the index of the least-significant set bit of x,
// or 64 if x is zero.
func trailingZeros64(x uint64) int {
	if x == 0 {
		return 64
	}
	return int(debruijnIndex[((x&-x)*debruijn64)>>58])
}

// popcnt returns the number of set bits in x, using the classic SWAR
// (SIMD-within-a-register) bit-counting trick.
func popcnt(x uint64) int {
	const (
		m1 = 0x5555555555555555
		m2 = 0x3333333333333333
		m4 = 0x0f0f0f0f0f0f0f0f
		h1 = 0x0101010101010101
	)
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	return int((x * h1) >> 56)
}

// permutations calls f once for every subset (including BbEmpty and mask
// itself) of the set bits of mask, using the Carry-Rippler trick. Used by
// the magic-multiplier table builder to enumerate every relevant
// occupancy for a sliding piece on a given square.
func permutations(mask Bitboard, f func(subset Bitboard)) {
	for subset := Bitboard(0); ; {
		f(subset)
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}
}
