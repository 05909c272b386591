package engine

import "testing"

func TestTrailingZeros64(t *testing.T) {
	cases := []struct {
		x    uint64
		want int
	}{
		{0, 64},
		{1, 0},
		{2, 1},
		{1 << 63, 63},
		{0b1000, 3},
	}
	for _, c := range cases {
		if got := trailingZeros64(c.x); got != c.want {
			t.Errorf("trailingZeros64(%#x) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestPopcnt(t *testing.T) {
	cases := []struct {
		x    uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{0b1011, 3},
		{^uint64(0), 64},
	}
	for _, c := range cases {
		if got := popcnt(c.x); got != c.want {
			t.Errorf("popcnt(%#x) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestPermutationsCoversEverySubset(t *testing.T) {
	mask := Bitboard(0b1011)
	seen := map[Bitboard]bool{}
	permutations(mask, func(subset Bitboard) {
		if subset&^mask != 0 {
			t.Errorf("permutations produced %#x, not a subset of mask %#x", subset, mask)
		}
		seen[subset] = true
	})
	if got, want := len(seen), 1<<popcnt(uint64(mask)); got != want {
		t.Errorf("permutations visited %d distinct subsets, want %d", got, want)
	}
}
