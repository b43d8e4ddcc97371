package spaceship

import "math/rand"

// minRocks is the fewest rocks a generated row holds.
const minRocks = 3

// RockGenerator produces new rows with randomly placed rocks.
type RockGenerator struct {
	rng     *rand.Rand
	width   int
	density int
	perm    []int // Scratch permutation of column indices
}

// NewRockGenerator creates a generator drawing from rng.
// density is the percentage of the width that may hold rocks in one row.
func NewRockGenerator(rng *rand.Rand, width, density int) *RockGenerator {
	perm := make([]int, width)
	for i := range perm {
		perm[i] = i
	}
	return &RockGenerator{
		rng:     rng,
		width:   width,
		density: density,
		perm:    perm,
	}
}

// CountRange returns the half-open range [lo, hi) the rock count is drawn from:
// [3, floor(density% of width)), widened to hold at least one value and
// narrowed so a row never asks for more rocks than it has columns.
func (rg *RockGenerator) CountRange() (lo, hi int) {
	lo = minRocks
	hi = rg.density * rg.width / 100
	if hi <= lo {
		hi = lo + 1
	}
	if hi > rg.width+1 {
		hi = rg.width + 1
	}
	if lo >= hi {
		lo = hi - 1
	}
	return lo, hi
}

// Count draws a rock count uniformly from CountRange.
func (rg *RockGenerator) Count() int {
	lo, hi := rg.CountRange()
	return lo + rg.rng.Intn(hi-lo)
}

// Columns picks k distinct columns uniformly without replacement.
// k is clamped to [0, width].
func (rg *RockGenerator) Columns(k int) []int {
	if k > rg.width {
		k = rg.width
	}
	if k < 0 {
		k = 0
	}

	// Partial Fisher-Yates shuffle; the first k entries are the sample.
	for i := 0; i < k; i++ {
		j := i + rg.rng.Intn(rg.width-i)
		rg.perm[i], rg.perm[j] = rg.perm[j], rg.perm[i]
	}

	cols := make([]int, k)
	copy(cols, rg.perm[:k])
	return cols
}

// NewRow generates a row and returns it with its rock count.
func (rg *RockGenerator) NewRow() (Row, int) {
	cols := rg.Columns(rg.Count())
	row := make(Row, rg.width)
	for _, c := range cols {
		row[c] = Rock
	}
	return row, len(cols)
}
