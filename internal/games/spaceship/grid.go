package spaceship

// Cell is the content of one playfield position.
type Cell uint8

const (
	Empty Cell = iota
	Rock
)

// Row is one horizontal line of the playfield.
type Row []Cell

// Grid is a fixed-capacity ring buffer of rows with a parallel record of how
// many rocks each row holds. Rows are addressed by age: age 0 is the oldest
// row (the one level with the ship), age Len()-1 the newest.
type Grid struct {
	rows   []Row
	counts []int
	width  int
	head   int // Physical index of the oldest row
	size   int
}

// NewGrid creates an empty grid holding up to capacity rows of the given width.
func NewGrid(capacity, width int) *Grid {
	if capacity < 1 {
		capacity = 1
	}
	return &Grid{
		rows:   make([]Row, capacity),
		counts: make([]int, capacity),
		width:  width,
	}
}

// Cap returns the maximum number of rows.
func (g *Grid) Cap() int {
	return len(g.rows)
}

// Len returns the number of rows currently stored.
func (g *Grid) Len() int {
	return g.size
}

// Width returns the number of cells per row.
func (g *Grid) Width() int {
	return g.width
}

// Push appends a row holding rocks rocks. Once the grid is full the oldest
// row and its rock count are evicted.
func (g *Grid) Push(row Row, rocks int) {
	capacity := len(g.rows)
	if g.size < capacity {
		idx := (g.head + g.size) % capacity
		g.rows[idx] = row
		g.counts[idx] = rocks
		g.size++
		return
	}
	g.rows[g.head] = row
	g.counts[g.head] = rocks
	g.head = (g.head + 1) % capacity
}

// Fill discards all rows and refills the grid with empty rows.
func (g *Grid) Fill() {
	g.head = 0
	g.size = 0
	for range g.rows {
		g.Push(make(Row, g.width), 0)
	}
}

// At returns the row of the given age. It panics if age is out of range.
func (g *Grid) At(age int) Row {
	return g.rows[g.index(age)]
}

// Count returns the rock count of the row of the given age.
func (g *Grid) Count(age int) int {
	return g.counts[g.index(age)]
}

// Front returns the oldest row, the one level with the ship.
func (g *Grid) Front() Row {
	return g.At(0)
}

// Newest returns the most recently pushed row.
func (g *Grid) Newest() Row {
	return g.At(g.size - 1)
}

func (g *Grid) index(age int) int {
	if age < 0 || age >= g.size {
		panic("spaceship: grid age out of range")
	}
	return (g.head + age) % len(g.rows)
}
