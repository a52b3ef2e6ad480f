package puzzle

import (
	"fmt"
	"math/rand"
)

// DefaultShuffleMoves is the scramble depth used when starting a level.
const DefaultShuffleMoves = 80

// Pos identifies a board cell by row and column.
type Pos struct {
	Row int
	Col int
}

// Board is a sliding-tile puzzle grid. Tiles are numbered 1..Rows*Cols-1 and
// exactly one cell holds 0, the empty slot. In the solved configuration tiles
// are in sequential order with the empty slot at the bottom-right.
type Board struct {
	Rows int
	Cols int

	cells [][]int
	empty Pos
}

// New creates a solved board of the given dimensions.
func New(rows, cols int) (*Board, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("board too small: %dx%d", rows, cols)
	}

	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = r*cols + c + 1
		}
	}
	cells[rows-1][cols-1] = 0

	return &Board{
		Rows:  rows,
		Cols:  cols,
		cells: cells,
		empty: Pos{Row: rows - 1, Col: cols - 1},
	}, nil
}

// Tile returns the tile number at the given cell, 0 for the empty slot.
func (b *Board) Tile(r, c int) int {
	return b.cells[r][c]
}

// Empty returns the position of the empty slot.
func (b *Board) Empty() Pos {
	return b.empty
}

// InBounds reports whether the position lies on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.Rows && p.Col >= 0 && p.Col < b.Cols
}

// neighbors returns the orthogonally adjacent cells of p.
func (b *Board) neighbors(p Pos) []Pos {
	candidates := []Pos{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}

	result := make([]Pos, 0, 4)
	for _, c := range candidates {
		if b.InBounds(c) {
			result = append(result, c)
		}
	}
	return result
}

// Slide moves the tile at p into the empty slot if the two are adjacent.
// It reports whether a move actually occurred; sliding the empty slot itself
// or a non-neighbor is a no-op.
func (b *Board) Slide(p Pos) bool {
	if !b.InBounds(p) || p == b.empty {
		return false
	}

	adjacent := false
	for _, n := range b.neighbors(b.empty) {
		if n == p {
			adjacent = true
			break
		}
	}
	if !adjacent {
		return false
	}

	b.cells[b.empty.Row][b.empty.Col] = b.cells[p.Row][p.Col]
	b.cells[p.Row][p.Col] = 0
	b.empty = p
	return true
}

// Shuffle performs the given number of random legal slides. Because only
// legal moves are applied the resulting configuration is always solvable.
func (b *Board) Shuffle(rng *rand.Rand, moves int) {
	var last Pos = b.empty
	for i := 0; i < moves; i++ {
		options := b.neighbors(b.empty)

		// Avoid immediately undoing the previous slide so the scramble
		// depth is not wasted on back-and-forth pairs.
		if len(options) > 1 {
			filtered := options[:0]
			for _, o := range options {
				if o != last {
					filtered = append(filtered, o)
				}
			}
			options = filtered
		}

		target := options[rng.Intn(len(options))]
		last = b.empty
		b.Slide(target)
	}
}

// IsSolved reports whether tiles are in sequential order with the empty slot
// at the bottom-right.
func (b *Board) IsSolved() bool {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			expected := r*b.Cols + c + 1
			if r == b.Rows-1 && c == b.Cols-1 {
				expected = 0
			}
			if b.cells[r][c] != expected {
				return false
			}
		}
	}
	return true
}

// Snapshot returns the tile numbers in row-major order.
func (b *Board) Snapshot() []int {
	out := make([]int, 0, b.Rows*b.Cols)
	for r := 0; r < b.Rows; r++ {
		out = append(out, b.cells[r]...)
	}
	return out
}

// SolvedPos returns the cell a tile number occupies in the solved
// configuration. Used to pick the matching image slice for a tile.
func (b *Board) SolvedPos(number int) Pos {
	if number <= 0 || number >= b.Rows*b.Cols {
		return Pos{Row: b.Rows - 1, Col: b.Cols - 1}
	}
	return Pos{Row: (number - 1) / b.Cols, Col: (number - 1) % b.Cols}
}
