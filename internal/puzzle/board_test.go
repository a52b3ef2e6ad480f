package puzzle

import (
	"math/rand"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b, err := New(3, 3)
	if err != nil {
		t.Fatalf("New(3, 3) returned error: %v", err)
	}

	if !b.IsSolved() {
		t.Error("Fresh board should be solved")
	}

	if b.Empty() != (Pos{Row: 2, Col: 2}) {
		t.Errorf("Empty slot should start at bottom-right, got %v", b.Empty())
	}

	expected := []int{1, 2, 3, 4, 5, 6, 7, 8, 0}
	snapshot := b.Snapshot()
	for i, v := range expected {
		if snapshot[i] != v {
			t.Errorf("Snapshot[%d] = %d, expected %d", i, snapshot[i], v)
		}
	}
}

func TestNewBoardTooSmall(t *testing.T) {
	if _, err := New(1, 3); err == nil {
		t.Error("Expected error for 1-row board")
	}
	if _, err := New(3, 0); err == nil {
		t.Error("Expected error for 0-column board")
	}
}

func TestSlide(t *testing.T) {
	b, _ := New(3, 3)

	// Tile above the empty slot slides down
	if !b.Slide(Pos{Row: 1, Col: 2}) {
		t.Fatal("Sliding a neighbor of the empty slot should succeed")
	}
	if b.Empty() != (Pos{Row: 1, Col: 2}) {
		t.Errorf("Empty slot should follow the slid tile, got %v", b.Empty())
	}
	if b.Tile(2, 2) != 6 {
		t.Errorf("Tile 6 should now occupy the old empty cell, got %d", b.Tile(2, 2))
	}
	if b.IsSolved() {
		t.Error("Board should not be solved after one slide")
	}
}

func TestSlideNoOps(t *testing.T) {
	b, _ := New(3, 3)
	before := b.Snapshot()

	cases := []struct {
		name string
		pos  Pos
	}{
		{"empty slot itself", Pos{Row: 2, Col: 2}},
		{"non-neighbor", Pos{Row: 0, Col: 0}},
		{"diagonal neighbor", Pos{Row: 1, Col: 1}},
		{"out of bounds", Pos{Row: 5, Col: 5}},
		{"negative", Pos{Row: -1, Col: 0}},
	}

	for _, tc := range cases {
		if b.Slide(tc.pos) {
			t.Errorf("Slide(%s) should be a no-op", tc.name)
		}
	}

	after := b.Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("No-op slides must not change the board")
		}
	}
}

func TestSlideUndo(t *testing.T) {
	b, _ := New(3, 3)

	moved := Pos{Row: 2, Col: 1}
	b.Slide(moved)
	b.Slide(Pos{Row: 2, Col: 2}) // slide it back

	if !b.IsSolved() {
		t.Error("Slide followed by its inverse should restore the solved state")
	}
}

func TestShuffleIsSolvable(t *testing.T) {
	// A shuffled board must always be reachable from the solved state,
	// so a reverse search over legal moves must find the solution. For a
	// cheap proxy we verify the single-empty-slot invariant and that the
	// shuffle actually displaced tiles.
	for _, size := range []int{3, 4, 5} {
		b, _ := New(size, size)
		rng := rand.New(rand.NewSource(42))
		b.Shuffle(rng, DefaultShuffleMoves)

		zeros := 0
		seen := make(map[int]bool)
		for _, v := range b.Snapshot() {
			if v == 0 {
				zeros++
			}
			if seen[v] {
				t.Fatalf("%dx%d: duplicate tile %d after shuffle", size, size, v)
			}
			seen[v] = true
		}
		if zeros != 1 {
			t.Errorf("%dx%d: expected exactly one empty slot, got %d", size, size, zeros)
		}
		if b.IsSolved() {
			t.Errorf("%dx%d: board should not remain solved after %d shuffle moves", size, size, DefaultShuffleMoves)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	b1, _ := New(4, 4)
	b2, _ := New(4, 4)

	b1.Shuffle(rand.New(rand.NewSource(12345)), 100)
	b2.Shuffle(rand.New(rand.NewSource(12345)), 100)

	s1, s2 := b1.Snapshot(), b2.Snapshot()
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Fatalf("Same seed should produce the same scramble, mismatch at %d", i)
		}
	}
}

func TestSolvedPos(t *testing.T) {
	b, _ := New(3, 3)

	tests := []struct {
		number   int
		expected Pos
	}{
		{1, Pos{Row: 0, Col: 0}},
		{3, Pos{Row: 0, Col: 2}},
		{5, Pos{Row: 1, Col: 1}},
		{8, Pos{Row: 2, Col: 1}},
		{0, Pos{Row: 2, Col: 2}},
	}

	for _, test := range tests {
		if got := b.SolvedPos(test.number); got != test.expected {
			t.Errorf("SolvedPos(%d) = %v, expected %v", test.number, got, test.expected)
		}
	}
}
