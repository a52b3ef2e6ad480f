package model

// Progress holds the player's best results per board size.
// Keys are size keys produced by SizeKey, e.g. "3x3".
type Progress struct {
	BestMoves map[string]int
	BestStars map[string]int
}

// NewProgress creates an empty progress record.
func NewProgress() *Progress {
	return &Progress{
		BestMoves: make(map[string]int),
		BestStars: make(map[string]int),
	}
}

// BestMovesFor returns the best move count for a size key, or -1 if none.
func (p *Progress) BestMovesFor(sizeKey string) int {
	if v, ok := p.BestMoves[sizeKey]; ok {
		return v
	}
	return -1
}

// BestStarsFor returns the best star rating for a size key, or 0 if none.
func (p *Progress) BestStarsFor(sizeKey string) int {
	return p.BestStars[sizeKey]
}

// Record stores a completed result and reports whether either best improved.
// Fewer moves and more stars are improvements; ties change nothing.
func (p *Progress) Record(sizeKey string, moves, stars int) bool {
	improved := false

	if best, ok := p.BestMoves[sizeKey]; !ok || moves < best {
		p.BestMoves[sizeKey] = moves
		improved = true
	}
	if stars > p.BestStars[sizeKey] {
		p.BestStars[sizeKey] = stars
		improved = true
	}
	return improved
}
