package puzzle

// Walk runs every step for n discs, landing each disc at once, and hands
// each move to fn in order; a non-nil error from fn stops the walk
// Returns the final puzzle
func Walk(n int, g Geometry, fn func(Move) error) (*Puzzle, error) {
	p, err := New(n, g)
	if err != nil {
		return nil, err
	}

	for {
		m, ok := p.Step()
		if !ok {
			break
		}
		p.Settle()
		if err := fn(m); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Solve collects the full move sequence for n discs together with the final puzzle
func Solve(n int, g Geometry) ([]Move, *Puzzle, error) {
	var moves []Move
	p, err := Walk(n, g, func(m Move) error {
		moves = append(moves, m)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return moves, p, nil
}
