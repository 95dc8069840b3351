package main

import (
	"fmt"
	"io"

	"github.com/lixenwraith/hanoi/constants"
	"github.com/lixenwraith/hanoi/puzzle"
)

// writeTrace solves an n-disc puzzle headless, streaming one move per line,
// then prints the final peg contents
func writeTrace(w io.Writer, n int, g puzzle.Geometry) error {
	if n > constants.TraceDiscLimit {
		return fmt.Errorf("trace supports at most %d discs, got %d", constants.TraceDiscLimit, n)
	}

	count := 0
	p, err := puzzle.Walk(n, g, func(m puzzle.Move) error {
		count++
		_, err := fmt.Fprintln(w, m)
		return err
	})
	if err != nil {
		return err
	}

	for _, id := range []puzzle.PegID{puzzle.PegA, puzzle.PegB, puzzle.PegC} {
		if _, err := fmt.Fprintf(w, "%s: %v\n", id, ranks(p.Peg(id))); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "solved in %d moves\n", count)
	return err
}

// ranks lists a peg's disc ranks from top to bottom
func ranks(peg *puzzle.Peg) []int {
	discs := peg.Discs()
	out := make([]int, len(discs))
	for i, d := range discs {
		out[i] = d.Rank()
	}
	return out
}
