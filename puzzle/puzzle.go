package puzzle

import (
	"fmt"

	"github.com/lixenwraith/hanoi/constants"
	"github.com/lixenwraith/hanoi/render"
)

// Peg labels name the role each instance starts with; they never change
var pegLabels = [3]string{"A (origin)", "B (auxiliary)", "C (destination)"}

// Move describes one executed step
type Move struct {
	Step   uint64
	First  Role // Role pair as selected by the step rule
	Second Role
	From   PegID // Peg the mobile disc left
	To     PegID // Peg the mobile disc was pushed onto
	Rank   int
}

func (m Move) String() string {
	return fmt.Sprintf("step %d: %s<->%s %s -> %s disc %d", m.Step, m.First, m.Second, m.From, m.To, m.Rank)
}

// Puzzle owns the three pegs and selects and executes one legal move per step
// Roles are slots pointing at fixed peg instances; relabeling permutes the slots
type Puzzle struct {
	geom      Geometry
	discCount int

	pegs  [3]*Peg
	roles [3]*Peg // indexed by Role

	step      uint64
	total     uint64
	relabeled bool
}

// New builds a puzzle with discCount discs stacked on peg A
func New(discCount int, g Geometry) (*Puzzle, error) {
	if discCount <= 0 || discCount > constants.DiscLimit {
		return nil, fmt.Errorf("%d discs: %w", discCount, ErrInvalidDiscCount)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	p := &Puzzle{
		geom:      g,
		discCount: discCount,
		total:     TotalMoves(discCount),
	}

	for i := range p.pegs {
		p.pegs[i] = NewPeg(PegID(i), pegLabels[i], g.PegX(i), g)
	}
	p.roles = p.pegs

	// Largest disc first so the smallest ends on top
	origin := p.pegs[PegA]
	for rank := discCount - 1; rank >= 0; rank-- {
		origin.Push(NewDisc(rank, origin.x, g.StackY(origin.Len()), g))
	}

	return p, nil
}

func (p *Puzzle) DiscCount() int { return p.discCount }
func (p *Puzzle) StepIndex() uint64 { return p.step }
func (p *Puzzle) TotalMoves() uint64 { return p.total }
func (p *Puzzle) Solved() bool { return p.step >= p.total }
func (p *Puzzle) Geometry() Geometry { return p.geom }

// Peg returns a peg by its fixed identity
func (p *Puzzle) Peg(id PegID) *Peg {
	return p.pegs[id]
}

// PegFor returns the peg currently filling a role
func (p *Puzzle) PegFor(r Role) *Peg {
	return p.roles[r]
}

// InFlight returns the disc currently moving, if any
func (p *Puzzle) InFlight() (*Disc, bool) {
	for _, peg := range p.pegs {
		for _, d := range peg.discs {
			if d.phase != PhaseIdle {
				return d, true
			}
		}
	}
	return nil, false
}

// Animating reports whether any disc is moving
func (p *Puzzle) Animating() bool {
	_, ok := p.InFlight()
	return ok
}

// Step performs the next move of the solution
// Returns false without changing state once the puzzle is solved
// A disc still in flight from the previous step is settled first
func (p *Puzzle) Step() (Move, bool) {
	if p.step == 0 && !p.relabeled {
		// The period-3 rule ends on the auxiliary peg for even counts; swapping the
		// slots once makes every count finish on the destination instance
		if p.discCount%2 == 0 {
			p.roles[RoleAuxiliary], p.roles[RoleDestination] = p.roles[RoleDestination], p.roles[RoleAuxiliary]
		}
		p.relabeled = true
	}

	if p.step >= p.total {
		return Move{}, false
	}
	p.Settle()

	p.step++
	first, second := RolesForStep(p.step)
	move := p.exchange(p.roles[first], p.roles[second])
	move.Step = p.step
	move.First = first
	move.Second = second
	return move, true
}

// exchange moves the smaller of the two top discs onto the other peg
func (p *Puzzle) exchange(a, b *Peg) Move {
	discA, okA := a.Pop()
	discB, okB := b.Pop()

	switch {
	case !okA && !okB:
		panic(fmt.Sprintf("puzzle: step %d exchanges two empty pegs %s and %s", p.step, a.id, b.id))
	case !okA:
		return p.land(discB, b, a)
	case !okB:
		return p.land(discA, a, b)
	case discA.width > discB.width:
		a.Push(discA)
		return p.land(discB, b, a)
	default:
		b.Push(discB)
		return p.land(discA, a, b)
	}
}

// land starts d's animation toward the top of dst and pushes it there immediately
func (p *Puzzle) land(d *Disc, src, dst *Peg) Move {
	if err := d.BeginMove(dst.x, p.geom.StackY(dst.Len())); err != nil {
		panic(fmt.Sprintf("puzzle: %v", err))
	}
	dst.Push(d)
	return Move{From: src.id, To: dst.id, Rank: d.rank}
}

// Tick advances every moving disc by one speed quantum
// Returns true if a disc came to rest
func (p *Puzzle) Tick() bool {
	landed := false
	for _, peg := range p.pegs {
		for _, d := range peg.discs {
			if d.Tick() {
				landed = true
			}
		}
	}
	return landed
}

// Advance moves every moving disc dist pixels within its current phase
func (p *Puzzle) Advance(dist float64) bool {
	landed := false
	for _, peg := range p.pegs {
		for _, d := range peg.discs {
			if d.Advance(dist) {
				landed = true
			}
		}
	}
	return landed
}

// Settle completes any animation in progress
func (p *Puzzle) Settle() bool {
	settled := false
	for _, peg := range p.pegs {
		for _, d := range peg.discs {
			if d.Settle() {
				settled = true
			}
		}
	}
	return settled
}

// Draw renders all pegs in fixed A, B, C order without advancing motion
func (p *Puzzle) Draw(s render.Surface) {
	for _, peg := range p.pegs {
		peg.Draw(s)
	}
}

// Render draws one frame, advancing each moving disc by one tick as it is drawn
// Returns true if a disc came to rest
func (p *Puzzle) Render(s render.Surface) bool {
	landed := false
	for _, peg := range p.pegs {
		if len(peg.Render(s)) > 0 {
			landed = true
		}
	}
	return landed
}
