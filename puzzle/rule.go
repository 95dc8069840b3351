package puzzle

import "fmt"

// Role is the part a peg plays in the solve
type Role uint8

const (
	RoleOrigin Role = iota
	RoleAuxiliary
	RoleDestination
)

func (r Role) String() string {
	switch r {
	case RoleOrigin:
		return "origin"
	case RoleAuxiliary:
		return "auxiliary"
	case RoleDestination:
		return "destination"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// RolesForStep returns the pair of roles exchanging a disc at the given 1-based step
// The pattern origin/destination, origin/auxiliary, auxiliary/destination repeats with period 3
// and reproduces the optimal recursive solution without a move list
func RolesForStep(step uint64) (Role, Role) {
	switch step % 3 {
	case 1:
		return RoleOrigin, RoleDestination
	case 2:
		return RoleOrigin, RoleAuxiliary
	default:
		return RoleAuxiliary, RoleDestination
	}
}

// TotalMoves returns 2^n - 1, the optimal move count for n discs
func TotalMoves(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return 1<<uint(n) - 1
}
