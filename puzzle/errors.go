package puzzle

import "errors"

var (
	// ErrInvalidDiscCount is returned for disc counts outside 1..constants.DiscLimit
	ErrInvalidDiscCount = errors.New("invalid disc count")

	// ErrDiscInFlight is returned when a move is issued to a disc that is not at rest
	ErrDiscInFlight = errors.New("disc already in flight")
)
