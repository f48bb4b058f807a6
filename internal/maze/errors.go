package maze

import "errors"

var (
	// ErrInvalidConfiguration is returned for non-positive sizes, block
	// dimensions, or out-of-range probabilities.
	ErrInvalidConfiguration = errors.New("invalid maze configuration")
	// ErrInsufficientSize is returned when not even one block fits inside the
	// border ring.
	ErrInsufficientSize = errors.New("maze too small for one block inside the border")
	// ErrGenerationFailed is returned when the repair budget runs out before
	// the start and end cells are connected.
	ErrGenerationFailed = errors.New("maze generation failed to connect start and end")
)
