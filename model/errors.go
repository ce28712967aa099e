package model

import "github.com/pkg/errors"

// Error kinds surfaced by grid and world operations. Callers match them with
// errors.Is; operations wrap them with coordinate context.
var (
	ErrInvalidDimensions = errors.New("invalid-dimensions")
	ErrOutOfBounds       = errors.New("out-of-bounds")
	ErrInvalidCrop       = errors.New("invalid-crop")
	ErrInvalidMerge      = errors.New("invalid-merge")
)
