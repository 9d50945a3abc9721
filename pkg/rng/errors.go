package rng

import "errors"

var (
	// ErrUnknownSource is returned when a base generator name is not recognized
	ErrUnknownSource = errors.New("rng: unknown source")

	// ErrInvalidProbability is returned when a default probability is outside [0,1]
	ErrInvalidProbability = errors.New("rng: probability must be within [0,1]")
)
