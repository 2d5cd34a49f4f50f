package datastructure

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidPoint   = fmt.Errorf("%w: invalid coordinate", ErrInvalidArgument)
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found", ErrInvalidArgument)
	ErrNegativeWeight = fmt.Errorf("%w: negative edge length", ErrInvalidArgument)
)
