package errors

import "errors"

var (
	ErrEmptySet           = errors.New("cannot generate statistics over an empty set of rides")
	ErrInvalidHandlerType = errors.New("invalid handler type")
)
