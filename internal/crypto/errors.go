package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the parent of every precondition failure.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidTier      = fmt.Errorf("%w: complexity tier should be one of 1, 2, 3, 4", ErrInvalidArgument)
	ErrLengthTooShort   = fmt.Errorf("%w: password length too short for tier", ErrInvalidArgument)
	ErrLengthTooLong    = fmt.Errorf("%w: password length must be at most %d", ErrInvalidArgument, MaxLength)
	ErrEmptyPassword    = fmt.Errorf("%w: empty password", ErrInvalidArgument)
	ErrInvalidCharacter = fmt.Errorf("%w: invalid character", ErrInvalidArgument)

	// ErrInvalidFormat means every character is known but the composition
	// matches none of the tier patterns.
	ErrInvalidFormat = errors.New("password does not match any recognized tier pattern")
)
