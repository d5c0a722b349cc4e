package crypto

import (
	"fmt"
	"strings"
)

// composition records which character classes appear in a password.
type composition struct {
	lower, upper, digit, punct bool
}

// isPunct reports whether r is in the punctuation class. Space counts as
// punctuation for classification even though the generator never emits it.
func isPunct(r rune) bool {
	return r == ' ' || strings.ContainsRune(symbolChars, r)
}

func compose(password string) (composition, error) {
	var c composition
	for i, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		case isPunct(r):
			c.punct = true
		default:
			return composition{}, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, r, i)
		}
	}
	return c, nil
}

// Classify returns the complexity tier a password satisfies.
//
// Lowercase-only and lowercase+digit passwords of OverrideLength characters
// or more are reported one tier higher. Lowercase+digit+uppercase has no
// override.
func Classify(password string) (Tier, error) {
	if password == "" {
		return 0, ErrEmptyPassword
	}

	c, err := compose(password)
	if err != nil {
		return 0, err
	}

	// Every accepted character is ASCII, so the byte length is the rune count.
	long := len(password) >= OverrideLength

	switch {
	case c.lower && !c.upper && !c.digit && !c.punct:
		if long {
			return TierDigit, nil
		}
		return TierLower, nil
	case c.lower && c.digit && !c.upper && !c.punct:
		if long {
			return TierUpper, nil
		}
		return TierDigit, nil
	case c.lower && c.digit && c.upper && !c.punct:
		return TierUpper, nil
	case c.lower && c.digit && c.upper && c.punct:
		return TierSymbol, nil
	default:
		return 0, ErrInvalidFormat
	}
}
