package crypto

import "strconv"

// Tier is a cumulative password complexity level.
type Tier int

const (
	TierLower  Tier = 1 // lowercase letters only
	TierDigit  Tier = 2 // TierLower plus at least one digit
	TierUpper  Tier = 3 // TierDigit plus at least one uppercase letter
	TierSymbol Tier = 4 // TierUpper plus at least one punctuation character
)

// OverrideLength is the length at which lowercase-only and lowercase+digit
// passwords are classified one tier higher.
const OverrideLength = 8

// Valid reports whether t is one of the four known tiers.
func (t Tier) Valid() bool {
	return t >= TierLower && t <= TierSymbol
}

// MinLength returns the exclusive lower bound on password length for t.
// Each tier reserves one slot per required class.
func (t Tier) MinLength() int {
	return int(t) - 1
}

func (t Tier) String() string {
	switch t {
	case TierLower:
		return "lower"
	case TierDigit:
		return "lower+digit"
	case TierUpper:
		return "lower+digit+upper"
	case TierSymbol:
		return "lower+digit+upper+symbol"
	default:
		return "tier(" + strconv.Itoa(int(t)) + ")"
	}
}

// charsets returns the character sets required by t, in tier order.
func (t Tier) charsets() []string {
	return requiredSets[:t]
}

var requiredSets = []string{lowercaseChars, numberChars, uppercaseChars, symbolChars}
