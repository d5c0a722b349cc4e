package crypto

import (
	"fmt"
	"math/rand/v2"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// MaxLength caps generated passwords.
	MaxLength = 128
)

// Source supplies uniform random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the goroutine-safe top-level math/rand/v2 functions.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the process-wide, goroutine-safe source.
func DefaultSource() Source {
	return globalSource{}
}

// Generator produces tiered passwords from a randomness source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator. A nil src uses the process-wide source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a password with the process-wide source.
func Generate(length int, tier Tier) (string, error) {
	return defaultGenerator.Generate(length, tier)
}

// Generate creates a password of exactly length characters that satisfies tier.
//
// One character of each required class is reserved and the rest are drawn
// with replacement from the union of those classes, then the whole password
// is shuffled so the reserved characters land anywhere.
func (g *Generator) Generate(length int, tier Tier) (string, error) {
	if !tier.Valid() {
		return "", fmt.Errorf("%w: got %d", ErrInvalidTier, int(tier))
	}
	if length <= tier.MinLength() {
		return "", fmt.Errorf("%w: length %d, should be greater than %d for tier %d",
			ErrLengthTooShort, length, tier.MinLength(), int(tier))
	}
	if length > MaxLength {
		return "", fmt.Errorf("%w: got %d", ErrLengthTooLong, length)
	}

	sets := tier.charsets()
	var pool string
	for _, charset := range sets {
		pool += charset
	}

	result := make([]byte, 0, length)

	// Filler first, then one guaranteed character per required class.
	for i := 0; i < length-len(sets); i++ {
		result = append(result, g.randChar(pool))
	}
	for _, charset := range sets {
		result = append(result, g.randChar(charset))
	}

	g.shuffle(result)

	return string(result), nil
}

// randChar picks a random character from charset.
func (g *Generator) randChar(charset string) byte {
	return charset[g.src.IntN(len(charset))]
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
