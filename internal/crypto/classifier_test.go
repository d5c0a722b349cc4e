package crypto

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     Tier
		wantErr  error
	}{
		{name: "lowercase short", password: "abcde", want: TierLower},
		{name: "lowercase seven", password: "abcdefg", want: TierLower},
		{name: "lowercase at threshold", password: "abcdefgh", want: TierDigit},
		{name: "lower digit short", password: "abc12", want: TierDigit},
		{name: "lower digit at threshold", password: "abcd1234", want: TierUpper},
		{name: "lower digit upper short", password: "aB1", want: TierUpper},
		{name: "lower digit upper long has no override", password: "abcDEF123456", want: TierUpper},
		{name: "all classes", password: "aB1!", want: TierSymbol},
		{name: "all classes long", password: "aB1!aB1!aB1!", want: TierSymbol},
		{name: "underscore is punctuation", password: "aB1_", want: TierSymbol},
		{name: "space is punctuation", password: "aB1 ", want: TierSymbol},

		{name: "empty", password: "", wantErr: ErrEmptyPassword},
		{name: "non-ascii letter", password: "héllo", wantErr: ErrInvalidCharacter},
		{name: "tab", password: "abc\tdef", wantErr: ErrInvalidCharacter},
		{name: "upper digit without lower", password: "ABC123", wantErr: ErrInvalidFormat},
		{name: "lower and space", password: "abc def", wantErr: ErrInvalidFormat},
		{name: "lower and punctuation", password: "abc!", wantErr: ErrInvalidFormat},
		{name: "lower and upper", password: "abcDEF", wantErr: ErrInvalidFormat},
		{name: "lower upper punct no digit", password: "aB!", wantErr: ErrInvalidFormat},
		{name: "digits only", password: "123456789", wantErr: ErrInvalidFormat},
		{name: "punctuation only", password: "!!!", wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Classify(%q) error = %v, want %v", tt.password, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Classify(%q) unexpected error: %v", tt.password, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %d, want %d", tt.password, got, tt.want)
			}
		})
	}
}

func TestClassifyErrorTaxonomy(t *testing.T) {
	_, err := Classify("")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty password error = %v, want ErrInvalidArgument", err)
	}

	_, err = Classify("héllo")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("invalid character error = %v, want it to wrap ErrInvalidArgument", err)
	}

	_, err = Classify("ABC123")
	if errors.Is(err, ErrInvalidArgument) {
		t.Errorf("format error = %v, should not be an ErrInvalidArgument", err)
	}
}

func TestClassifyRoundTrip(t *testing.T) {
	gen := seeded(99)

	for tier := TierLower; tier <= TierSymbol; tier++ {
		for length := int(tier); length < 16; length++ {
			password, err := gen.Generate(length, tier)
			if err != nil {
				t.Fatalf("Generate(%d, %d) unexpected error: %v", length, tier, err)
			}

			got, err := Classify(password)
			if err != nil {
				t.Fatalf("Classify(%q) unexpected error: %v", password, err)
			}

			want := tier
			if length >= OverrideLength && tier <= TierDigit {
				want = tier + 1
			}
			if got != want {
				t.Errorf("Classify(Generate(%d, %d)) = %d, want %d (password %q)", length, tier, got, want, password)
			}
		}
	}
}

func TestClassifyOverrideExamples(t *testing.T) {
	tests := []struct {
		length int
		tier   Tier
		want   Tier
	}{
		{5, TierLower, TierLower},
		{5, TierDigit, TierDigit},
		{5, TierUpper, TierUpper},
		{5, TierSymbol, TierSymbol},
		{9, TierLower, TierDigit},
		{9, TierDigit, TierUpper},
	}

	for _, tt := range tests {
		password, err := Generate(tt.length, tt.tier)
		if err != nil {
			t.Fatalf("Generate(%d, %d) unexpected error: %v", tt.length, tt.tier, err)
		}
		got, err := Classify(password)
		if err != nil {
			t.Fatalf("Classify(%q) unexpected error: %v", password, err)
		}
		if got != tt.want {
			t.Errorf("Classify(Generate(%d, %d)) = %d, want %d", tt.length, tt.tier, got, tt.want)
		}
	}
}
