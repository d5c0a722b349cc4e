package service

import (
	"github.com/pwseed/pwseed-go/internal/crypto"
	"github.com/pwseed/pwseed-go/internal/model"
)

const (
	DefaultLength = 12
	DefaultTier   = crypto.TierSymbol
)

// GeneratorService handles password generation and classification.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService. A nil gen uses the
// process-wide source.
func NewGeneratorService(gen *crypto.Generator) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{gen: gen}
}

// Generate produces a password for the request, applying defaults for zero fields.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = DefaultLength
	}
	tier := crypto.Tier(req.Tier)
	if tier == 0 {
		tier = DefaultTier
	}

	password, err := s.gen.Generate(length, tier)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Tier:     int(tier),
	}, nil
}

// Classify reports the tier of the requested password.
func (s *GeneratorService) Classify(req model.ClassifyRequest) (model.ClassifyResponse, error) {
	tier, err := crypto.Classify(req.Password)
	if err != nil {
		return model.ClassifyResponse{}, err
	}

	return model.ClassifyResponse{
		Tier:   int(tier),
		Label:  tier.String(),
		Length: len(req.Password),
	}, nil
}
