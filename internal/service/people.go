package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pwseed/pwseed-go/internal/crypto"
	"github.com/pwseed/pwseed-go/internal/model"
)

const (
	DefaultSeedCount = 10
	MaxSeedCount     = model.MaxSeedCount

	// Seeded passwords get a length in [seedMinLength, seedMaxLength] and a
	// tier in [TierLower, TierSymbol], both uniform.
	seedMinLength = 6
	seedMaxLength = 12
)

var (
	ErrInvalidCount  = errors.New("count must be greater than 0")
	ErrCountTooLarge = fmt.Errorf("count must be at most %d", MaxSeedCount)
)

// IdentityFetcher returns one random identity per call.
type IdentityFetcher interface {
	FetchUser(ctx context.Context) (model.Identity, error)
}

// PersonStore persists people and their passwords.
type PersonStore interface {
	EnsureSchema(ctx context.Context) error
	EnsurePasswordColumns(ctx context.Context) error
	Create(ctx context.Context, person *model.Person) error
	UpdatePassword(ctx context.Context, id int64, password, hash string, complexity int) error
	List(ctx context.Context, limit uint64) ([]model.Person, error)
}

// PasswordHasher encodes a password for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// PeopleService seeds synthetic people and attaches generated passwords.
type PeopleService struct {
	fetcher IdentityFetcher
	store   PersonStore
	gen     *crypto.Generator
	hasher  PasswordHasher
	src     crypto.Source
}

// NewPeopleService creates a new PeopleService. A nil src uses the
// process-wide source for both password content and length/tier selection.
func NewPeopleService(fetcher IdentityFetcher, store PersonStore, hasher PasswordHasher, src crypto.Source) *PeopleService {
	if src == nil {
		src = crypto.DefaultSource()
	}
	return &PeopleService{
		fetcher: fetcher,
		store:   store,
		gen:     crypto.NewGenerator(src),
		hasher:  hasher,
		src:     src,
	}
}

// Seed fetches count identities, stores them and attaches a generated password
// to every inserted row. Collaborator errors abort the run and are returned
// wrapped; rows inserted before the failure stay in the store.
func (s *PeopleService) Seed(ctx context.Context, count int) (model.SeedResponse, error) {
	if count <= 0 {
		return model.SeedResponse{}, ErrInvalidCount
	}
	if count > MaxSeedCount {
		return model.SeedResponse{}, ErrCountTooLarge
	}

	if err := s.store.EnsureSchema(ctx); err != nil {
		return model.SeedResponse{}, err
	}

	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		identity, err := s.fetcher.FetchUser(ctx)
		if err != nil {
			return model.SeedResponse{}, fmt.Errorf("fetching user %d of %d: %w", i+1, count, err)
		}

		person := &model.Person{FullName: identity.FullName, Email: identity.Email}
		if err := s.store.Create(ctx, person); err != nil {
			return model.SeedResponse{}, fmt.Errorf("storing user %d of %d: %w", i+1, count, err)
		}
		ids = append(ids, person.ID)
	}

	if err := s.store.EnsurePasswordColumns(ctx); err != nil {
		return model.SeedResponse{}, err
	}

	resp := model.SeedResponse{People: make([]model.SeededPerson, 0, len(ids))}
	for _, id := range ids {
		seeded, err := s.attachPassword(ctx, id)
		if err != nil {
			return model.SeedResponse{}, err
		}
		resp.People = append(resp.People, seeded)
	}
	resp.Seeded = len(resp.People)

	slog.Info("seeded people", "count", resp.Seeded)
	return resp, nil
}

func (s *PeopleService) attachPassword(ctx context.Context, id int64) (model.SeededPerson, error) {
	length := seedMinLength + s.src.IntN(seedMaxLength-seedMinLength+1)
	tier := crypto.TierLower + crypto.Tier(s.src.IntN(int(crypto.TierSymbol)))

	password, err := s.gen.Generate(length, tier)
	if err != nil {
		return model.SeededPerson{}, err
	}

	complexity, err := crypto.Classify(password)
	if err != nil {
		return model.SeededPerson{}, fmt.Errorf("classifying generated password: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.SeededPerson{}, fmt.Errorf("hashing password for person %d: %w", id, err)
	}

	if err := s.store.UpdatePassword(ctx, id, password, hash, int(complexity)); err != nil {
		return model.SeededPerson{}, fmt.Errorf("updating password for person %d: %w", id, err)
	}

	slog.Debug("password attached", "id", id, "length", length, "tier", int(tier), "complexity", int(complexity))

	return model.SeededPerson{
		ID:         id,
		Length:     length,
		Tier:       int(tier),
		Complexity: int(complexity),
	}, nil
}

// List returns up to limit stored people. A zero limit returns everyone.
func (s *PeopleService) List(ctx context.Context, limit uint64) ([]model.PersonResponse, error) {
	people, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]model.PersonResponse, 0, len(people))
	for _, p := range people {
		resp = append(resp, model.PersonResponse{
			ID:         p.ID,
			FullName:   p.FullName,
			Email:      p.Email,
			Password:   p.Password,
			Complexity: p.Complexity,
		})
	}
	return resp, nil
}
