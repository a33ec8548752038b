package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fairpersona/skillcert/internal/store"
)

// Identity is the test taker as the rest of the system sees them.
type Identity struct {
	UserID        string
	DisplayName   string
	Specialty     string
	WalletAddress string
}

// Provider resolves the local identity, creating it on first use.
type Provider interface {
	Current(ctx context.Context) (Identity, error)
	Update(ctx context.Context, id Identity) error
}

// LocalProvider is a Provider backed by the profile table. The user ID
// is generated once and kept for the life of the database.
type LocalProvider struct {
	profiles store.ProfileRepo
}

// NewLocalProvider creates a provider over the given profile repo.
func NewLocalProvider(profiles store.ProfileRepo) *LocalProvider {
	return &LocalProvider{profiles: profiles}
}

// Current returns the stored identity, creating a fresh one with a
// generated user ID if none exists yet.
func (p *LocalProvider) Current(ctx context.Context) (Identity, error) {
	prof, err := p.profiles.Get(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("load profile: %w", err)
	}
	if prof == nil {
		prof = &store.Profile{UserID: uuid.New().String()}
		if err := p.profiles.Save(ctx, prof); err != nil {
			return Identity{}, fmt.Errorf("create profile: %w", err)
		}
	}
	return Identity{
		UserID:        prof.UserID,
		DisplayName:   prof.DisplayName,
		Specialty:     prof.Specialty,
		WalletAddress: prof.WalletAddress,
	}, nil
}

// Update persists changed identity fields. The user ID never changes.
func (p *LocalProvider) Update(ctx context.Context, id Identity) error {
	if id.UserID == "" {
		return fmt.Errorf("identity has no user ID")
	}
	err := p.profiles.Save(ctx, &store.Profile{
		UserID:        id.UserID,
		DisplayName:   id.DisplayName,
		Specialty:     id.Specialty,
		WalletAddress: id.WalletAddress,
	})
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
