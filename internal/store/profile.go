package store

import (
	"context"
	"fmt"

	"github.com/fairpersona/skillcert/ent"
	"github.com/fairpersona/skillcert/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context) (*Profile, error) {
	p, err := r.client.Profile.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &Profile{
		UserID:        p.UserID,
		DisplayName:   p.DisplayName,
		Specialty:     p.Specialty,
		WalletAddress: p.WalletAddress,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	existing, err := r.client.Profile.Query().
		Where(profile.UserID(p.UserID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile: %w", err)
	}

	if existing == nil {
		_, err = r.client.Profile.Create().
			SetUserID(p.UserID).
			SetDisplayName(p.DisplayName).
			SetSpecialty(p.Specialty).
			SetWalletAddress(p.WalletAddress).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetDisplayName(p.DisplayName).
		SetSpecialty(p.Specialty).
		SetWalletAddress(p.WalletAddress).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
