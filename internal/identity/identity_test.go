package identity

import (
	"context"
	"testing"

	"github.com/fairpersona/skillcert/internal/store"
)

// memProfileRepo implements store.ProfileRepo in memory.
type memProfileRepo struct {
	profile *store.Profile
	saves   int
}

func (m *memProfileRepo) Get(_ context.Context) (*store.Profile, error) {
	return m.profile, nil
}

func (m *memProfileRepo) Save(_ context.Context, p *store.Profile) error {
	cp := *p
	m.profile = &cp
	m.saves++
	return nil
}

func TestCurrentCreatesProfileOnFirstUse(t *testing.T) {
	repo := &memProfileRepo{}
	p := NewLocalProvider(repo)

	id, err := p.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if id.UserID == "" {
		t.Fatal("expected generated user ID")
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1", repo.saves)
	}

	// Second call returns the same identity without re-creating.
	again, err := p.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if again.UserID != id.UserID {
		t.Errorf("user ID changed: %s -> %s", id.UserID, again.UserID)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want still 1", repo.saves)
	}
}

func TestUpdatePersistsFields(t *testing.T) {
	repo := &memProfileRepo{}
	p := NewLocalProvider(repo)

	id, err := p.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}

	id.Specialty = "React Developer"
	id.WalletAddress = "0x1234"
	if err := p.Update(context.Background(), id); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := p.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if got.Specialty != "React Developer" || got.WalletAddress != "0x1234" {
		t.Errorf("identity = %+v", got)
	}
}

func TestUpdateRequiresUserID(t *testing.T) {
	p := NewLocalProvider(&memProfileRepo{})
	if err := p.Update(context.Background(), Identity{Specialty: "x"}); err == nil {
		t.Fatal("expected error for missing user ID")
	}
}
