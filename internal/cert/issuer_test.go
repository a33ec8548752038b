package cert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fairpersona/skillcert/internal/attempt"
	"github.com/fairpersona/skillcert/internal/store"
	"github.com/fairpersona/skillcert/internal/wallet"
)

// mockEventRepo implements store.EventRepo for cert tests.
type mockEventRepo struct {
	certEvents []store.CertificationEventData
	latest     []store.CertificationRecord
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, _ store.AttemptEventData) error {
	return nil
}
func (m *mockEventRepo) LatestAttemptEvent(_ context.Context, _, _ string) (*store.AttemptEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AttemptStartEvent(_ context.Context, _ string) (*store.AttemptEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryAttemptEvents(_ context.Context, _ store.QueryOpts) ([]store.AttemptEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AnswersForAttempt(_ context.Context, _ string) ([]store.AnswerEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendGradeEvent(_ context.Context, _ store.GradeEventData) error {
	return nil
}
func (m *mockEventRepo) GradeForAttempt(_ context.Context, _ string) (*store.GradeEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryGradeEvents(_ context.Context, _ store.QueryOpts) ([]store.GradeEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GradeStatsBySkill(_ context.Context) ([]store.SkillGradeStats, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendCertificationEvent(_ context.Context, data store.CertificationEventData) error {
	m.certEvents = append(m.certEvents, data)
	return nil
}
func (m *mockEventRepo) QueryCertificationEvents(_ context.Context, _ store.QueryOpts) ([]store.CertificationRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestCertifications(_ context.Context) ([]store.CertificationRecord, error) {
	return m.latest, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

type mockPinner struct {
	cid string
	err error
}

func (p *mockPinner) PinJSON(_ context.Context, _ string, _ any) (string, error) {
	return p.cid, p.err
}

type mockMinter struct {
	receipt wallet.MintReceipt
	err     error
}

func (m *mockMinter) MintBadge(_ context.Context, _, _ string) (wallet.MintReceipt, error) {
	return m.receipt, m.err
}

func passedAttempt() *attempt.Attempt {
	return &attempt.Attempt{
		ID:      "a1",
		SkillID: "react-dev",
		UserID:  "u1",
		Status:  attempt.StatusCompleted,
		Score:   85,
		Passed:  true,
	}
}

func TestIssueFullyAnchored(t *testing.T) {
	repo := &mockEventRepo{}
	issuer := NewIssuer(repo,
		&mockPinner{cid: "QmCid"},
		&mockMinter{receipt: wallet.MintReceipt{TokenID: "7", TxHash: "0xabc"}},
		nil)

	c, err := issuer.Issue(context.Background(), passedAttempt(), "0x1234")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !c.Verified {
		t.Error("expected verified certification")
	}
	if c.MetadataCID != "QmCid" || c.TokenID != "7" {
		t.Errorf("cert = %+v", c)
	}

	if len(repo.certEvents) != 2 {
		t.Fatalf("events = %d, want issued + confirmed", len(repo.certEvents))
	}
	if repo.certEvents[0].Action != "issued" || repo.certEvents[0].Verified {
		t.Errorf("first event = %+v", repo.certEvents[0])
	}
	if repo.certEvents[1].Action != "confirmed" || !repo.certEvents[1].Verified {
		t.Errorf("second event = %+v", repo.certEvents[1])
	}
}

func TestIssueSurvivesPinFailure(t *testing.T) {
	repo := &mockEventRepo{}
	issuer := NewIssuer(repo,
		&mockPinner{err: errors.New("gateway timeout")},
		&mockMinter{receipt: wallet.MintReceipt{TokenID: "7", TxHash: "0xabc"}},
		nil)

	c, err := issuer.Issue(context.Background(), passedAttempt(), "0x1234")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if c.Verified {
		t.Error("certification must stay unverified without a pin")
	}
	// No CID means no mint either: the badge references the metadata.
	if c.TokenID != "" {
		t.Errorf("token = %q, want empty", c.TokenID)
	}
	if len(repo.certEvents) != 1 || repo.certEvents[0].Action != "issued" {
		t.Errorf("events = %+v, want single issued event", repo.certEvents)
	}
}

func TestIssueSurvivesMintFailure(t *testing.T) {
	repo := &mockEventRepo{}
	issuer := NewIssuer(repo,
		&mockPinner{cid: "QmCid"},
		&mockMinter{err: errors.New("relay down")},
		nil)

	c, err := issuer.Issue(context.Background(), passedAttempt(), "0x1234")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if c.Verified {
		t.Error("certification must stay unverified without a mint")
	}
	if c.MetadataCID != "QmCid" {
		t.Errorf("cid = %q", c.MetadataCID)
	}
	// Partial anchoring is still recorded.
	if len(repo.certEvents) != 2 {
		t.Fatalf("events = %d, want issued + partial confirmation", len(repo.certEvents))
	}
	if repo.certEvents[1].Verified {
		t.Error("partial confirmation must not be verified")
	}
}

func TestIssueWithoutWallet(t *testing.T) {
	repo := &mockEventRepo{}
	issuer := NewIssuer(repo, &mockPinner{cid: "QmCid"}, &mockMinter{}, nil)

	c, err := issuer.Issue(context.Background(), passedAttempt(), "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if c.Verified || c.TokenID != "" {
		t.Errorf("cert = %+v, want pinned but unminted", c)
	}
}

func TestIssueRejectsFailedAttempt(t *testing.T) {
	issuer := NewIssuer(&mockEventRepo{}, nil, nil, nil)

	a := passedAttempt()
	a.Status = attempt.StatusFailed
	a.Passed = false

	if _, err := issuer.Issue(context.Background(), a, "0x1234"); !errors.Is(err, ErrNotPassed) {
		t.Errorf("err = %v, want ErrNotPassed", err)
	}
}

func TestBackingSpecialty(t *testing.T) {
	repo := &mockEventRepo{latest: []store.CertificationRecord{
		{CertID: "c1", SkillID: "react-dev", SkillName: "React Developer", Timestamp: time.Now(), Verified: true},
		{CertID: "c2", SkillID: "solidity-dev", SkillName: "Solidity Developer", Timestamp: time.Now(), Verified: true},
	}}
	issuer := NewIssuer(repo, nil, nil, nil)

	matched, err := issuer.BackingSpecialty(context.Background(), "React")
	if err != nil {
		t.Fatalf("backing: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != "c1" {
		t.Errorf("matched = %+v, want only c1", matched)
	}

	none, err := issuer.BackingSpecialty(context.Background(), "yoga")
	if err != nil {
		t.Fatalf("backing: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("matched = %+v, want none", none)
	}
}

func TestBackingSpecialtyIgnoresUnverified(t *testing.T) {
	// A certification issued with no pinner or minter never confirms.
	// It must not back a specialty claim even though the skill matches.
	repo := &mockEventRepo{latest: []store.CertificationRecord{
		{CertID: "c1", SkillID: "react-dev", SkillName: "React Developer", Timestamp: time.Now()},
	}}
	issuer := NewIssuer(repo, nil, nil, nil)

	matched, err := issuer.BackingSpecialty(context.Background(), "react")
	if err != nil {
		t.Fatalf("backing: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("matched = %+v, want none for unverified cert", matched)
	}
}

func TestMatchesSpecialty(t *testing.T) {
	c := Certification{SkillID: "react-dev", Verified: true}

	tests := []struct {
		claim string
		want  bool
	}{
		{"react", true},
		{"React", true},
		{"react-dev", true},
		{"dev", true},
		{"solidity", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := c.MatchesSpecialty(tt.claim); got != tt.want {
			t.Errorf("MatchesSpecialty(%q) = %v, want %v", tt.claim, got, tt.want)
		}
	}

	c.Verified = false
	if c.MatchesSpecialty("react") {
		t.Error("unverified certification must not match any claim")
	}
}
