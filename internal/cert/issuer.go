package cert

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fairpersona/skillcert/internal/attempt"
	"github.com/fairpersona/skillcert/internal/pin"
	"github.com/fairpersona/skillcert/internal/skills"
	"github.com/fairpersona/skillcert/internal/store"
	"github.com/fairpersona/skillcert/internal/wallet"
)

// Issuer turns passing attempts into certifications. Issuance itself is
// local and always succeeds for a passed attempt; anchoring the
// certification externally (metadata pin, badge mint) is best effort
// and recorded as a follow-up confirmation when it lands.
type Issuer struct {
	events store.EventRepo
	pinner pin.Pinner
	minter wallet.Minter
	log    *zap.Logger
}

// NewIssuer creates an Issuer. pinner and minter may be nil: the
// corresponding anchoring step is skipped and certifications stay
// unverified until re-anchored.
func NewIssuer(events store.EventRepo, pinner pin.Pinner, minter wallet.Minter, log *zap.Logger) *Issuer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Issuer{events: events, pinner: pinner, minter: minter, log: log}
}

// Issue certifies a passed attempt. The issued event is appended before
// any external call, so a pin or mint failure can never lose the
// certification; it is reported as issued but unconfirmed.
func (i *Issuer) Issue(ctx context.Context, a *attempt.Attempt, walletAddress string) (*Certification, error) {
	if a.Status != attempt.StatusCompleted || !a.Passed {
		return nil, fmt.Errorf("%w: attempt is %s", ErrNotPassed, a.Status)
	}

	skill, err := skills.GetSkill(a.SkillID)
	if err != nil {
		return nil, err
	}

	c := &Certification{
		ID:        uuid.New().String(),
		UserID:    a.UserID,
		SkillID:   skill.ID,
		SkillName: skill.Name,
		Score:     a.Score,
		IssuedAt:  time.Now().UTC(),
	}

	if err := i.events.AppendCertificationEvent(ctx, store.CertificationEventData{
		CertID:    c.ID,
		AttemptID: a.ID,
		UserID:    c.UserID,
		SkillID:   c.SkillID,
		SkillName: c.SkillName,
		Score:     c.Score,
		Action:    "issued",
	}); err != nil {
		return nil, fmt.Errorf("record certification: %w", err)
	}

	i.anchor(ctx, c, a.ID, walletAddress)
	return c, nil
}

// anchor pins the certificate metadata and mints the badge. Failures
// are logged and leave the certification unverified.
func (i *Issuer) anchor(ctx context.Context, c *Certification, attemptID, walletAddress string) {
	if i.pinner != nil {
		meta := pin.BuildCertificateMetadata(c.SkillName, c.Score, c.UserID, c.IssuedAt)
		cid, err := i.pinner.PinJSON(ctx, c.SkillID+"-cert-"+c.ID, meta)
		if err != nil {
			i.log.Warn("metadata pin failed, certification unconfirmed",
				zap.String("cert_id", c.ID), zap.Error(err))
		} else {
			c.MetadataCID = cid
		}
	}

	if i.minter != nil && walletAddress != "" && c.MetadataCID != "" {
		receipt, err := i.minter.MintBadge(ctx, walletAddress, c.MetadataCID)
		if err != nil {
			i.log.Warn("badge mint failed, certification unconfirmed",
				zap.String("cert_id", c.ID), zap.Error(err))
		} else {
			c.TokenID = receipt.TokenID
			c.TxHash = receipt.TxHash
		}
	}

	c.Verified = c.MetadataCID != "" && c.TxHash != ""
	if c.MetadataCID == "" && c.TxHash == "" {
		return
	}

	if err := i.events.AppendCertificationEvent(ctx, store.CertificationEventData{
		CertID:      c.ID,
		AttemptID:   attemptID,
		UserID:      c.UserID,
		SkillID:     c.SkillID,
		SkillName:   c.SkillName,
		Score:       c.Score,
		Action:      "confirmed",
		MetadataCID: c.MetadataCID,
		TokenID:     c.TokenID,
		TxHash:      c.TxHash,
		Verified:    c.Verified,
	}); err != nil {
		i.log.Warn("confirmation event not recorded",
			zap.String("cert_id", c.ID), zap.Error(err))
	}
}

// List returns the current state of every certification, newest first.
func (i *Issuer) List(ctx context.Context) ([]Certification, error) {
	records, err := i.events.LatestCertifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}

	certs := make([]Certification, len(records))
	for n, r := range records {
		certs[n] = Certification{
			ID:          r.CertID,
			UserID:      r.UserID,
			SkillID:     r.SkillID,
			SkillName:   r.SkillName,
			Score:       r.Score,
			IssuedAt:    r.Timestamp,
			MetadataCID: r.MetadataCID,
			TokenID:     r.TokenID,
			TxHash:      r.TxHash,
			Verified:    r.Verified,
		}
	}
	return certs, nil
}

// BackingSpecialty returns the certifications that back a claimed
// specialty, newest first.
func (i *Issuer) BackingSpecialty(ctx context.Context, claim string) ([]Certification, error) {
	certs, err := i.List(ctx)
	if err != nil {
		return nil, err
	}
	var matched []Certification
	for _, c := range certs {
		if c.MatchesSpecialty(claim) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
