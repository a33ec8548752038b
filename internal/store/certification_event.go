package store

import (
	"context"
	"fmt"

	"github.com/fairpersona/skillcert/ent"
	"github.com/fairpersona/skillcert/ent/certificationevent"
)

func (r *eventRepo) AppendCertificationEvent(ctx context.Context, data CertificationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CertificationEvent.Create().
		SetSequence(seqNum).
		SetCertID(data.CertID).
		SetAttemptID(data.AttemptID).
		SetUserID(data.UserID).
		SetSkillID(data.SkillID).
		SetSkillName(data.SkillName).
		SetScore(data.Score).
		SetAction(data.Action).
		SetMetadataCid(data.MetadataCID).
		SetTokenID(data.TokenID).
		SetTxHash(data.TxHash).
		SetVerified(data.Verified).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save certification event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCertificationEvents(ctx context.Context, opts QueryOpts) ([]CertificationRecord, error) {
	query := r.client.CertificationEvent.Query().
		Order(ent.Desc(certificationevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(certificationevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(certificationevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(certificationevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(certificationevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query certification events: %w", err)
	}

	records := make([]CertificationRecord, len(events))
	for i, e := range events {
		records[i] = certificationRecord(e)
	}
	return records, nil
}

func (r *eventRepo) LatestCertifications(ctx context.Context) ([]CertificationRecord, error) {
	events, err := r.client.CertificationEvent.Query().
		Order(ent.Desc(certificationevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query certifications: %w", err)
	}

	// Events are newest first, so the first hit per cert_id is its
	// current state.
	seen := make(map[string]bool)
	var records []CertificationRecord
	for _, e := range events {
		if seen[e.CertID] {
			continue
		}
		seen[e.CertID] = true
		records = append(records, certificationRecord(e))
	}
	return records, nil
}

func certificationRecord(e *ent.CertificationEvent) CertificationRecord {
	return CertificationRecord{
		CertID:      e.CertID,
		AttemptID:   e.AttemptID,
		UserID:      e.UserID,
		SkillID:     e.SkillID,
		SkillName:   e.SkillName,
		Score:       e.Score,
		Action:      e.Action,
		MetadataCID: e.MetadataCid,
		TokenID:     e.TokenID,
		TxHash:      e.TxHash,
		Verified:    e.Verified,
		Sequence:    e.Sequence,
		Timestamp:   e.Timestamp,
	}
}
