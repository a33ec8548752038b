package store

import (
	"context"
	"fmt"

	"github.com/fairpersona/skillcert/ent"
	"github.com/fairpersona/skillcert/ent/gradeevent"
)

func (r *eventRepo) AppendGradeEvent(ctx context.Context, data GradeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.GradeEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetUserID(data.UserID).
		SetSkillID(data.SkillID).
		SetScore(data.Score).
		SetEarnedPoints(data.EarnedPoints).
		SetTotalPoints(data.TotalPoints).
		SetPassThreshold(data.PassThreshold).
		SetPassed(data.Passed)

	if len(data.Feedback) > 0 {
		builder = builder.SetFeedback(data.Feedback)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save grade event: %w", err)
	}
	return nil
}

func (r *eventRepo) GradeForAttempt(ctx context.Context, attemptID string) (*GradeEventRecord, error) {
	e, err := r.client.GradeEvent.Query().
		Where(gradeevent.AttemptID(attemptID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query grade for attempt: %w", err)
	}
	rec := gradeEventRecord(e)
	return &rec, nil
}

func (r *eventRepo) QueryGradeEvents(ctx context.Context, opts QueryOpts) ([]GradeEventRecord, error) {
	query := r.client.GradeEvent.Query().
		Order(ent.Desc(gradeevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(gradeevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(gradeevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(gradeevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(gradeevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query grade events: %w", err)
	}

	records := make([]GradeEventRecord, len(events))
	for i, e := range events {
		records[i] = gradeEventRecord(e)
	}
	return records, nil
}

func (r *eventRepo) GradeStatsBySkill(ctx context.Context) ([]SkillGradeStats, error) {
	events, err := r.client.GradeEvent.Query().
		Order(ent.Asc(gradeevent.FieldSkillID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query grade stats: %w", err)
	}

	bySkill := make(map[string]*SkillGradeStats)
	var order []string
	totals := make(map[string]int)

	for _, e := range events {
		st, ok := bySkillGet(bySkill, e.SkillID)
		if !ok {
			order = append(order, e.SkillID)
		}
		st.Attempts++
		if e.Passed {
			st.Passes++
		}
		if e.Score > st.BestScore {
			st.BestScore = e.Score
		}
		totals[e.SkillID] += e.Score
	}

	stats := make([]SkillGradeStats, 0, len(order))
	for _, id := range order {
		st := bySkill[id]
		st.AvgScore = float64(totals[id]) / float64(st.Attempts)
		stats = append(stats, *st)
	}
	return stats, nil
}

func bySkillGet(m map[string]*SkillGradeStats, skillID string) (*SkillGradeStats, bool) {
	if st, ok := m[skillID]; ok {
		return st, true
	}
	st := &SkillGradeStats{SkillID: skillID}
	m[skillID] = st
	return st, false
}

func gradeEventRecord(e *ent.GradeEvent) GradeEventRecord {
	return GradeEventRecord{
		AttemptID:     e.AttemptID,
		UserID:        e.UserID,
		SkillID:       e.SkillID,
		Score:         e.Score,
		EarnedPoints:  e.EarnedPoints,
		TotalPoints:   e.TotalPoints,
		PassThreshold: e.PassThreshold,
		Passed:        e.Passed,
		Feedback:      e.Feedback,
		Sequence:      e.Sequence,
		Timestamp:     e.Timestamp,
	}
}
