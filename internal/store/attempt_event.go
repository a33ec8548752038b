package store

import (
	"context"
	"fmt"

	"github.com/fairpersona/skillcert/ent"
	"github.com/fairpersona/skillcert/ent/attemptevent"
	entschema "github.com/fairpersona/skillcert/ent/schema"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetUserID(data.UserID).
		SetSkillID(data.SkillID).
		SetAction(data.Action).
		SetQuestionCount(data.QuestionCount).
		SetTimeLimitSecs(data.TimeLimitSecs).
		SetTimeSpentSecs(data.TimeSpentSecs)

	if len(data.Questions) > 0 {
		var snaps []entschema.QuestionSnapshot
		for _, q := range data.Questions {
			snaps = append(snaps, entschema.QuestionSnapshot{
				ID:            q.ID,
				Type:          q.Type,
				Prompt:        q.Prompt,
				Options:       q.Options,
				CorrectOption: q.CorrectOption,
				Points:        q.Points,
				Difficulty:    q.Difficulty,
			})
		}
		builder = builder.SetQuestions(snaps)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestAttemptEvent(ctx context.Context, userID, skillID string) (*AttemptEventRecord, error) {
	e, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.UserID(userID),
			attemptevent.SkillID(skillID),
		).
		Order(ent.Desc(attemptevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest attempt event: %w", err)
	}
	rec := attemptEventRecord(e)
	return &rec, nil
}

func (r *eventRepo) QueryAttemptEvents(ctx context.Context, opts QueryOpts) ([]AttemptEventRecord, error) {
	query := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(attemptevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	records := make([]AttemptEventRecord, len(events))
	for i, e := range events {
		records[i] = attemptEventRecord(e)
	}
	return records, nil
}

func (r *eventRepo) AttemptStartEvent(ctx context.Context, attemptID string) (*AttemptEventRecord, error) {
	e, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.AttemptID(attemptID),
			attemptevent.Action("started"),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query attempt start event: %w", err)
	}
	rec := attemptEventRecord(e)
	return &rec, nil
}

func attemptEventRecord(e *ent.AttemptEvent) AttemptEventRecord {
	rec := AttemptEventRecord{
		AttemptID:     e.AttemptID,
		UserID:        e.UserID,
		SkillID:       e.SkillID,
		Action:        e.Action,
		QuestionCount: e.QuestionCount,
		TimeLimitSecs: e.TimeLimitSecs,
		TimeSpentSecs: e.TimeSpentSecs,
		Sequence:      e.Sequence,
		Timestamp:     e.Timestamp,
	}
	for _, q := range e.Questions {
		rec.Questions = append(rec.Questions, QuestionSnapshot{
			ID:            q.ID,
			Type:          q.Type,
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
			Points:        q.Points,
			Difficulty:    q.Difficulty,
		})
	}
	return rec
}
