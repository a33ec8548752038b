package store

import (
	"context"
	"fmt"

	"github.com/fairpersona/skillcert/ent"
	"github.com/fairpersona/skillcert/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetQuestionID(data.QuestionID).
		SetQuestionType(data.QuestionType).
		SetPrompt(data.Prompt).
		SetSelectedOption(data.SelectedOption).
		SetAnswerText(data.AnswerText).
		SetTimeSpentSecs(data.TimeSpentSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswersForAttempt(ctx context.Context, attemptID string) ([]AnswerEventRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.AttemptID(attemptID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers for attempt: %w", err)
	}

	records := make([]AnswerEventRecord, len(events))
	for i, e := range events {
		records[i] = AnswerEventRecord{
			AttemptID:      e.AttemptID,
			QuestionID:     e.QuestionID,
			QuestionType:   e.QuestionType,
			Prompt:         e.Prompt,
			SelectedOption: e.SelectedOption,
			AnswerText:     e.AnswerText,
			TimeSpentSecs:  e.TimeSpentSecs,
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp,
		}
	}
	return records, nil
}
