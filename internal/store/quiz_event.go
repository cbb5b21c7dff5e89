package store

import (
	"context"
	"fmt"

	"github.com/procureiq/procureiq/ent"
	"github.com/procureiq/procureiq/ent/answerevent"
	"github.com/procureiq/procureiq/ent/quizevent"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetQuizSlug(data.QuizSlug).
		SetAction(data.Action).
		SetQuestionsDelivered(data.QuestionsDelivered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetQuizSlug(data.QuizSlug).
		SetQuestionID(data.QuestionID).
		SetQuestionType(data.QuestionType).
		SetChosen(data.Chosen).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs)

	if len(data.SkillKeys) > 0 {
		builder = builder.SetSkillKeys(data.SkillKeys)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	q := r.client.QuizEvent.Query().
		Where(quizevent.Action("finish")).
		Order(ent.Desc(quizevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	records := make([]RunRecord, 0, len(events))
	for _, e := range events {
		records = append(records, RunRecord{
			RunID:              e.RunID,
			QuizSlug:           e.QuizSlug,
			Timestamp:          e.Timestamp,
			QuestionsDelivered: e.QuestionsDelivered,
			CorrectAnswers:     e.CorrectAnswers,
			DurationSecs:       e.DurationSecs,
		})
	}
	return records, nil
}

func (r *eventRepo) Totals(ctx context.Context) (AnswerTotals, error) {
	total, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return AnswerTotals{}, fmt.Errorf("count answers: %w", err)
	}
	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return AnswerTotals{}, fmt.Errorf("count correct answers: %w", err)
	}
	return AnswerTotals{Total: total, Correct: correct}, nil
}
