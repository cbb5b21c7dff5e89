package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendHelpEvent(ctx context.Context, data HelpEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HelpEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetQuestionID(data.QuestionID).
		SetRequest(data.Request).
		SetSuccess(data.Success).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save help event: %w", err)
	}
	return nil
}
