// Package session tracks the state of one quiz run: which question the
// learner is on, what they've answered, how long each question took, and
// the event trail persisted through the store.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/procureiq/procureiq/internal/competency"
	"github.com/procureiq/procureiq/internal/content"
	"github.com/procureiq/procureiq/internal/engine"
	"github.com/procureiq/procureiq/internal/store"
)

var (
	// ErrAlreadyFinished is returned by mutating operations after Finish.
	ErrAlreadyFinished = errors.New("run already finished")

	// ErrUnanswered is returned by Finish when questions remain unanswered.
	ErrUnanswered = errors.New("run has unanswered questions")
)

// Run is one attempt at a quiz. Answers can be changed freely until
// Finish; only the final state of each answer is scored and persisted.
type Run struct {
	id     string
	engine *engine.Engine
	repo   store.EventRepo

	index         int
	answers       map[string]engine.Selection
	elapsed       map[string]time.Duration
	startedAt     time.Time
	questionShown time.Time
	finished      bool

	now func() time.Time
}

// NewRun starts a run of the given quiz and records the start event.
// A nil repo disables persistence (used by previews and tests).
func NewRun(ctx context.Context, quiz *content.Quiz, repo store.EventRepo) (*Run, error) {
	r := &Run{
		id:      uuid.NewString(),
		engine:  engine.New(quiz),
		repo:    repo,
		answers: make(map[string]engine.Selection),
		elapsed: make(map[string]time.Duration),
		now:     time.Now,
	}
	r.startedAt = r.now()
	r.questionShown = r.startedAt

	if repo != nil {
		err := repo.AppendQuizEvent(ctx, store.QuizEventData{
			RunID:              r.id,
			QuizSlug:           quiz.Slug,
			Action:             "start",
			QuestionsDelivered: len(r.engine.Questions()),
		})
		if err != nil {
			return nil, fmt.Errorf("record run start: %w", err)
		}
	}
	return r, nil
}

// ID returns the run's UUID.
func (r *Run) ID() string { return r.id }

// Quiz returns the quiz definition this run delivers.
func (r *Run) Quiz() *content.Quiz { return r.engine.Quiz() }

// Questions returns the delivered questions in presentation order.
func (r *Run) Questions() []content.Question { return r.engine.Questions() }

// Index returns the zero-based position of the current question.
func (r *Run) Index() int { return r.index }

// Current returns the question the learner is on.
func (r *Run) Current() *content.Question {
	qs := r.engine.Questions()
	if r.index < 0 || r.index >= len(qs) {
		return nil
	}
	return &qs[r.index]
}

// Answer records the learner's selection for the current question.
// Single questions take exactly one index; multi questions exactly
// SelectCount. Re-answering replaces the previous selection but keeps
// accumulating time spent on the question.
func (r *Run) Answer(sel engine.Selection) error {
	if r.finished {
		return ErrAlreadyFinished
	}
	q := r.Current()
	if q == nil {
		return errors.New("no current question")
	}

	switch q.Type {
	case content.TypeSingle:
		if len(sel) != 1 {
			return fmt.Errorf("question %s: select exactly one option", q.ID)
		}
	case content.TypeMulti:
		if len(sel) != q.SelectCount {
			return fmt.Errorf("question %s: select exactly %d options", q.ID, q.SelectCount)
		}
	}
	for _, idx := range sel {
		if idx < 0 || idx >= len(q.Options) {
			return fmt.Errorf("question %s: option index %d out of range", q.ID, idx)
		}
	}

	r.elapsed[q.ID] += r.now().Sub(r.questionShown)
	r.questionShown = r.now()
	r.answers[q.ID] = sel
	return nil
}

// Answered returns the recorded selection for a question, if any.
func (r *Run) Answered(questionID string) (engine.Selection, bool) {
	sel, ok := r.answers[questionID]
	return sel, ok
}

// AnsweredCount returns how many questions have a recorded answer.
func (r *Run) AnsweredCount() int { return len(r.answers) }

// Complete reports whether every delivered question has an answer.
func (r *Run) Complete() bool {
	return len(r.answers) == len(r.engine.Questions())
}

// Next advances to the following question. Returns false at the end.
func (r *Run) Next() bool {
	if r.finished || r.index >= len(r.engine.Questions())-1 {
		return false
	}
	r.index++
	r.questionShown = r.now()
	return true
}

// Prev moves back one question. Returns false at the start.
func (r *Run) Prev() bool {
	if r.finished || r.index <= 0 {
		return false
	}
	r.index--
	r.questionShown = r.now()
	return true
}

// Finish scores the run, persists the answer and finish events and
// returns the assembled result. Every question must be answered first.
func (r *Run) Finish(ctx context.Context) (*Result, error) {
	if r.finished {
		return nil, ErrAlreadyFinished
	}
	if !r.Complete() {
		return nil, fmt.Errorf("%w: %d of %d answered",
			ErrUnanswered, len(r.answers), len(r.engine.Questions()))
	}
	r.finished = true

	quiz := r.engine.Quiz()
	scores := r.engine.Scores(r.answers)
	correct := r.engine.CorrectCount(r.answers)
	duration := r.now().Sub(r.startedAt)

	result := &Result{
		RunID:    r.id,
		Quiz:     quiz,
		Total:    len(r.engine.Questions()),
		Correct:  correct,
		Scores:   scores,
		Points:   competency.Points(scores, quiz.SkillsCatalog),
		Missed:   r.engine.MissedQuestions(r.answers),
		Duration: duration,
	}

	if r.repo == nil {
		return result, nil
	}

	for _, q := range r.engine.Questions() {
		sel := r.answers[q.ID]
		keys := make([]string, 0, len(q.Skills))
		for _, sw := range q.Skills {
			keys = append(keys, sw.Key)
		}
		err := r.repo.AppendAnswerEvent(ctx, store.AnswerEventData{
			RunID:        r.id,
			QuizSlug:     quiz.Slug,
			QuestionID:   q.ID,
			QuestionType: string(q.Type),
			Chosen:       sel,
			Correct:      engine.IsCorrect(q, sel),
			SkillKeys:    keys,
			TimeMs:       int(r.elapsed[q.ID].Milliseconds()),
		})
		if err != nil {
			return nil, fmt.Errorf("record answer %s: %w", q.ID, err)
		}
	}

	err := r.repo.AppendQuizEvent(ctx, store.QuizEventData{
		RunID:              r.id,
		QuizSlug:           quiz.Slug,
		Action:             "finish",
		QuestionsDelivered: result.Total,
		CorrectAnswers:     result.Correct,
		DurationSecs:       int(duration.Seconds()),
	})
	if err != nil {
		return nil, fmt.Errorf("record run finish: %w", err)
	}
	return result, nil
}

// RecordHelp persists a help-request event for the current question.
func (r *Run) RecordHelp(ctx context.Context, request string, success bool) {
	if r.repo == nil {
		return
	}
	q := r.Current()
	if q == nil {
		return
	}
	// Help events are advisory; a failed append must not break the run.
	_ = r.repo.AppendHelpEvent(ctx, store.HelpEventData{
		RunID:      r.id,
		QuestionID: q.ID,
		Request:    request,
		Success:    success,
	})
}
