// Package engine implements quiz delivery and scoring: question
// selection, option shuffling, answer checking and the weighted
// competency score calculation.
package engine

import (
	"math/rand/v2"
	"slices"

	"github.com/procureiq/procureiq/internal/content"
)

// Selection is the learner's chosen option indices for one question.
// Single-select questions carry exactly one index.
type Selection []int

// Engine delivers one run of a quiz: a fixed-order slice of the question
// pool with per-question option order shuffled. The shuffle happens once
// at construction so a question always renders the same way within a run.
type Engine struct {
	quiz     *content.Quiz
	selected []content.Question
}

// New creates an engine for the given quiz using a time-seeded shuffle.
func New(quiz *content.Quiz) *Engine {
	return NewWithRand(quiz, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand creates an engine with a caller-supplied random source.
func NewWithRand(quiz *content.Quiz, rng *rand.Rand) *Engine {
	e := &Engine{quiz: quiz}
	e.selected = selectQuestions(quiz)
	for i := range e.selected {
		shuffleOptions(&e.selected[i], rng)
	}
	return e
}

// Quiz returns the underlying quiz definition.
func (e *Engine) Quiz() *content.Quiz {
	return e.quiz
}

// Questions returns the delivered questions in presentation order.
// Options are already shuffled; answer indices refer to the shuffled order.
func (e *Engine) Questions() []content.Question {
	return e.selected
}

// selectQuestions takes the first deliver_count questions from the pool.
// Question order is part of the case-study narrative, so it is preserved;
// only the per-question option order is randomized.
func selectQuestions(quiz *content.Quiz) []content.Question {
	n := quiz.DeliverCount()
	if n > len(quiz.Questions) {
		n = len(quiz.Questions)
	}
	selected := make([]content.Question, n)
	copy(selected, quiz.Questions[:n])
	for i := range selected {
		selected[i].Options = slices.Clone(selected[i].Options)
		selected[i].AnswerIndices = slices.Clone(selected[i].AnswerIndices)
	}
	return selected
}

// shuffleOptions permutes a question's options and remaps its answer
// indices so that the correct-answer set refers to the same option texts.
func shuffleOptions(q *content.Question, rng *rand.Rand) {
	perm := rng.Perm(len(q.Options))

	// perm[new] = old: options[new] takes the text of the old position.
	shuffled := make([]string, len(q.Options))
	oldToNew := make([]int, len(q.Options))
	for newIdx, oldIdx := range perm {
		shuffled[newIdx] = q.Options[oldIdx]
		oldToNew[oldIdx] = newIdx
	}
	q.Options = shuffled

	switch q.Type {
	case content.TypeSingle:
		q.AnswerIndex = oldToNew[q.AnswerIndex]
	case content.TypeMulti:
		remapped := make([]int, len(q.AnswerIndices))
		for i, oldIdx := range q.AnswerIndices {
			remapped[i] = oldToNew[oldIdx]
		}
		slices.Sort(remapped)
		q.AnswerIndices = remapped
	}
}

// IsCorrect reports whether a selection answers the question correctly.
// Multi questions require exactly SelectCount choices matching the
// correct set; order does not matter.
func IsCorrect(q content.Question, sel Selection) bool {
	switch q.Type {
	case content.TypeSingle:
		return len(sel) == 1 && sel[0] == q.AnswerIndex
	case content.TypeMulti:
		if len(sel) != q.SelectCount {
			return false
		}
		chosen := slices.Clone([]int(sel))
		slices.Sort(chosen)
		return slices.Equal(chosen, q.AnswerIndices)
	}
	return false
}

// Scores computes the per-competency score for a set of answers.
// Every catalog skill starts at zero; each correctly answered question
// adds its skill weights. Unanswered questions contribute nothing.
func (e *Engine) Scores(answers map[string]Selection) map[string]float64 {
	scores := make(map[string]float64, len(e.quiz.SkillsCatalog))
	for _, s := range e.quiz.SkillsCatalog {
		scores[s.Key] = 0
	}

	for _, q := range e.selected {
		sel, ok := answers[q.ID]
		if !ok {
			continue
		}
		if !IsCorrect(q, sel) {
			continue
		}
		for _, sw := range q.Skills {
			w := sw.Weight
			if w == 0 {
				w = 1
			}
			if _, known := scores[sw.Key]; known {
				scores[sw.Key] += w
			}
		}
	}
	return scores
}

// CorrectCount returns how many delivered questions were answered correctly.
func (e *Engine) CorrectCount(answers map[string]Selection) int {
	correct := 0
	for _, q := range e.selected {
		if sel, ok := answers[q.ID]; ok && IsCorrect(q, sel) {
			correct++
		}
	}
	return correct
}

// Missed describes one incorrectly answered question for the review section.
type Missed struct {
	Question    content.Question
	YourAnswers []string
	Correct     []string
}

// MissedQuestions returns review entries for every answered-but-wrong
// question, in presentation order. Unanswered questions are skipped,
// matching the scoring rule that only submitted answers are judged.
func (e *Engine) MissedQuestions(answers map[string]Selection) []Missed {
	var missed []Missed
	for _, q := range e.selected {
		sel, ok := answers[q.ID]
		if !ok || IsCorrect(q, sel) {
			continue
		}

		m := Missed{Question: q}
		for _, idx := range sel {
			if idx >= 0 && idx < len(q.Options) {
				m.YourAnswers = append(m.YourAnswers, q.Options[idx])
			}
		}
		switch q.Type {
		case content.TypeSingle:
			m.Correct = []string{q.Options[q.AnswerIndex]}
		case content.TypeMulti:
			for _, idx := range q.AnswerIndices {
				m.Correct = append(m.Correct, q.Options[idx])
			}
		}
		missed = append(missed, m)
	}
	return missed
}
