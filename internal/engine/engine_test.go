package engine

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/procureiq/procureiq/internal/content"
)

func testRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func poolQuiz(n int) *content.Quiz {
	q := &content.Quiz{
		Slug:  "pool",
		Title: "Pool",
		SkillsCatalog: []content.Skill{
			{Key: "alpha", Label: "Alpha"},
			{Key: "beta", Label: "Beta"},
		},
		Scoring: content.Scoring{DeliverCount: 10},
	}
	for i := 0; i < n; i++ {
		q.Questions = append(q.Questions, content.Question{
			ID:          fmt.Sprintf("q%d", i+1),
			Type:        content.TypeSingle,
			Stem:        fmt.Sprintf("Stem %d", i+1),
			Options:     []string{"opt-a", "opt-b", "opt-c", "opt-d"},
			AnswerIndex: i % 4,
			Skills:      []content.SkillWeight{{Key: "alpha", Weight: 1}},
		})
	}
	return q
}

func TestSelectTakesFirstNInOrder(t *testing.T) {
	quiz := poolQuiz(15)
	e := NewWithRand(quiz, testRng(1))

	qs := e.Questions()
	if len(qs) != 10 {
		t.Fatalf("delivered %d questions, want 10", len(qs))
	}
	for i, q := range qs {
		want := fmt.Sprintf("q%d", i+1)
		if q.ID != want {
			t.Errorf("position %d: got %s, want %s", i, q.ID, want)
		}
	}
}

func TestSelectSmallPoolDeliversAll(t *testing.T) {
	quiz := poolQuiz(8)
	e := NewWithRand(quiz, testRng(1))
	if got := len(e.Questions()); got != 8 {
		t.Errorf("delivered %d, want 8", got)
	}
}

func TestShufflePreservesCorrectAnswerSingle(t *testing.T) {
	// Across many seeds the remapped answer index must always point at
	// the option text that was correct before shuffling.
	for seed := uint64(1); seed <= 50; seed++ {
		quiz := poolQuiz(10)
		wantTexts := make(map[string]string)
		for _, q := range quiz.Questions {
			wantTexts[q.ID] = q.Options[q.AnswerIndex]
		}

		e := NewWithRand(quiz, testRng(seed))
		for _, q := range e.Questions() {
			got := q.Options[q.AnswerIndex]
			if got != wantTexts[q.ID] {
				t.Fatalf("seed %d, %s: correct option is %q, want %q", seed, q.ID, got, wantTexts[q.ID])
			}
		}
	}
}

func TestShufflePreservesCorrectAnswerMulti(t *testing.T) {
	quiz := poolQuiz(10)
	quiz.Questions[0] = content.Question{
		ID:            "m1",
		Type:          content.TypeMulti,
		Stem:          "Pick two",
		Options:       []string{"w", "x", "y", "z"},
		AnswerIndices: []int{1, 3},
		SelectCount:   2,
		Skills:        []content.SkillWeight{{Key: "beta", Weight: 1}},
	}

	for seed := uint64(1); seed <= 50; seed++ {
		e := NewWithRand(quiz, testRng(seed))
		q := e.Questions()[0]

		var got []string
		for _, idx := range q.AnswerIndices {
			got = append(got, q.Options[idx])
		}
		slices.Sort(got)
		if !slices.Equal(got, []string{"x", "z"}) {
			t.Fatalf("seed %d: correct set = %v, want [x z]", seed, got)
		}
		if len(q.Options) != 4 {
			t.Fatalf("seed %d: option count changed to %d", seed, len(q.Options))
		}
	}
}

func TestShuffleDoesNotMutatePool(t *testing.T) {
	quiz := poolQuiz(10)
	original := quiz.Questions[0].Options[0]

	NewWithRand(quiz, testRng(7))
	NewWithRand(quiz, testRng(8))

	if quiz.Questions[0].Options[0] != original {
		t.Error("engine mutated the quiz's question pool")
	}
}

func TestIsCorrect(t *testing.T) {
	single := content.Question{Type: content.TypeSingle, Options: []string{"a", "b", "c"}, AnswerIndex: 2}
	multi := content.Question{
		Type:          content.TypeMulti,
		Options:       []string{"a", "b", "c", "d"},
		AnswerIndices: []int{0, 2},
		SelectCount:   2,
	}

	tests := []struct {
		name string
		q    content.Question
		sel  Selection
		want bool
	}{
		{"single correct", single, Selection{2}, true},
		{"single wrong", single, Selection{0}, false},
		{"single empty", single, nil, false},
		{"single multiple picks", single, Selection{2, 0}, false},
		{"multi correct", multi, Selection{0, 2}, true},
		{"multi correct reversed", multi, Selection{2, 0}, true},
		{"multi wrong set", multi, Selection{0, 1}, false},
		{"multi too few", multi, Selection{0}, false},
		{"multi too many", multi, Selection{0, 2, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCorrect(tt.q, tt.sel); got != tt.want {
				t.Errorf("IsCorrect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoresSumWeightsForCorrectAnswers(t *testing.T) {
	quiz := poolQuiz(10)
	quiz.Questions[0].Skills = []content.SkillWeight{
		{Key: "alpha", Weight: 1.0},
		{Key: "beta", Weight: 0.5},
	}
	quiz.Questions[1].Skills = []content.SkillWeight{{Key: "beta", Weight: 2.0}}

	e := NewWithRand(quiz, testRng(3))
	qs := e.Questions()

	answers := map[string]Selection{
		qs[0].ID: {qs[0].AnswerIndex},                    // correct
		qs[1].ID: {(qs[1].AnswerIndex + 1) % 4},          // wrong
		qs[2].ID: {qs[2].AnswerIndex},                    // correct
	}

	scores := e.Scores(answers)
	if got := scores["alpha"]; got != 2.0 {
		t.Errorf("alpha = %v, want 2.0", got)
	}
	if got := scores["beta"]; got != 0.5 {
		t.Errorf("beta = %v, want 0.5 (wrong answer must not score)", got)
	}
}

func TestScoresInitializesAllCatalogSkills(t *testing.T) {
	quiz := poolQuiz(10)
	e := NewWithRand(quiz, testRng(3))

	scores := e.Scores(nil)
	if len(scores) != 2 {
		t.Fatalf("got %d skills, want 2", len(scores))
	}
	for key, v := range scores {
		if v != 0 {
			t.Errorf("%s = %v, want 0 with no answers", key, v)
		}
	}
}

func TestScoresDefaultWeightIsOne(t *testing.T) {
	quiz := poolQuiz(10)
	quiz.Questions[0].Skills = []content.SkillWeight{{Key: "alpha"}} // no weight

	e := NewWithRand(quiz, testRng(3))
	q := e.Questions()[0]
	scores := e.Scores(map[string]Selection{q.ID: {q.AnswerIndex}})
	if scores["alpha"] != 1 {
		t.Errorf("alpha = %v, want 1 (default weight)", scores["alpha"])
	}
}

func TestMissedQuestions(t *testing.T) {
	quiz := poolQuiz(10)
	e := NewWithRand(quiz, testRng(5))
	qs := e.Questions()

	wrong := (qs[0].AnswerIndex + 1) % 4
	answers := map[string]Selection{
		qs[0].ID: {wrong},            // wrong -> reviewed
		qs[1].ID: {qs[1].AnswerIndex}, // correct -> not reviewed
		// qs[2] unanswered -> not reviewed
	}

	missed := e.MissedQuestions(answers)
	if len(missed) != 1 {
		t.Fatalf("got %d missed, want 1", len(missed))
	}
	m := missed[0]
	if m.Question.ID != qs[0].ID {
		t.Errorf("missed question = %s, want %s", m.Question.ID, qs[0].ID)
	}
	if len(m.YourAnswers) != 1 || m.YourAnswers[0] != qs[0].Options[wrong] {
		t.Errorf("your answers = %v", m.YourAnswers)
	}
	if len(m.Correct) != 1 || m.Correct[0] != qs[0].Options[qs[0].AnswerIndex] {
		t.Errorf("correct answers = %v", m.Correct)
	}
}

func TestCorrectCount(t *testing.T) {
	quiz := poolQuiz(10)
	e := NewWithRand(quiz, testRng(9))
	qs := e.Questions()

	answers := map[string]Selection{
		qs[0].ID: {qs[0].AnswerIndex},
		qs[1].ID: {qs[1].AnswerIndex},
		qs[2].ID: {(qs[2].AnswerIndex + 1) % 4},
	}
	if got := e.CorrectCount(answers); got != 2 {
		t.Errorf("CorrectCount = %d, want 2", got)
	}
}
