package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testQuiz builds a minimal valid quiz with n single-select questions.
func testQuiz(n int) *Quiz {
	q := &Quiz{
		Slug:          "test-quiz",
		Title:         "Test Quiz",
		SkillsCatalog: []Skill{{Key: "s1", Label: "Skill One"}, {Key: "s2", Label: "Skill Two"}},
		Scoring:       Scoring{DeliverCount: n},
	}
	for i := 0; i < n; i++ {
		q.Questions = append(q.Questions, Question{
			ID:          fmt.Sprintf("q%d", i+1),
			Type:        TypeSingle,
			Stem:        fmt.Sprintf("Question %d?", i+1),
			Options:     []string{"a", "b", "c"},
			AnswerIndex: i % 3,
			Skills:      []SkillWeight{{Key: "s1", Weight: 1}},
		})
	}
	return q
}

func TestBuiltinLoads(t *testing.T) {
	quiz, err := Builtin()
	if err != nil {
		t.Fatalf("builtin quiz failed to load: %v", err)
	}
	if quiz.Slug == "" || quiz.Title == "" {
		t.Error("builtin quiz missing slug or title")
	}
	if len(quiz.Questions) < MinQuestions {
		t.Errorf("builtin quiz has %d questions, want >= %d", len(quiz.Questions), MinQuestions)
	}
	if quiz.DeliverCount() > len(quiz.Questions) {
		t.Errorf("deliver_count %d exceeds pool size %d", quiz.DeliverCount(), len(quiz.Questions))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Quiz)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(q *Quiz) {},
		},
		{
			name:    "too few questions",
			mutate:  func(q *Quiz) { q.Questions = q.Questions[:3] },
			wantErr: "at least 8 questions",
		},
		{
			name:    "single answer index out of range",
			mutate:  func(q *Quiz) { q.Questions[0].AnswerIndex = 7 },
			wantErr: "out of range",
		},
		{
			name:    "negative answer index",
			mutate:  func(q *Quiz) { q.Questions[0].AnswerIndex = -1 },
			wantErr: "out of range",
		},
		{
			name:    "unknown skill reference",
			mutate:  func(q *Quiz) { q.Questions[0].Skills[0].Key = "nope" },
			wantErr: `unknown skill "nope"`,
		},
		{
			name:    "duplicate question id",
			mutate:  func(q *Quiz) { q.Questions[1].ID = q.Questions[0].ID },
			wantErr: "duplicate question ID",
		},
		{
			name:    "duplicate skill key",
			mutate:  func(q *Quiz) { q.SkillsCatalog[1].Key = q.SkillsCatalog[0].Key },
			wantErr: "duplicate skill key",
		},
		{
			name: "multi select_count mismatch",
			mutate: func(q *Quiz) {
				q.Questions[0].Type = TypeMulti
				q.Questions[0].AnswerIndices = []int{0, 1}
				q.Questions[0].SelectCount = 3
			},
			wantErr: "does not match",
		},
		{
			name: "multi answer index out of range",
			mutate: func(q *Quiz) {
				q.Questions[0].Type = TypeMulti
				q.Questions[0].AnswerIndices = []int{0, 9}
				q.Questions[0].SelectCount = 2
			},
			wantErr: "out of range",
		},
		{
			name: "rubric references unknown skill",
			mutate: func(q *Quiz) {
				q.ImprovementRubric = map[string][]string{"ghost": {"do better"}}
			},
			wantErr: "unknown skill",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := testQuiz(10)
			tt.mutate(q)
			err := q.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseRejectsBadShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{"},
		{"missing slug", `{"title":"t","skills_catalog":[{"key":"k","label":"l"}],"scoring":{},"questions":[]}`},
		{"bad question type", `{"slug":"s","title":"t","skills_catalog":[{"key":"k","label":"l"}],"scoring":{},"questions":[{"id":"q1","type":"essay","stem":"?","options":["a","b"]}]}`},
		{"one option", `{"slug":"s","title":"t","skills_catalog":[{"key":"k","label":"l"}],"scoring":{},"questions":[{"id":"q1","type":"single","stem":"?","options":["a"]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Error("Parse accepted invalid input")
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	good := testQuiz(10)
	writeQuiz(t, dir, "good", good)

	// A broken quiz should be reported but not sink the scan.
	bad := testQuiz(10)
	bad.Questions[0].AnswerIndex = 42
	writeQuiz(t, dir, "bad", bad)

	// Directories without quiz.json are skipped.
	if err := os.MkdirAll(filepath.Join(dir, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	quizzes, problems, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("got %d quizzes, want 1", len(quizzes))
	}
	if quizzes[0].Slug != "test-quiz" {
		t.Errorf("slug = %q", quizzes[0].Slug)
	}
	if len(problems) != 1 {
		t.Errorf("got %d problems, want 1", len(problems))
	}
}

func TestAvailableFallsBackToBuiltin(t *testing.T) {
	quizzes, _, err := Available(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Available: %v", err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("got %d quizzes, want just the builtin", len(quizzes))
	}
}

func writeQuiz(t *testing.T, dir, slug string, q *Quiz) {
	t.Helper()
	raw, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	quizDir := filepath.Join(dir, slug)
	if err := os.MkdirAll(quizDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(quizDir, QuizFileName), raw, 0o644); err != nil {
		t.Fatal(err)
	}
}
