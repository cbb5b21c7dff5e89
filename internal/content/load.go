package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// QuizFileName is the file each quiz directory must contain.
const QuizFileName = "quiz.json"

// Parse decodes and fully validates raw quiz JSON.
func Parse(raw []byte) (*Quiz, error) {
	if err := validateShape(raw); err != nil {
		return nil, err
	}

	var quiz Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}

	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// LoadFile loads a single quiz from a quiz.json path.
func LoadFile(path string) (*Quiz, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	quiz, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return quiz, nil
}

// LoadDir scans a content directory for <slug>/quiz.json files and loads
// every valid quiz, sorted by title. Invalid quizzes are reported in the
// returned problems map keyed by path; they do not fail the whole scan.
func LoadDir(dir string) ([]*Quiz, map[string]error, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read content dir %s: %w", dir, err)
	}

	var quizzes []*Quiz
	problems := make(map[string]error)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name(), QuizFileName)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		quiz, err := LoadFile(path)
		if err != nil {
			problems[path] = err
			continue
		}
		quizzes = append(quizzes, quiz)
	}

	sort.Slice(quizzes, func(i, j int) bool {
		return quizzes[i].Title < quizzes[j].Title
	})

	return quizzes, problems, nil
}

// Available returns the quizzes to present: those in dir if it exists,
// with the built-in sample quiz appended when its slug isn't taken.
// A missing directory is not an error — the built-in quiz still loads.
func Available(dir string) ([]*Quiz, map[string]error, error) {
	var quizzes []*Quiz
	problems := make(map[string]error)

	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			loaded, probs, err := LoadDir(dir)
			if err != nil {
				return nil, nil, err
			}
			quizzes = loaded
			problems = probs
		}
	}

	builtin, err := Builtin()
	if err != nil {
		return nil, nil, fmt.Errorf("load built-in quiz: %w", err)
	}
	for _, q := range quizzes {
		if q.Slug == builtin.Slug {
			return quizzes, problems, nil
		}
	}
	quizzes = append(quizzes, builtin)

	return quizzes, problems, nil
}
