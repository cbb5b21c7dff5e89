package content

import (
	"fmt"
	"strings"
)

// MinQuestions is the smallest pool a quiz may ship with.
const MinQuestions = 8

// Validate performs the structural checks the JSON Schema cannot express.
// It returns a combined error describing all problems found, or nil.
//
// Answer indices out of range are a hard error here: a quiz that refers to
// a nonexistent option must never reach a learner.
func (q *Quiz) Validate() error {
	var errs []string

	if len(q.Questions) < MinQuestions {
		errs = append(errs, fmt.Sprintf("quiz must have at least %d questions, has %d", MinQuestions, len(q.Questions)))
	}

	catalog := make(map[string]bool, len(q.SkillsCatalog))
	for _, s := range q.SkillsCatalog {
		if catalog[s.Key] {
			errs = append(errs, fmt.Sprintf("duplicate skill key %q in skills_catalog", s.Key))
		}
		catalog[s.Key] = true
	}

	for key := range q.ImprovementRubric {
		if !catalog[key] {
			errs = append(errs, fmt.Sprintf("improvement_rubric references unknown skill %q", key))
		}
	}

	seenIDs := make(map[string]bool, len(q.Questions))
	for i, question := range q.Questions {
		prefix := fmt.Sprintf("question %d (%s)", i, question.ID)

		if seenIDs[question.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID %q", question.ID))
		}
		seenIDs[question.ID] = true

		switch question.Type {
		case TypeSingle:
			if question.AnswerIndex < 0 || question.AnswerIndex >= len(question.Options) {
				errs = append(errs, fmt.Sprintf("%s: answer_index %d out of range [0,%d)", prefix, question.AnswerIndex, len(question.Options)))
			}
		case TypeMulti:
			if len(question.AnswerIndices) == 0 {
				errs = append(errs, fmt.Sprintf("%s: multi question has no answer_indices", prefix))
			}
			if question.SelectCount != len(question.AnswerIndices) {
				errs = append(errs, fmt.Sprintf("%s: select_count %d does not match %d answer_indices", prefix, question.SelectCount, len(question.AnswerIndices)))
			}
			seen := make(map[int]bool, len(question.AnswerIndices))
			for _, idx := range question.AnswerIndices {
				if idx < 0 || idx >= len(question.Options) {
					errs = append(errs, fmt.Sprintf("%s: answer index %d out of range [0,%d)", prefix, idx, len(question.Options)))
				}
				if seen[idx] {
					errs = append(errs, fmt.Sprintf("%s: duplicate answer index %d", prefix, idx))
				}
				seen[idx] = true
			}
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown question type %q", prefix, question.Type))
		}

		for _, sw := range question.Skills {
			if !catalog[sw.Key] {
				errs = append(errs, fmt.Sprintf("%s: references unknown skill %q", prefix, sw.Key))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid quiz %q:\n  %s", q.Slug, strings.Join(errs, "\n  "))
	}
	return nil
}
