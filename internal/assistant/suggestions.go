package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/procureiq/procureiq/internal/competency"
	"github.com/procureiq/procureiq/internal/content"
	"github.com/procureiq/procureiq/internal/llm"
)

// weakPerformanceThreshold marks competencies that the rubric fallback
// flags for improvement (percent of the strongest competency).
const weakPerformanceThreshold = 70.0

// skillPerformance is one competency's performance as sent to the LLM.
type skillPerformance struct {
	Label            string   `json:"label"`
	Score            float64  `json:"score"`
	PerformanceLevel float64  `json:"performance_level"`
	RubricItems      []string `json:"rubric_items"`
}

const suggestionsSystemPrompt = `You are a procurement training expert providing personalized feedback on a learner's quiz performance.`

const suggestionsPromptFormat = `Analyze this learner's quiz performance and provide personalized improvement suggestions.

Performance data (performance_level is 0-100, normalized against the learner's strongest competency):
%s

For each competency, base your suggestions on:
1. The learner's performance level in that area
2. The rubric items provided
3. Procurement best practices

Focus on the 2-3 areas where improvement would have the most impact. Make suggestions practical and specific. Return a JSON object with skill keys as keys and improvement text as values; omit competencies that need no attention.`

// Suggestions generates per-competency improvement text for a finished run.
// When the LLM is unavailable or returns garbage, it falls back to the
// quiz's improvement rubric so the results screen always has something to
// show.
func (a *Assistant) Suggestions(ctx context.Context, quiz *content.Quiz, scores map[string]float64) (map[string]string, error) {
	points := competency.Points(scores, quiz.SkillsCatalog)

	suggestions, err := a.llmSuggestions(ctx, quiz, points)
	if err != nil {
		return rubricFallback(quiz, points), err
	}
	if len(suggestions) == 0 {
		return rubricFallback(quiz, points), nil
	}
	return suggestions, nil
}

func (a *Assistant) llmSuggestions(ctx context.Context, quiz *content.Quiz, points []competency.Point) (map[string]string, error) {
	ctx = llm.WithPurpose(ctx, "improvement")

	performance := make(map[string]skillPerformance, len(points))
	keys := make([]string, 0, len(points))
	for _, p := range points {
		performance[p.Key] = skillPerformance{
			Label:            p.Label,
			Score:            p.Score,
			PerformanceLevel: p.Percent,
			RubricItems:      quiz.ImprovementRubric[p.Key],
		}
		keys = append(keys, p.Key)
	}

	data, err := json.MarshalIndent(performance, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal performance data: %w", err)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: suggestionsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf(suggestionsPromptFormat, data)},
		},
		Schema:      suggestionsSchema(keys),
		MaxTokens:   a.cfg.SuggestionsMaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("improvement suggestions failed: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	// Drop keys the quiz doesn't know about.
	suggestions := make(map[string]string)
	for key, text := range raw {
		if _, ok := performance[key]; ok && strings.TrimSpace(text) != "" {
			suggestions[key] = strings.TrimSpace(text)
		}
	}
	return suggestions, nil
}

// RubricSuggestions builds suggestions from the quiz rubric alone, used
// when no LLM provider is configured.
func RubricSuggestions(quiz *content.Quiz, scores map[string]float64) map[string]string {
	return rubricFallback(quiz, competency.Points(scores, quiz.SkillsCatalog))
}

// rubricFallback builds suggestions straight from the quiz's improvement
// rubric, covering competencies below the weak-performance threshold.
func rubricFallback(quiz *content.Quiz, points []competency.Point) map[string]string {
	suggestions := make(map[string]string)
	for _, p := range points {
		if p.Percent >= weakPerformanceThreshold {
			continue
		}
		items := quiz.ImprovementRubric[p.Key]
		if len(items) == 0 {
			continue
		}
		if len(items) > 2 {
			items = items[:2]
		}
		suggestions[p.Key] = "Focus on: " + strings.Join(items, ", ")
	}

	if len(suggestions) == 0 {
		suggestions["general"] = "Continue practicing procurement case studies to improve overall performance."
	}
	return suggestions
}
