package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/procureiq/procureiq/internal/content"
	"github.com/procureiq/procureiq/internal/llm"
)

// Config holds generation settings for assistant calls.
type Config struct {
	HelpMaxTokens        int
	SuggestionsMaxTokens int
	Temperature          float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		HelpMaxTokens:        300,
		SuggestionsMaxTokens: 800,
		Temperature:          0.7,
	}
}

// Assistant answers learner help requests and generates improvement
// suggestions via the configured LLM provider.
type Assistant struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Assistant backed by the given provider.
func New(provider llm.Provider, cfg Config) *Assistant {
	return &Assistant{provider: provider, cfg: cfg}
}

const helpSystemPrompt = `You are a helpful procurement training assistant. A learner is working through a procurement case-study quiz and has asked for help with a question.

Provide guidance without directly revealing the answer. You can:
- Give hints about the approach or reasoning
- Clarify terminology or concepts
- Explain the scenario context
- Point out important factors to consider

Keep your response concise and educational. Never state which option or options are correct.`

// Options are numbered from 1 to match how the UI lists them.
var helpUserTemplate = template.Must(template.New("help").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`Question: {{.Stem}}

Options:
{{range $i, $opt := .Options}}{{inc $i}}. {{$opt}}
{{end}}{{if .MultiNote}}
Note: this is a multi-select question. Exactly {{.SelectCount}} options must be chosen.
{{end}}{{if .Hints}}
Available hints: {{.Hints}}
{{end}}
Learner's request: {{.Request}}`))

type helpTemplateData struct {
	Stem        string
	Options     []string
	MultiNote   bool
	SelectCount int
	Hints       string
	Request     string
}

// Help asks the LLM for guidance on a question. The prompt never includes
// the correct answer indices, so the model cannot leak them.
func (a *Assistant) Help(ctx context.Context, q *content.Question, request string) (string, error) {
	ctx = llm.WithPurpose(ctx, "question-help")

	msg, err := buildHelpMessage(q, request)
	if err != nil {
		return "", fmt.Errorf("build help prompt: %w", err)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: helpSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: msg},
		},
		MaxTokens:   a.cfg.HelpMaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("help request failed: %w", err)
	}

	text := strings.TrimSpace(contentAsText(resp.Content))
	if text == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty help response")}
	}
	return text, nil
}

func buildHelpMessage(q *content.Question, request string) (string, error) {
	data := helpTemplateData{
		Stem:        q.Stem,
		Options:     q.Options,
		MultiNote:   q.Type == content.TypeMulti,
		SelectCount: q.SelectCount,
		Hints:       strings.Join(q.Hints, ", "),
		Request:     request,
	}
	var buf bytes.Buffer
	if err := helpUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// contentAsText converts a raw LLM response into plain text. Providers wrap
// schemaless responses as a JSON string; fall back to the raw bytes when the
// content isn't one.
func contentAsText(raw json.RawMessage) string {
	var decoded string
	if err := json.Unmarshal(raw, &decoded); err == nil {
		return decoded
	}
	return string(raw)
}
