package store

import (
	"context"
	"time"

	"github.com/procureiq/procureiq/ent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// QuizEventData captures a quiz run lifecycle event.
type QuizEventData struct {
	RunID              string
	QuizSlug           string
	Action             string // "start" or "finish"
	QuestionsDelivered int
	CorrectAnswers     int
	DurationSecs       int
}

// AnswerEventData captures one submitted answer.
type AnswerEventData struct {
	RunID        string
	QuizSlug     string
	QuestionID   string
	QuestionType string
	Chosen       []int
	Correct      bool
	SkillKeys    []string
	TimeMs       int
}

// HelpEventData captures an assistant help request.
type HelpEventData struct {
	RunID      string
	QuestionID string
	Request    string
	Success    bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event as returned by queries.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates LLM usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// RunRecord is a finished quiz run as returned by history queries.
type RunRecord struct {
	RunID              string
	QuizSlug           string
	Timestamp          time.Time
	QuestionsDelivered int
	CorrectAnswers     int
	DurationSecs       int
}

// AnswerTotals aggregates answer outcomes across all runs.
type AnswerTotals struct {
	Total   int
	Correct int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendQuizEvent records a quiz run start or finish.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// AppendAnswerEvent records a submitted answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendHelpEvent records an assistant help request.
	AppendHelpEvent(ctx context.Context, data HelpEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentRuns returns finished runs, newest first.
	RecentRuns(ctx context.Context, limit int) ([]RunRecord, error)

	// Totals aggregates answer outcomes across all runs.
	Totals(ctx context.Context) (AnswerTotals, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if missing.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
