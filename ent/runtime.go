// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/procureiq/procureiq/ent/answerevent"
	"github.com/procureiq/procureiq/ent/helpevent"
	"github.com/procureiq/procureiq/ent/llmrequestevent"
	"github.com/procureiq/procureiq/ent/quizevent"
	"github.com/procureiq/procureiq/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescRunID is the schema descriptor for run_id field.
	answereventDescRunID := answereventFields[0].Descriptor()
	// answerevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	answerevent.RunIDValidator = answereventDescRunID.Validators[0].(func(string) error)
	// answereventDescQuizSlug is the schema descriptor for quiz_slug field.
	answereventDescQuizSlug := answereventFields[1].Descriptor()
	// answerevent.QuizSlugValidator is a validator for the "quiz_slug" field. It is called by the builders before save.
	answerevent.QuizSlugValidator = answereventDescQuizSlug.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[3].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[7].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	helpeventMixin := schema.HelpEvent{}.Mixin()
	helpeventMixinFields0 := helpeventMixin[0].Fields()
	_ = helpeventMixinFields0
	helpeventFields := schema.HelpEvent{}.Fields()
	_ = helpeventFields
	// helpeventDescTimestamp is the schema descriptor for timestamp field.
	helpeventDescTimestamp := helpeventMixinFields0[1].Descriptor()
	// helpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	helpevent.DefaultTimestamp = helpeventDescTimestamp.Default.(func() time.Time)
	// helpeventDescRunID is the schema descriptor for run_id field.
	helpeventDescRunID := helpeventFields[0].Descriptor()
	// helpevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	helpevent.RunIDValidator = helpeventDescRunID.Validators[0].(func(string) error)
	// helpeventDescQuestionID is the schema descriptor for question_id field.
	helpeventDescQuestionID := helpeventFields[1].Descriptor()
	// helpevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	helpevent.QuestionIDValidator = helpeventDescQuestionID.Validators[0].(func(string) error)
	// helpeventDescRequest is the schema descriptor for request field.
	helpeventDescRequest := helpeventFields[2].Descriptor()
	// helpevent.RequestValidator is a validator for the "request" field. It is called by the builders before save.
	helpevent.RequestValidator = helpeventDescRequest.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescRunID is the schema descriptor for run_id field.
	quizeventDescRunID := quizeventFields[0].Descriptor()
	// quizevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	quizevent.RunIDValidator = quizeventDescRunID.Validators[0].(func(string) error)
	// quizeventDescQuizSlug is the schema descriptor for quiz_slug field.
	quizeventDescQuizSlug := quizeventFields[1].Descriptor()
	// quizevent.QuizSlugValidator is a validator for the "quiz_slug" field. It is called by the builders before save.
	quizevent.QuizSlugValidator = quizeventDescQuizSlug.Validators[0].(func(string) error)
	// quizeventDescAction is the schema descriptor for action field.
	quizeventDescAction := quizeventFields[2].Descriptor()
	// quizevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	quizevent.ActionValidator = quizeventDescAction.Validators[0].(func(string) error)
	// quizeventDescQuestionsDelivered is the schema descriptor for questions_delivered field.
	quizeventDescQuestionsDelivered := quizeventFields[3].Descriptor()
	// quizevent.DefaultQuestionsDelivered holds the default value on creation for the questions_delivered field.
	quizevent.DefaultQuestionsDelivered = quizeventDescQuestionsDelivered.Default.(int)
	// quizeventDescCorrectAnswers is the schema descriptor for correct_answers field.
	quizeventDescCorrectAnswers := quizeventFields[4].Descriptor()
	// quizevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	quizevent.DefaultCorrectAnswers = quizeventDescCorrectAnswers.Default.(int)
	// quizeventDescDurationSecs is the schema descriptor for duration_secs field.
	quizeventDescDurationSecs := quizeventFields[5].Descriptor()
	// quizevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	quizevent.DefaultDurationSecs = quizeventDescDurationSecs.Default.(int)
}
