package quiz

import "github.com/procureiq/procureiq/internal/session"

// runReadyMsg is sent when the run has been created and its start event
// persisted.
type runReadyMsg struct {
	Run *session.Run
	Err error
}

// helpReadyMsg is sent when the assistant's help response arrives.
type helpReadyMsg struct {
	Text string
	Err  error
}

// resultReadyMsg is sent when the run has been scored and persisted.
type resultReadyMsg struct {
	Result *session.Result
	Err    error
}
