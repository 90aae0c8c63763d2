// Package monitor captures test lifecycle and assertion events
// and streams them to live observers over websocket. It exists
// so a long UI test run can be watched as failures arrive,
// including the out-of-band failures the asynchronous-bridged
// matchers report after their test body has already returned.
package monitor

import "time"

// EventType represents the type of test event.
type EventType string

const (
	EventTestStarted     EventType = "test_started"
	EventTestPassed      EventType = "test_passed"
	EventTestFailed      EventType = "test_failed"
	EventAssertionFailed EventType = "assertion_failed"
)

// Event represents a single occurrence during a test run.
type Event struct {
	Type      EventType     `json:"type"`
	RunID     string        `json:"run_id,omitempty"`
	TestID    string        `json:"test_id"`
	TestName  string        `json:"test_name"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
