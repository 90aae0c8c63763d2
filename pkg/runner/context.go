package runner

import (
	"sync"
	"time"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/logging"
	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/monitor"
	"github.com/google/uuid"
)

// Failure is one recorded failure report.
type Failure struct {
	// Message is the text handed to Fail.
	Message string `json:"message"`

	// Time is when the failure was recorded.
	Time time.Time `json:"time"`
}

// TestContext is the per-test surface of the runner: the global
// fail primitive, test identity, failure records, and the
// completion signal for asynchronous checks. It satisfies the
// matchers.FailSink interface.
//
// Fail may be called at any point while the test is active,
// including from goroutines the asynchronous-bridged matchers
// started. A check that settles after its test finished is
// attributed to whichever test is active at settlement time —
// await the Async completion callbacks (the Suite does this
// between test body and teardown) to avoid that hazard.
type TestContext struct {
	mu        sync.Mutex
	id        string
	name      string
	failures  []Failure
	pending   sync.WaitGroup
	logger    logging.Logger
	collector *monitor.EventCollector
}

func newTestContext(
	name string,
	logger logging.Logger,
	collector *monitor.EventCollector,
) *TestContext {
	return &TestContext{
		id:        uuid.NewString(),
		name:      name,
		logger:    logger,
		collector: collector,
	}
}

// ID returns the unique identifier assigned to this test.
func (tc *TestContext) ID() string {
	return tc.id
}

// Name returns the test name.
func (tc *TestContext) Name() string {
	return tc.name
}

// Fail records a failure for this test without stopping it.
func (tc *TestContext) Fail(message string) {
	tc.mu.Lock()
	tc.failures = append(tc.failures, Failure{
		Message: message,
		Time:    time.Now(),
	})
	tc.mu.Unlock()

	tc.logger.Error("test failure",
		logging.StringField("test", tc.name),
		logging.StringField("message", message),
	)
	if tc.collector != nil {
		tc.collector.EmitAssertionFailed(
			tc.id, tc.name, message,
		)
	}
}

// Failed reports whether any failure has been recorded.
func (tc *TestContext) Failed() bool {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return len(tc.failures) > 0
}

// Failures returns a copy of the recorded failures.
func (tc *TestContext) Failures() []Failure {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	out := make([]Failure, len(tc.failures))
	copy(out, tc.failures)
	return out
}

// Async registers one pending asynchronous check and returns
// its completion callback. Pass the callback to an
// asynchronous-bridged matcher; the suite waits for every
// callback before tearing the test down, which keeps late
// failure reports attributed to this test. The callback is
// safe to invoke more than once; only the first invocation
// completes the registration.
func (tc *TestContext) Async() func() {
	tc.pending.Add(1)
	var once sync.Once
	return func() {
		once.Do(tc.pending.Done)
	}
}

// Wait blocks until every completion callback handed out by
// Async has been invoked. A check that never settles blocks
// forever, matching the behavior of a hung test.
func (tc *TestContext) Wait() {
	tc.pending.Wait()
}
