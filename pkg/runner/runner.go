// Package runner models the host test runner's contract at the
// size this SDK needs: per-test contexts carrying the global
// fail primitive, before/after lifecycle hooks, and a
// completion signal for asynchronous checks. Suites use the
// BeforeEach hook as the matcher registration point, so the
// registry is (re)installed inside every test's setup tick.
package runner

import (
	"time"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/logging"
	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/monitor"
)

// Status constants for test outcomes.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Hook is a function invoked before or after each test.
type Hook func(tc *TestContext)

// Result captures the outcome of one test execution.
type Result struct {
	// ID is the unique identifier of the test.
	ID string `json:"id"`

	// Name is the test name.
	Name string `json:"name"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// StartTime is when execution began.
	StartTime time.Time `json:"start_time"`

	// Duration is the wall-clock execution time, including
	// the wait for asynchronous checks.
	Duration time.Duration `json:"duration"`

	// Failures holds every failure recorded during the test.
	Failures []Failure `json:"failures,omitempty"`
}

// Suite executes tests with shared lifecycle hooks.
type Suite struct {
	beforeEach []Hook
	afterEach  []Hook
	logger     logging.Logger
	collector  *monitor.EventCollector
	failFast   bool
	aborted    bool
}

// SuiteOption configures a Suite.
type SuiteOption func(*Suite)

// WithLogger sets the logger used by the suite and its test
// contexts.
func WithLogger(logger logging.Logger) SuiteOption {
	return func(s *Suite) {
		s.logger = logger
	}
}

// WithCollector sets an event collector that receives test
// lifecycle and assertion failure events.
func WithCollector(c *monitor.EventCollector) SuiteOption {
	return func(s *Suite) {
		s.collector = c
	}
}

// WithFailFast makes the suite skip remaining tests after the
// first failure.
func WithFailFast() SuiteOption {
	return func(s *Suite) {
		s.failFast = true
	}
}

// NewSuite creates a Suite with the supplied options.
func NewSuite(opts ...SuiteOption) *Suite {
	s := &Suite{
		logger: logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BeforeEach adds a hook run before every test body. Matcher
// registration belongs here.
func (s *Suite) BeforeEach(h Hook) {
	s.beforeEach = append(s.beforeEach, h)
}

// AfterEach adds a hook run after every test body, once all
// asynchronous checks have settled.
func (s *Suite) AfterEach(h Hook) {
	s.afterEach = append(s.afterEach, h)
}

// Run executes one test: before hooks, body, the wait for
// asynchronous completions, then after hooks. It returns the
// test's Result.
func (s *Suite) Run(name string, body func(tc *TestContext)) *Result {
	tc := newTestContext(name, s.logger, s.collector)

	if s.failFast && s.aborted {
		s.logger.Debug("test skipped",
			logging.StringField("test", name),
		)
		return &Result{
			ID:     tc.id,
			Name:   name,
			Status: StatusSkipped,
		}
	}

	s.logger.Debug("test starting",
		logging.StringField("test", name),
		logging.StringField("id", tc.id),
	)
	if s.collector != nil {
		s.collector.EmitTestStarted(tc.id, name)
	}

	start := time.Now()
	for _, h := range s.beforeEach {
		h(tc)
	}

	body(tc)

	// Asynchronous-bridged checks report through tc.Fail after
	// the body returns; waiting here keeps those reports
	// inside this test.
	tc.Wait()

	for _, h := range s.afterEach {
		h(tc)
	}
	duration := time.Since(start)

	result := &Result{
		ID:        tc.id,
		Name:      name,
		Status:    StatusPassed,
		StartTime: start,
		Duration:  duration,
		Failures:  tc.Failures(),
	}
	if len(result.Failures) > 0 {
		result.Status = StatusFailed
		s.aborted = true
	}

	if s.collector != nil {
		switch result.Status {
		case StatusPassed:
			s.collector.EmitTestPassed(tc.id, name, duration)
		default:
			s.collector.EmitTestFailed(tc.id, name, duration)
		}
	}
	s.logger.Info("test finished",
		logging.StringField("test", name),
		logging.StringField("status", result.Status),
		logging.IntField("failures", len(result.Failures)),
	)

	return result
}
