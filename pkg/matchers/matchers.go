// Package matchers implements the extension predicates of the
// testing SDK and the registry that makes them available to
// expectations. It ships with five synchronous matchers
// (visible, exists, hasCssClass, hasStyle, hasText) and three
// asynchronous-bridged matchers (accessible, resourceTextEquals,
// elementHasResourceText).
//
// Synchronous matchers compute their Comparison immediately.
// Asynchronous-bridged matchers wrap checks whose outcome is
// only known after background work finishes, inside a comparison
// contract that demands an immediate answer: Compare starts the
// check in a goroutine, returns a passing Comparison right away,
// and reports a genuine mismatch later through the fail sink.
// Because their declared result is always a pass, negating an
// asynchronous-bridged matcher is meaningless and unsupported.
package matchers

import (
	"context"
	"fmt"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/a11y"
	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/dom"
)

// Scanner is the slice of the accessibility scanner the
// accessible matcher needs. *a11y.RuleScanner satisfies it.
type Scanner interface {
	Scan(
		ctx context.Context,
		el *dom.Element,
		cfg *a11y.Config,
	) error
}

// ResourceService is the slice of the resource lookup service
// the resource text matchers need. The implementations in
// pkg/resources satisfy it.
type ResourceService interface {
	GetString(
		ctx context.Context,
		name string,
		args ...any,
	) (string, error)
}

// Comparison is the result a matcher hands back to the
// expectation machinery. Message is shown when Pass is false,
// or when Pass is true and the expectation was negated.
type Comparison struct {
	// Pass indicates whether the comparison succeeded.
	Pass bool

	// Message is the human-readable explanation.
	Message string
}

// FailSink receives out-of-band failure reports. The test
// runner's TestContext implements it, and so does any type with
// a Fail(string) method, such as an adapter over *testing.T.
type FailSink interface {
	// Fail records a failure for the active test without
	// stopping execution.
	Fail(message string)
}

// Context carries the collaborators a matcher may need for one
// comparison: the fail sink for out-of-band reporting and the
// services behind the asynchronous checks.
type Context struct {
	// Sink receives failures detected after Compare returned.
	Sink FailSink

	// Scanner runs accessibility scans for the accessible
	// matcher.
	Scanner Scanner

	// Resources resolves localized strings for the resource
	// text matchers.
	Resources ResourceService
}

// Matcher compares an actual value against matcher-specific
// arguments. A non-nil error reports a malformed call — a
// test-authoring defect — and is distinct from a failed
// comparison.
type Matcher interface {
	Compare(
		ctx Context,
		actual any,
		args ...any,
	) (Comparison, error)
}

// Factory constructs a stateless Matcher. Factories are what
// suites register; a fresh Matcher is built for every
// comparison.
type Factory func() Matcher

// matcherFunc adapts a plain function to the Matcher interface.
type matcherFunc func(
	ctx Context,
	actual any,
	args ...any,
) (Comparison, error)

func (f matcherFunc) Compare(
	ctx Context,
	actual any,
	args ...any,
) (Comparison, error) {
	return f(ctx, actual, args...)
}

// ArgumentError reports a malformed matcher invocation, such as
// a class name with a leading selector dot. It aborts the
// comparison before any pass/fail result is produced.
type ArgumentError struct {
	// Matcher is the name of the matcher that was misused.
	Matcher string

	// Reason explains what is wrong with the call.
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf(
		"invalid call to matcher %q: %s", e.Matcher, e.Reason,
	)
}
