// Package report provides report generation for test run
// results.
package report

import (
	"io"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/runner"
)

// Reporter defines the interface for generating test reports.
type Reporter interface {
	// GenerateReport creates a report for a single test
	// result.
	GenerateReport(result *runner.Result) ([]byte, error)

	// GenerateRunSummary creates a summary of a whole run's
	// results.
	GenerateRunSummary(
		results []*runner.Result,
	) ([]byte, error)

	// WriteReport writes a report to the specified writer.
	WriteReport(w io.Writer, result *runner.Result) error
}
