package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/runner"
)

// JSONReporter generates JSON reports from test results.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// GenerateReport creates a JSON report for a single test
// result.
func (r *JSONReporter) GenerateReport(
	result *runner.Result,
) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// jsonRunSummary is the JSON structure for a run summary.
type jsonRunSummary struct {
	GeneratedAt   time.Time        `json:"generated_at"`
	TotalTests    int              `json:"total_tests"`
	Passed        int              `json:"passed"`
	Failed        int              `json:"failed"`
	TotalDuration time.Duration    `json:"total_duration"`
	Results       []*runner.Result `json:"results"`
}

// GenerateRunSummary creates a JSON summary of all test
// results.
func (r *JSONReporter) GenerateRunSummary(
	results []*runner.Result,
) ([]byte, error) {
	summary := jsonRunSummary{
		GeneratedAt: time.Now(),
		TotalTests:  len(results),
		Results:     results,
	}

	for _, res := range results {
		if res.Status == runner.StatusPassed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.TotalDuration += res.Duration
	}

	if r.pretty {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}

// WriteReport writes a JSON report to the specified writer.
func (r *JSONReporter) WriteReport(
	w io.Writer,
	result *runner.Result,
) error {
	data, err := r.GenerateReport(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
