package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/runner"
)

// HTMLReporter generates HTML reports from test results.
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

// GenerateReport creates an HTML report for a single test
// result.
func (r *HTMLReporter) GenerateReport(
	result *runner.Result,
) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteReport(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateRunSummary creates an HTML summary of all test
// results.
func (r *HTMLReporter) GenerateRunSummary(
	results []*runner.Result,
) ([]byte, error) {
	var buf bytes.Buffer
	writeHeader(&buf, "Test Run Summary")

	fmt.Fprintln(&buf, "<h1>Test Run Summary</h1>")
	fmt.Fprintln(&buf, "<table>")
	fmt.Fprintln(
		&buf,
		"<tr><th>Test</th><th>Status</th>"+
			"<th>Duration</th><th>Failures</th></tr>",
	)
	for _, result := range results {
		fmt.Fprintf(
			&buf,
			"<tr><td>%s</td><td class=\"%s\">%s</td>"+
				"<td>%v</td><td>%d</td></tr>\n",
			html.EscapeString(result.Name),
			statusClass(result),
			strings.ToUpper(result.Status),
			result.Duration,
			len(result.Failures),
		)
	}
	fmt.Fprintln(&buf, "</table>")

	writeFooter(&buf)
	return buf.Bytes(), nil
}

// WriteReport writes an HTML report to the specified writer.
func (r *HTMLReporter) WriteReport(
	w io.Writer,
	result *runner.Result,
) error {
	writeHeader(w, "Test Report: "+result.Name)

	fmt.Fprintf(
		w,
		"<h1>Test Report: %s</h1>\n",
		html.EscapeString(result.Name),
	)
	fmt.Fprintf(
		w,
		"<p><strong>Test ID:</strong> %s</p>\n",
		html.EscapeString(result.ID),
	)
	fmt.Fprintf(
		w,
		"<p><strong>Started:</strong> %s</p>\n",
		result.StartTime.Format(time.RFC3339),
	)
	fmt.Fprintf(
		w,
		"<p><strong>Status:</strong> "+
			"<span class=\"%s\">%s</span></p>\n",
		statusClass(result),
		strings.ToUpper(result.Status),
	)
	fmt.Fprintf(
		w,
		"<p><strong>Duration:</strong> %v</p>\n",
		result.Duration,
	)

	if len(result.Failures) > 0 {
		fmt.Fprintln(w, "<h2>Failures</h2>")
		fmt.Fprintln(w, "<ul>")
		for _, f := range result.Failures {
			fmt.Fprintf(
				w,
				"<li><code>%s</code></li>\n",
				html.EscapeString(f.Message),
			)
		}
		fmt.Fprintln(w, "</ul>")
	}

	writeFooter(w)
	return nil
}

func statusClass(result *runner.Result) string {
	if result.Status == runner.StatusPassed {
		return "status-passed"
	}
	return "status-failed"
}

func writeHeader(w io.Writer, title string) {
	fmt.Fprintf(
		w,
		"<!DOCTYPE html>\n<html>\n<head>\n"+
			"<meta charset=\"utf-8\">\n"+
			"<title>%s</title>\n<style>\n"+
			"body { font-family: sans-serif; margin: 2em; }\n"+
			"table { border-collapse: collapse; }\n"+
			"th, td { border: 1px solid #ccc; "+
			"padding: 0.4em 0.8em; }\n"+
			".status-passed { color: #2e7d32; }\n"+
			".status-failed { color: #c62828; }\n"+
			"</style>\n</head>\n<body>\n",
		html.EscapeString(title),
	)
}

func writeFooter(w io.Writer) {
	fmt.Fprintln(w, "</body>\n</html>")
}
