package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Blackbaud-ScottFreeman/skyux-sdk-testing/pkg/runner"
)

// HistoricalEntry represents a single test run in the
// historical log.
type HistoricalEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	TestID      string    `json:"test_id"`
	TestName    string    `json:"test_name"`
	Status      string    `json:"status"`
	Duration    string    `json:"duration"`
	Failures    int       `json:"failures"`
	ResultsPath string    `json:"results_path,omitempty"`
}

// AppendToHistory adds an entry to the historical log stored
// at historyPath. Each entry is a single JSON line.
func AppendToHistory(
	historyPath string,
	result *runner.Result,
	resultsPath string,
) error {
	entry := HistoricalEntry{
		Timestamp:   result.StartTime.Add(result.Duration),
		TestID:      result.ID,
		TestName:    result.Name,
		Status:      result.Status,
		Duration:    result.Duration.String(),
		Failures:    len(result.Failures),
		ResultsPath: resultsPath,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal history entry: %w", err,
		)
	}

	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}
