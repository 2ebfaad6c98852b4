package server

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

const reportSeparator = "---\n"

// Report is one stored error report.
type Report struct {
	ID         string                 `json:"id"`
	ReceivedAt time.Time              `json:"received_at"`
	Fields     map[string]interface{} `json:"fields"`
}

// ReportLog appends reports to a UTF-8 text file, each followed by a
// separator line.
type ReportLog struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

func NewReportLog(path string) *ReportLog {
	return &ReportLog{path: path, now: time.Now}
}

// Append stores fields under a fresh report ID.
func (l *ReportLog) Append(fields map[string]interface{}) (Report, error) {
	report := Report{
		ID:         uuid.NewString(),
		ReceivedAt: l.now().UTC(),
		Fields:     fields,
	}
	line, err := json.Marshal(report)
	if err != nil {
		return Report{}, fmt.Errorf("encode report: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Report{}, fmt.Errorf("open reports file: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return Report{}, fmt.Errorf("write report: %w", err)
	}
	if _, err := f.WriteString(reportSeparator); err != nil {
		f.Close()
		return Report{}, fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return Report{}, fmt.Errorf("close reports file: %w", err)
	}
	return report, nil
}
