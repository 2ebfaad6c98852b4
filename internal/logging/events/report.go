package events

import "github.com/atomicstack/term-glossary/internal/logging"

type ReportTracer struct{}

type reportReason string

const (
	ReportReasonEscape  reportReason = "escape"
	ReportReasonSuccess reportReason = "success"
)

var Report = ReportTracer{}

func (ReportTracer) Open() {
	logging.Trace("report.open", nil)
}

func (ReportTracer) Close(reason reportReason) {
	logging.Trace("report.close", map[string]interface{}{"reason": string(reason)})
}

func (ReportTracer) Submit(fields map[string]string) {
	logging.Trace("report.submit", map[string]interface{}{"fields": fields})
}

func (ReportTracer) Invalid(field string) {
	logging.Trace("report.invalid", map[string]interface{}{"field": field})
}

func (ReportTracer) Succeeded() {
	logging.Trace("report.success", nil)
}

func (ReportTracer) Failed(err error) {
	if err == nil {
		return
	}
	logging.Trace("report.failed", map[string]interface{}{"error": err.Error()})
}
