package events

import "github.com/atomicstack/term-glossary/internal/logging"

type TermsTracer struct{}

var Terms = TermsTracer{}

func (TermsTracer) Fetch() {
	logging.Trace("terms.fetch", nil)
}

func (TermsTracer) Loaded(count int) {
	logging.Trace("terms.loaded", map[string]interface{}{"count": count})
}

func (TermsTracer) Failed(err error) {
	if err == nil {
		return
	}
	logging.Trace("terms.failed", map[string]interface{}{"error": err.Error()})
}

func (TermsTracer) Reload(queued bool) {
	logging.Trace("terms.reload", map[string]interface{}{"queued": queued})
}

func (TermsTracer) Categories(categories []string) {
	logging.Trace("terms.categories", map[string]interface{}{"categories": categories})
}
