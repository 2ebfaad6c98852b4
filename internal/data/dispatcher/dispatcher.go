package dispatcher

import (
	"github.com/atomicstack/term-glossary/internal/backend"
	"github.com/atomicstack/term-glossary/internal/glossary"
	"github.com/atomicstack/term-glossary/internal/logging/events"
	"github.com/atomicstack/term-glossary/internal/state"
)

type Result struct {
	TermsUpdated bool
	Failed       bool
}

type Dispatcher struct {
	terms state.TermStore
}

func New(terms state.TermStore) *Dispatcher {
	return &Dispatcher{terms: terms}
}

// Handle applies a backend event to the stores. Failed fetches leave the
// previous snapshot in place.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.Failed = true
		return res
	}
	switch evt.Kind {
	case backend.KindTerms:
		if terms, ok := evt.Data.([]glossary.Term); ok {
			d.terms.SetTerms(terms)
			events.Terms.Categories(d.terms.Categories())
			res.TermsUpdated = true
		}
	}
	return res
}
