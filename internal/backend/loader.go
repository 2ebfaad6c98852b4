package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/term-glossary/internal/glossary"
	"github.com/atomicstack/term-glossary/internal/logging/events"
)

// Kind represents the type of data emitted by the loader.
type Kind int

const (
	KindTerms Kind = iota
)

// DefaultReloadInterval is the minimum spacing between two term fetches.
const DefaultReloadInterval = 2 * time.Second

// Event conveys a fetched term snapshot or the error that prevented it.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Source fetches the term list; *api.Client satisfies it.
type Source interface {
	FetchTerms(ctx context.Context) ([]glossary.Term, error)
}

// Loader fetches terms off the UI loop. One fetch runs at start; Reload queues
// another. Requests made while a fetch is pending are coalesced.
type Loader struct {
	source   Source
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	requests chan struct{}
	events   chan Event
	wg       sync.WaitGroup
}

// NewLoader starts a loader that fetches from source immediately and then
// whenever Reload is called, no more often than interval.
func NewLoader(source Source, interval time.Duration) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	l := &Loader{
		source:   source,
		throttle: newThrottle(interval),
		ctx:      ctx,
		cancel:   cancel,
		requests: make(chan struct{}, 1),
		events:   make(chan Event, 16),
	}
	l.requests <- struct{}{}

	l.wg.Add(1)
	go l.run()

	go func() {
		l.wg.Wait()
		close(l.events)
	}()

	return l
}

// Events returns a channel of fetch results. It is closed after Stop once the
// worker exits.
func (l *Loader) Events() <-chan Event {
	return l.events
}

// Reload requests another fetch. It reports false when a fetch is already
// queued and the request was folded into it.
func (l *Loader) Reload() bool {
	select {
	case l.requests <- struct{}{}:
		return true
	default:
		return false
	}
}

// Stop cancels the loader. An in-flight request is aborted through its context.
func (l *Loader) Stop() {
	l.cancel()
}

// Wait blocks until the worker has exited and the events channel is closed.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) run() {
	defer l.wg.Done()
	for {
		select {
		case <-l.ctx.Done():
			return
		case <-l.requests:
			if !l.throttle.wait(l.ctx) {
				return
			}
			if !l.emit(l.fetch()) {
				return
			}
		}
	}
}

func (l *Loader) fetch() Event {
	events.Terms.Fetch()
	terms, err := l.source.FetchTerms(l.ctx)
	if err != nil {
		events.Terms.Failed(err)
		return Event{Kind: KindTerms, Err: err}
	}
	events.Terms.Loaded(len(terms))
	return Event{Kind: KindTerms, Data: terms}
}

func (l *Loader) emit(evt Event) bool {
	select {
	case <-l.ctx.Done():
		return false
	case l.events <- evt:
		return true
	}
}
