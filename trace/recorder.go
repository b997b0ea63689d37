// Copyright © 2025 The gnaw authors

package trace

// Event is one recorded span.
type Event struct {
	// Name is the span name after labeling.
	Name string
	// Depth is the nesting depth when the span opened.
	Depth int
	// Failed reports whether the parser returned an error.
	Failed bool
}

// Recorder keeps spans in memory, in the order they opened. It backs
// tests and tooling that inspects parser activity without an exporter.
type Recorder struct {
	tracer
	events []Event
	depth  int
}

var _ Tracer = &Recorder{}

// NewRecorder returns an in-memory tracer.
func NewRecorder(opts ...Option) *Recorder {
	p := &Recorder{}
	p.applyConfigs(opts...)
	return p
}

func (p *Recorder) Start(name string) func(error) {
	if p.skipTrace(name) {
		return func(error) {}
	}
	i := len(p.events)
	p.events = append(p.events, Event{Name: p.label(name), Depth: p.depth})
	p.depth++
	return func(err error) {
		p.depth--
		p.events[i].Failed = err != nil
	}
}

// Events returns the spans recorded so far.
func (p *Recorder) Events() []Event {
	return p.events
}

// Reset discards recorded spans.
func (p *Recorder) Reset() {
	p.events = p.events[:0]
	p.depth = 0
}
