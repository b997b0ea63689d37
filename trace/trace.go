// Copyright © 2025 The gnaw authors

// Package trace annotates parser invocations with spans. Parsers are
// wrapped by Instrument and report enter and exit events to a Tracer;
// annotators bridge those events to opentelemetry or opencensus.
package trace

import (
	"fmt"

	"github.com/luthersystems/gnaw"
)

// Tracer receives parser enter and exit events. Implementations keep
// per-parse state and are not safe for concurrent use; a Tracer
// belongs to one parse at a time.
type Tracer interface {
	IsEnabled() bool
	// Enable arms the tracer. Instrumented parsers report nothing
	// until it is called.
	Enable() error
	// Complete closes whatever span is still open.
	Complete() error
	// Start opens a span. The returned func closes it; a non-nil err
	// marks the span failed.
	Start(name string) func(err error)
}

// SkipFilter suppresses spans for parser names it rejects.
type SkipFilter func(name string) bool

// Labeler rewrites a parser name before it becomes a span name. An
// empty result keeps the original name.
type Labeler func(name string) string

// tracer holds the state shared by every Tracer in this package.
type tracer struct {
	enabled    bool
	skipFilter SkipFilter
	labeler    Labeler
}

type Option func(*tracer)

// WithSkipFilter suppresses spans for parsers the filter rejects.
func WithSkipFilter(f SkipFilter) Option {
	return func(p *tracer) { p.skipFilter = f }
}

// WithLabeler renames spans.
func WithLabeler(f Labeler) Option {
	return func(p *tracer) { p.labeler = f }
}

func (p *tracer) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *tracer) IsEnabled() bool {
	return p.enabled
}

func (p *tracer) Enable() error {
	if p.enabled {
		return fmt.Errorf("tracer already enabled")
	}
	p.enabled = true
	return nil
}

func (p *tracer) Complete() error {
	return nil
}

// skipTrace is a helper function to decide whether to skip tracing.
func (p *tracer) skipTrace(name string) bool {
	return !p.enabled || name == "" || p.skipFilter != nil && p.skipFilter(name)
}

// label returns the pretty span name for a parser. If the labeler
// produces nothing the original name is used.
func (p *tracer) label(name string) string {
	if p.labeler == nil {
		return name
	}
	if pretty := p.labeler(name); pretty != "" {
		return pretty
	}
	return name
}

// noopTracer drops every event.
type noopTracer struct {
	tracer
}

var _ Tracer = &noopTracer{}

func (p *noopTracer) Start(string) func(error) {
	return func(error) {}
}

// NewNoopTracer returns a tracer that can be enabled but records
// nothing.
func NewNoopTracer() Tracer {
	return &noopTracer{}
}

// Instrument names p and reports its invocations to tr. A nil or
// disabled tracer adds nothing but a function call around p.
func Instrument[I gnaw.Input, O, E any](tr Tracer, name string, p gnaw.Parser[I, O, E]) gnaw.Parser[I, O, E] {
	return func(in I) (I, O, *gnaw.Err[E]) {
		if tr == nil || !tr.IsEnabled() {
			return p(in)
		}
		end := tr.Start(name)
		rest, out, err := p(in)
		if err != nil {
			end(err)
			return rest, out, err
		}
		end(nil)
		return rest, out, nil
	}
}
