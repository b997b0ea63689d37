// Copyright © 2025 The gnaw authors

package trace

import (
	"context"
	"errors"

	"go.opencensus.io/trace"
)

var _ Tracer = &ocAnnotator{}

type ocAnnotator struct {
	tracer
	currentContext context.Context
	currentSpan    *trace.Span
	contexts       []context.Context
}

// NewOpenCensusAnnotator returns a Tracer that opens an opencensus
// span for every instrumented parser.
func NewOpenCensusAnnotator(parentContext context.Context, opts ...Option) Tracer {
	p := &ocAnnotator{
		currentContext: parentContext,
	}
	p.tracer.applyConfigs(opts...)
	return p
}

// EnableWithContext arms the tracer under a fresh parent context.
func (p *ocAnnotator) EnableWithContext(ctx context.Context) error {
	if ctx == nil {
		return errors.New("set a context to use this function")
	}
	p.currentContext = ctx
	return p.tracer.Enable()
}

func (p *ocAnnotator) Enable() error {
	if p.currentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opencensus")
	}
	return p.tracer.Enable()
}

func (p *ocAnnotator) Complete() error {
	if p.currentSpan != nil {
		p.currentSpan.End()
	}
	return nil
}

func (p *ocAnnotator) Start(name string) func(error) {
	if p.skipTrace(name) {
		return func(error) {}
	}
	p.contexts = append(p.contexts, p.currentContext)
	p.currentContext, p.currentSpan = trace.StartSpan(p.currentContext, p.label(name))
	return func(err error) {
		if err != nil {
			p.currentSpan.Annotate([]trace.Attribute{
				trace.StringAttribute("error", err.Error()),
			}, "parse error")
		}
		p.currentSpan.End()
		// And pop the current context back
		n := len(p.contexts) - 1
		p.currentContext = p.contexts[n]
		p.contexts = p.contexts[:n]
		p.currentSpan = trace.FromContext(p.currentContext)
	}
}
