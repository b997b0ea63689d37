// Copyright © 2025 The gnaw authors

package trace_test

import (
	"context"
	"testing"

	gnawtrace "github.com/luthersystems/gnaw/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestExporter(t *testing.T) *tracetest.InMemoryExporter {
	exporter := tracetest.NewInMemoryExporter()

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)
	return exporter
}

func TestNewOpenTelemetryAnnotator(t *testing.T) {
	exporter := newTestExporter(t)

	ppa := gnawtrace.NewOpenTelemetryAnnotator(context.Background())
	require.NoError(t, ppa.Enable())
	p := arithParser(ppa)
	_, _, perr := p("12ab")
	require.Nil(t, perr)
	require.NoError(t, ppa.Complete())

	spans := exporter.GetSpans()
	require.Equal(t, 3, len(spans), "Expected three spans")
	assert.Equal(t, "digits", spans[0].Name)
	assert.Equal(t, "word", spans[1].Name)
	assert.Equal(t, "pair", spans[2].Name)
	assert.Equal(t, spans[2].SpanContext.SpanID(), spans[0].Parent.SpanID(),
		"digits should nest under pair")
}

func TestNewOpenTelemetryAnnotatorFailure(t *testing.T) {
	exporter := newTestExporter(t)

	ppa := gnawtrace.NewOpenTelemetryAnnotator(context.Background())
	require.NoError(t, ppa.Enable())
	p := arithParser(ppa)
	_, _, perr := p("xx")
	require.NotNil(t, perr)
	require.NoError(t, ppa.Complete())

	spans := exporter.GetSpans()
	require.NotEmpty(t, spans)
	assert.Equal(t, "digits", spans[0].Name)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestNewOpenTelemetryAnnotatorSkip(t *testing.T) {
	exporter := newTestExporter(t)

	ppa := gnawtrace.NewOpenTelemetryAnnotator(context.Background(),
		gnawtrace.WithSkipFilter(func(name string) bool { return name != "pair" }))
	require.NoError(t, ppa.Enable())
	p := arithParser(ppa)
	_, _, perr := p("12ab")
	require.Nil(t, perr)
	require.NoError(t, ppa.Complete())

	spans := exporter.GetSpans()
	require.Equal(t, 1, len(spans), "Expected selective spans")
	assert.Equal(t, "pair", spans[0].Name)
}

func TestOpenTelemetryAnnotatorNilContext(t *testing.T) {
	var missing context.Context
	ppa := gnawtrace.NewOpenTelemetryAnnotator(missing)
	assert.Error(t, ppa.Enable())
	assert.False(t, ppa.IsEnabled())
}
