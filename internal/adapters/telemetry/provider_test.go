package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/pinhooks/internal/adapters/telemetry"
	"go.trai.ch/pinhooks/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return rec, telemetry.NewOTelTracerWithProvider(tp, "test")
}

func TestOTelTracer_Start(t *testing.T) {
	rec, tracer := setupRecorder(t)

	ctx, parent := tracer.Start(t.Context(), "annotate")
	_, child := tracer.Start(ctx, "rewrite")
	child.End()
	parent.End()

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "rewrite", spans[0].Name())
	assert.Equal(t, "annotate", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	rec, tracer := setupRecorder(t)

	_, span := tracer.Start(t.Context(), "load")
	span.SetAttribute("directory", "apps/web")
	span.SetAttribute("files", 2)
	span.SetAttribute("packages", int64(120))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("skip_create", true)
	span.SetAttribute("selector", []string{"-p", "./env"})
	span.SetAttribute("level", struct{ N int }{N: 1})
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("directory", "apps/web"),
		attribute.Int("files", 2),
		attribute.Int64("packages", 120),
		attribute.Float64("ratio", 0.5),
		attribute.Bool("skip_create", true),
		attribute.StringSlice("selector", []string{"-p", "./env"}),
		attribute.String("level", "{1}"),
	}, spans[0].Attributes())
}

func TestOTelSpan_RecordError(t *testing.T) {
	rec, tracer := setupRecorder(t)

	_, span := tracer.Start(t.Context(), "rewrite")
	span.RecordError(nil)
	span.RecordError(errors.New("could not parse dependency line"))
	span.End()

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "could not parse dependency line", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNewOTelTracer_ReportsSpansWhenEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	tracer := telemetry.NewOTelTracer(mockLogger, telemetry.InstrumentationName)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	// Disabled by default.
	_, quiet := tracer.Start(t.Context(), "annotate.file")
	quiet.End()

	tracer.SetTrace(true)

	var messages []string
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		messages = append(messages, msg)
	}).Times(2)
	mockLogger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		messages = append(messages, msg)
	})

	ctx, dir := tracer.Start(t.Context(), "annotate.directory")
	dir.SetAttribute("directory", "apps/web")
	_, file := tracer.Start(ctx, "annotate.file")
	file.SetAttribute("file", "apps/web/environment.yml")
	file.SetAttribute("changed", true)
	file.End()
	_, broken := tracer.Start(ctx, "annotate.file")
	broken.RecordError(errors.New("could not parse dependency line"))
	broken.End()
	dir.End()

	require.Len(t, messages, 3)
	assert.Regexp(t, `^annotate\.file file=apps/web/environment\.yml changed=true \(\S+\)$`, messages[0])
	assert.Regexp(t, `^annotate\.file \(\S+\) failed$`, messages[1])
	assert.Regexp(t, `^annotate\.directory directory=apps/web \(\S+\)$`, messages[2])

	tracer.SetTrace(false)
	_, off := tracer.Start(t.Context(), "annotate.file")
	off.End()
}

func TestBridge_OnEndWithNilLogger(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	bridge.SetEnabled(true)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(t.Context(), "annotate")
	span.End()

	require.NoError(t, bridge.ForceFlush(t.Context()))
	require.NoError(t, bridge.Shutdown(t.Context()))
}

func TestOTelTracer_ShutdownWithoutProvider(t *testing.T) {
	_, tracer := setupRecorder(t)
	tracer.SetTrace(true)
	require.NoError(t, tracer.Shutdown(t.Context()))
}
