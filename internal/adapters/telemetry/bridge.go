package telemetry

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pinhooks/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to report finished spans through a Logger.
// It stays silent until enabled.
type Bridge struct {
	logger  ports.Logger
	enabled atomic.Bool
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// SetEnabled turns span reporting on or off.
func (b *Bridge) SetEnabled(enable bool) {
	b.enabled.Store(enable)
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its attributes and its duration.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !b.enabled.Load() {
		return
	}
	if !s.SpanContext().IsValid() {
		return
	}

	msg := formatSpan(s)
	if s.Status().Code == codes.Error {
		b.logger.Warn(msg + " failed")
		return
	}
	b.logger.Info(msg)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func formatSpan(s sdktrace.ReadOnlySpan) string {
	var sb strings.Builder
	sb.WriteString(s.Name())
	for _, kv := range s.Attributes() {
		sb.WriteString(" ")
		sb.WriteString(string(kv.Key))
		sb.WriteString("=")
		sb.WriteString(kv.Value.Emit())
	}
	fmt.Fprintf(&sb, " (%s)", s.EndTime().Sub(s.StartTime()).Round(time.Millisecond))
	return sb.String()
}
