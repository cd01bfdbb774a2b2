package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor to report finished build spans on a Logger.
// Only submit and wait spans are reported. Failed submissions are left to the caller,
// which already reports them with their cause.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// NewTracerProvider returns an SDK provider whose spans end up on logger.
func NewTracerProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(logger)))
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs how long a submission or a remote build took.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	var platform domain.Platform
	var id domain.BuildID
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case attribute.Key(ports.AttrPlatform):
			platform = domain.Platform(kv.Value.AsString())
		case attribute.Key(ports.AttrBuildID):
			id = domain.BuildID(kv.Value.AsString())
		}
	}
	if platform == "" || id == "" {
		return
	}

	took := elapsed(s.StartTime(), s.EndTime())
	failed := s.Status().Code == codes.Error

	switch s.Name() {
	case ports.SpanSubmit:
		if !failed {
			b.logger.Info(fmt.Sprintf("%s build %s submitted in %s", platform.DisplayName(), id, took))
		}
	case ports.SpanWait:
		if failed {
			b.logger.Warn(fmt.Sprintf("%s build %s failed after %s", platform.DisplayName(), id, took))
			return
		}
		b.logger.Info(fmt.Sprintf("%s build %s finished after %s", platform.DisplayName(), id, took))
	}
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func elapsed(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < time.Second {
		return d.Round(time.Millisecond)
	}
	return d.Round(time.Second)
}
