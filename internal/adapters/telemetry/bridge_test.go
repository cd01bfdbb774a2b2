package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/dispatch/internal/adapters/telemetry"
	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
	"go.trai.ch/dispatch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var start = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func buildSpan(name string, took time.Duration, failed bool, attrs ...attribute.KeyValue) sdktrace.ReadOnlySpan {
	stub := tracetest.SpanStub{
		Name:       name,
		StartTime:  start,
		EndTime:    start.Add(took),
		Attributes: attrs,
	}
	if failed {
		stub.Status = sdktrace.Status{Code: codes.Error, Description: "remote build failed"}
	}
	return stub.Snapshot()
}

func TestBridge_OnEnd(t *testing.T) {
	android := attribute.String(ports.AttrPlatform, "android")
	ios := attribute.String(ports.AttrPlatform, "ios")

	tests := []struct {
		name   string
		span   sdktrace.ReadOnlySpan
		expect func(log *mocks.MockLogger)
	}{
		{
			name: "build finished",
			span: buildSpan(ports.SpanWait, 4*time.Minute+12*time.Second+300*time.Millisecond, false,
				android, attribute.String(ports.AttrBuildID, "b-1")),
			expect: func(log *mocks.MockLogger) {
				log.EXPECT().Info("Android build b-1 finished after 4m12s")
			},
		},
		{
			name: "build failed",
			span: buildSpan(ports.SpanWait, 31*time.Minute, true, ios, attribute.String(ports.AttrBuildID, "b-2")),
			expect: func(log *mocks.MockLogger) {
				log.EXPECT().Warn("iOS build b-2 failed after 31m0s")
			},
		},
		{
			name: "build submitted",
			span: buildSpan(ports.SpanSubmit, 850*time.Millisecond, false,
				android, attribute.String(ports.AttrBuildID, "b-1")),
			expect: func(log *mocks.MockLogger) {
				log.EXPECT().Info("Android build b-1 submitted in 850ms")
			},
		},
		{
			name:   "submission failed",
			span:   buildSpan(ports.SpanSubmit, time.Second, true, android),
			expect: func(*mocks.MockLogger) {},
		},
		{
			name:   "span without build",
			span:   buildSpan(ports.SpanWait, time.Second, false),
			expect: func(*mocks.MockLogger) {},
		},
		{
			name: "unrelated span",
			span: buildSpan("upload", time.Second, false,
				android, attribute.String(ports.AttrBuildID, "b-1")),
			expect: func(*mocks.MockLogger) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			tt.expect(log)

			telemetry.NewBridge(log).OnEnd(tt.span)
		})
	}
}

func TestBridge_NilLogger(_ *testing.T) {
	bridge := telemetry.NewBridge(nil)

	bridge.OnEnd(buildSpan(ports.SpanWait, time.Second, false,
		attribute.String(ports.AttrPlatform, "android"), attribute.String(ports.AttrBuildID, "b-1")))
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	bridge := telemetry.NewBridge(nil)

	assert.NoError(t, bridge.ForceFlush(context.Background()))
	assert.NoError(t, bridge.Shutdown(context.Background()))
}

func TestTracerProvider_ReportsBuildSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	tp := telemetry.NewTracerProvider(log)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tracer := telemetry.NewOTelTracerFrom(tp, "test")

	log.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		assert.True(t, strings.HasPrefix(msg, "Android build b-1 finished after "), msg)
	})
	_, span := tracer.Start(context.Background(), ports.SpanWait)
	span.SetAttribute(ports.AttrPlatform, domain.PlatformAndroid)
	span.SetAttribute(ports.AttrBuildID, domain.BuildID("b-1"))
	span.End()

	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.True(t, strings.HasPrefix(msg, "iOS build b-2 failed after "), msg)
	})
	_, span = tracer.Start(context.Background(), ports.SpanWait)
	span.SetAttribute(ports.AttrPlatform, domain.PlatformIOS)
	span.SetAttribute(ports.AttrBuildID, domain.BuildID("b-2"))
	span.RecordError(errors.New("signing failed"))
	span.End()
}
