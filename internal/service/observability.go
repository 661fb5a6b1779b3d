package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent captures lightweight execution telemetry for one service
// use case (a search, an export, a stats computation).
type UseCaseEvent struct {
	Name     string
	Duration time.Duration
	Err      error
	Fields   map[string]any
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to the provided
// writer as slog text lines.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 4+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "use_case", attrs...)
}

// observerOrNoop returns the first non-nil observer, defaulting to a no-op.
func observerOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
