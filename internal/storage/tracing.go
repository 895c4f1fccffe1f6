package storage

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("storefront-storage")

// TracedStore wraps a Store with tracing spans per operation.
type TracedStore struct {
	inner Store
}

// NewTracedStore creates a store decorator that records a span per operation.
func NewTracedStore(inner Store) *TracedStore {
	return &TracedStore{inner: inner}
}

func (s *TracedStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, span := tracer.Start(ctx, "storage.Read",
		trace.WithAttributes(attribute.String("storage.key", key)),
	)
	defer span.End()

	data, ok, err := s.inner.Read(ctx, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, false, err
	}

	span.SetAttributes(
		attribute.Bool("storage.hit", ok),
		attribute.Int("storage.bytes", len(data)),
	)
	return data, ok, nil
}

func (s *TracedStore) Write(ctx context.Context, key string, data []byte) error {
	ctx, span := tracer.Start(ctx, "storage.Write",
		trace.WithAttributes(
			attribute.String("storage.key", key),
			attribute.Int("storage.bytes", len(data)),
		),
	)
	defer span.End()

	if err := s.inner.Write(ctx, key, data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s *TracedStore) Delete(ctx context.Context, key string) error {
	ctx, span := tracer.Start(ctx, "storage.Delete",
		trace.WithAttributes(attribute.String("storage.key", key)),
	)
	defer span.End()

	if err := s.inner.Delete(ctx, key); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
