// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type scopeKey struct{}

// scope is the per-request logging state. It is copied on every change so
// a context never observes a later mutation.
type scope struct {
	logger        *zerolog.Logger
	requestID     string
	correlationID string
	seed          int64
	hasSeed       bool
}

func scopeFrom(ctx context.Context) scope {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok {
		return s
	}
	return scope{}
}

func withScope(ctx context.Context, edit func(*scope)) context.Context {
	s := scopeFrom(ctx)
	edit(&s)
	return context.WithValue(ctx, scopeKey{}, s)
}

// GenerateCorrelationID returns the first 8 characters of a new UUID.
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}

// GenerateRequestID returns a new UUID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithCorrelationID returns a copy of ctx carrying id.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return withScope(ctx, func(s *scope) { s.correlationID = id })
}

// ContextWithNewCorrelationID returns a copy of ctx carrying a fresh correlation ID.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return ContextWithCorrelationID(ctx, GenerateCorrelationID())
}

// CorrelationIDFromContext returns the correlation ID in ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).correlationID
}

// ContextWithRequestID returns a copy of ctx carrying the HTTP request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return withScope(ctx, func(s *scope) { s.requestID = id })
}

// RequestIDFromContext returns the request ID in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

// ContextWithSeed records the dataset seed a request is served from, so
// every line logged through Ctx names it.
func ContextWithSeed(ctx context.Context, seed int64) context.Context {
	return withScope(ctx, func(s *scope) { s.seed, s.hasSeed = seed, true })
}

// ContextWithLogger stores a base logger in ctx.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return withScope(ctx, func(s *scope) { s.logger = &logger })
}

// LoggerFromContext returns the logger stored in ctx, or the global logger.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if l := scopeFrom(ctx).logger; l != nil {
		return *l
	}
	return Logger()
}

// Ctx returns a logger with the request fields from ctx attached.
//
//	logging.Ctx(ctx).Info().Str("endpoint", "kpis").Msg("Computed")
func Ctx(ctx context.Context) *zerolog.Logger {
	l := CtxWith(ctx).Logger()
	return &l
}

// CtxWith returns a logger context builder with the request fields set.
func CtxWith(ctx context.Context) zerolog.Context {
	s := scopeFrom(ctx)
	logCtx := LoggerFromContext(ctx).With()

	if s.correlationID != "" {
		logCtx = logCtx.Str("correlation_id", s.correlationID)
	}
	if s.requestID != "" {
		logCtx = logCtx.Str("request_id", s.requestID)
	}
	if s.hasSeed {
		logCtx = logCtx.Int64("seed", s.seed)
	}
	return logCtx
}

// CtxErr starts an error level message with context fields and err.
func CtxErr(ctx context.Context, err error) *zerolog.Event {
	return Ctx(ctx).Err(err)
}
