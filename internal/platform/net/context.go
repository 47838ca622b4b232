// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyProvider ctxKey = "provider"
	keyAccount  ctxKey = "account"
)

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, provider string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if provider != "" {
		ctx = context.WithValue(ctx, keyProvider, provider)
	}
	return ctx
}

// WithAccount annotates context with the authenticated account email
func WithAccount(ctx context.Context, account string) context.Context {
	if account != "" {
		ctx = context.WithValue(ctx, keyAccount, account)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// Provider returns the workspace provider on the context if present
func Provider(ctx context.Context) string {
	if v, ok := ctx.Value(keyProvider).(string); ok {
		return v
	}
	return ""
}

// Account returns the account email on the context if present
func Account(ctx context.Context) string {
	if v, ok := ctx.Value(keyAccount).(string); ok {
		return v
	}
	return ""
}
