// Package context moves per-request values between the HTTP layer, the
// authentication middleware and the handlers.
package context

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

type contextKey int

const (
	callerKey contextKey = iota
	authHeaderKey
)

// Manager sets and retrieves the authenticated caller identity and the raw
// authorization header on request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetCallerToContext stores the authenticated caller address.
func (m *Manager) SetCallerToContext(ctx context.Context, caller common.Address) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// GetCallerFromContext retrieves the authenticated caller address.
func (m *Manager) GetCallerFromContext(ctx context.Context) (common.Address, bool) {
	caller, ok := ctx.Value(callerKey).(common.Address)
	if !ok || caller == (common.Address{}) {
		return common.Address{}, false
	}

	return caller, true
}

// SetAuthHeaderToContext stores the raw Authorization header so that the
// authentication middleware can read it past the HTTP boundary.
func (m *Manager) SetAuthHeaderToContext(ctx context.Context, header string) context.Context {
	return context.WithValue(ctx, authHeaderKey, header)
}

// GetAuthHeaderFromContext retrieves the raw Authorization header.
func (m *Manager) GetAuthHeaderFromContext(ctx context.Context) (string, bool) {
	header, ok := ctx.Value(authHeaderKey).(string)
	if !ok || header == "" {
		return "", false
	}

	return header, true
}
