// Package handler implements the JSON-RPC method handlers over the domain
// services. Each handler file declares its wire DTOs and exposes its routes;
// the router owns dispatch and middleware.
package handler

import (
	"context"
	"encoding/json"
)

// Func executes one JSON-RPC method with already-extracted raw params.
type Func func(ctx context.Context, params json.RawMessage) (any, error)

// Route binds a method name to its handler. Public routes skip
// authentication entirely: reads bypass payment and authorization.
type Route struct {
	Method string
	Public bool
	Handle Func
}
