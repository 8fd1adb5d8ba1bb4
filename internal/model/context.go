package model

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// ContextManager moves the authenticated caller identity and the raw
// authorization header through request contexts.
type ContextManager interface {
	SetCallerToContext(ctx context.Context, caller common.Address) context.Context
	GetCallerFromContext(ctx context.Context) (common.Address, bool)
	SetAuthHeaderToContext(ctx context.Context, header string) context.Context
	GetAuthHeaderFromContext(ctx context.Context) (string, bool)
}
