package middleware

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chirpnet/chirper-server/internal/api/rpc/handler"
	"github.com/chirpnet/chirper-server/internal/apierrors"
	"github.com/chirpnet/chirper-server/internal/logger"
	"github.com/chirpnet/chirper-server/internal/model"
)

// TokenParser resolves caller addresses from bearer tokens.
type TokenParser interface {
	ParseCallerToken(tokenString string) (common.Address, error)
}

// Authenticate validates bearer tokens and injects the caller address into
// the request context.
type Authenticate struct {
	tokenParser    TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenParser: tokenParser, contextManager: contextManager, logger: logger}
}

// Wrap guards a handler with caller authentication. The Authorization header
// is read from the context where the HTTP layer stored it.
func (m *Authenticate) Wrap(next handler.Func) handler.Func {
	return func(ctx context.Context, params json.RawMessage) (any, error) {
		authCtx, err := m.AuthFunc(ctx)
		if err != nil {
			return nil, err
		}
		return next(authCtx, params)
	}
}

// AuthFunc parses the Authorization header, validates the token and returns
// a context carrying the caller address.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if header, ok := m.contextManager.GetAuthHeaderFromContext(ctx); ok {
		tokenString = strings.TrimPrefix(header, "Bearer ")
	}

	caller, err := m.authenticateCaller(tokenString)
	if err != nil {
		return nil, err
	}

	return m.contextManager.SetCallerToContext(ctx, caller), nil
}

func (m *Authenticate) authenticateCaller(tokenString string) (common.Address, error) {
	if tokenString == "" {
		return common.Address{}, apierrors.NewErrMissingAuthorizationToken()
	}

	caller, err := m.tokenParser.ParseCallerToken(tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: token rejected",
			"error", err.Error())
		return common.Address{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	if caller == (common.Address{}) {
		return common.Address{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	return caller, nil
}
