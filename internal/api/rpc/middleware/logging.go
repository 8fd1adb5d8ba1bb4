package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chirpnet/chirper-server/internal/api/rpc/handler"
	"github.com/chirpnet/chirper-server/internal/logger"
)

// Logging wraps method handlers and logs each request and its result.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Wrap logs method name, duration and outcome for each request.
func (l *Logging) Wrap(method string, next handler.Func) handler.Func {
	return func(ctx context.Context, params json.RawMessage) (any, error) {
		start := time.Now()

		l.logger.Info("RPC request started",
			"method", method,
			"start_time", start.Format(time.RFC3339))

		result, err := next(ctx, params)

		duration := time.Since(start)

		l.logger.Info("RPC request completed",
			"method", method,
			"duration_ms", duration.Milliseconds(),
			"success", err == nil)

		if err != nil {
			l.logger.Error("RPC request failed",
				"method", method,
				"error", err.Error())
		}

		return result, err
	}
}
