package handler

import (
	"errors"

	"github.com/chirpnet/chirper-server/internal/apierrors"
	"github.com/chirpnet/chirper-server/internal/model"
)

// MapError translates a handler error into a JSON-RPC error code and
// message. Typed API errors pass through with their own code; anything
// unexpected is reported as an opaque internal error.
func MapError(err error) (int, string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.RPCCode, apiErr.Message
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return apierrors.CodeNotFound, "not found"
	default:
		return apierrors.CodeInternal, "internal server error"
	}
}
