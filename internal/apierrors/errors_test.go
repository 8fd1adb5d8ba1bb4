package apierrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Messages(t *testing.T) {
	tests := []struct {
		name    string
		err     *APIError
		code    int
		kind    string
		message string
	}{
		{
			name:    "empty username",
			err:     NewErrEmptyUsername(),
			code:    CodeEmptyUsername,
			kind:    "EmptyUsername",
			message: "username is empty",
		},
		{
			name:    "username taken",
			err:     NewErrUsernameTaken("alice"),
			code:    CodeUsernameTaken,
			kind:    "UsernameTaken",
			message: "username is already registered",
		},
		{
			name:    "account exists",
			err:     NewErrAccountExists("0x11"),
			code:    CodeAccountExists,
			kind:    "AccountExists",
			message: "account already exists",
		},
		{
			name:    "no such account",
			err:     NewErrNoSuchAccount(),
			code:    CodeNoSuchAccount,
			kind:    "NoSuchAccount",
			message: "ensure the user exists",
		},
		{
			name:    "insufficient fee",
			err:     NewErrInsufficientFee(),
			code:    CodeInsufficientFee,
			kind:    "InsufficientFee",
			message: "Please submit 0.01 MATIC",
		},
		{
			name:    "invalid tweet id",
			err:     NewErrInvalidTweetID(42),
			code:    CodeInvalidTweetID,
			kind:    "InvalidTweetId",
			message: "Invalid tweet",
		},
		{
			name:    "not owner",
			err:     NewErrNotOwner(),
			code:    CodeNotOwner,
			kind:    "NotOwner",
			message: "You aren't the owner",
		},
		{
			name:    "already deleted",
			err:     NewErrTweetAlreadyDeleted(42),
			code:    CodeAlreadyDeleted,
			kind:    "AlreadyDeleted",
			message: "Tweet is already deleted",
		},
		{
			name:    "missing token",
			err:     NewErrMissingAuthorizationToken(),
			code:    CodeMissingAuthorization,
			kind:    "MissingAuthorizationToken",
			message: "authorization token is missing",
		},
		{
			name:    "invalid token",
			err:     NewErrInvalidAuthorizationToken(),
			code:    CodeInvalidAuthorization,
			kind:    "InvalidAuthorizationToken",
			message: "authorization token is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.RPCCode)
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNewErrInvalidParams(t *testing.T) {
	err := NewErrInvalidParams("value is not a number")
	assert.Equal(t, CodeInvalidParams, err.RPCCode)
	assert.Equal(t, "invalid params: value is not a number", err.Error())
}
