// Package apierrors defines the caller-facing error taxonomy. Every error is
// a precondition violation the caller can correct; none are retryable.
package apierrors

import "fmt"

// JSON-RPC error codes. The -32000..-32099 range is reserved for
// application errors by the JSON-RPC 2.0 spec.
const (
	CodeInvalidParams        = -32602
	CodeInternal             = -32603
	CodeMissingAuthorization = -32001
	CodeInvalidAuthorization = -32002
	CodeNotFound             = -32005
	CodeEmptyUsername        = -32010
	CodeUsernameTaken        = -32011
	CodeAccountExists        = -32012
	CodeNoSuchAccount        = -32013
	CodeInsufficientFee      = -32014
	CodeInvalidTweetID       = -32015
	CodeNotOwner             = -32016
	CodeAlreadyDeleted       = -32017
)

// APIError carries a stable kind, a wire code and a human-readable reason.
type APIError struct {
	RPCCode int
	Kind    string
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// NewErrEmptyUsername reports an account creation with an empty username.
func NewErrEmptyUsername() *APIError {
	return &APIError{RPCCode: CodeEmptyUsername, Kind: "EmptyUsername", Message: "username is empty"}
}

// NewErrUsernameTaken reports a globally duplicate username.
func NewErrUsernameTaken(username string) *APIError {
	return &APIError{RPCCode: CodeUsernameTaken, Kind: "UsernameTaken", Message: "username is already registered"}
}

// NewErrAccountExists reports a second registration by the same identity.
func NewErrAccountExists(owner string) *APIError {
	return &APIError{RPCCode: CodeAccountExists, Kind: "AccountExists", Message: "account already exists"}
}

// NewErrNoSuchAccount reports an edit by an identity without an account.
func NewErrNoSuchAccount() *APIError {
	return &APIError{RPCCode: CodeNoSuchAccount, Kind: "NoSuchAccount", Message: "ensure the user exists"}
}

// NewErrInsufficientFee reports a post attempt below the fixed fee.
func NewErrInsufficientFee() *APIError {
	return &APIError{RPCCode: CodeInsufficientFee, Kind: "InsufficientFee", Message: "Please submit 0.01 MATIC"}
}

// NewErrInvalidTweetID reports an id no tweet was ever created with.
func NewErrInvalidTweetID(id int64) *APIError {
	return &APIError{RPCCode: CodeInvalidTweetID, Kind: "InvalidTweetId", Message: "Invalid tweet"}
}

// NewErrNotOwner reports a privileged call by anyone but the registry owner.
func NewErrNotOwner() *APIError {
	return &APIError{RPCCode: CodeNotOwner, Kind: "NotOwner", Message: "You aren't the owner"}
}

// NewErrTweetAlreadyDeleted reports a repeated deletion of the same tweet.
func NewErrTweetAlreadyDeleted(id int64) *APIError {
	return &APIError{RPCCode: CodeAlreadyDeleted, Kind: "AlreadyDeleted", Message: "Tweet is already deleted"}
}

// NewErrMissingAuthorizationToken reports a mutating call without a token.
func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{RPCCode: CodeMissingAuthorization, Kind: "MissingAuthorizationToken", Message: "authorization token is missing"}
}

// NewErrInvalidAuthorizationToken reports an unparseable or forged token.
func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{RPCCode: CodeInvalidAuthorization, Kind: "InvalidAuthorizationToken", Message: "authorization token is invalid"}
}

// NewErrInvalidParams reports malformed request parameters.
func NewErrInvalidParams(reason string) *APIError {
	return &APIError{RPCCode: CodeInvalidParams, Kind: "InvalidParams", Message: fmt.Sprintf("invalid params: %s", reason)}
}
