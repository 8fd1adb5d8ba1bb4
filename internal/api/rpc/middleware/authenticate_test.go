package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirpnet/chirper-server/internal/apierrors"
	rpcctx "github.com/chirpnet/chirper-server/internal/api/rpc/context"
	"github.com/chirpnet/chirper-server/internal/mocks"
	"github.com/chirpnet/chirper-server/internal/testutil"
)

var caller = common.HexToAddress("0x1111111111111111111111111111111111111111")

func TestAuthenticate_Wrap_Success(t *testing.T) {
	tokenParser := &mocks.TokenParser{}
	ctxMgr := rpcctx.NewManager()

	tokenParser.On("ParseCallerToken", "valid-token").Return(caller, nil)

	m := NewAuthenticate(tokenParser, ctxMgr, testutil.MakeNoopLogger())

	var gotCaller common.Address
	next := func(ctx context.Context, _ json.RawMessage) (any, error) {
		got, ok := ctxMgr.GetCallerFromContext(ctx)
		require.True(t, ok)
		gotCaller = got
		return "ok", nil
	}

	ctx := ctxMgr.SetAuthHeaderToContext(context.Background(), "Bearer valid-token")

	result, err := m.Wrap(next)(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, caller, gotCaller)
}

func TestAuthenticate_Wrap_MissingHeader(t *testing.T) {
	tokenParser := &mocks.TokenParser{}
	ctxMgr := rpcctx.NewManager()

	m := NewAuthenticate(tokenParser, ctxMgr, testutil.MakeNoopLogger())

	next := func(ctx context.Context, _ json.RawMessage) (any, error) {
		t.Fatal("handler must not run without a token")
		return nil, nil
	}

	_, err := m.Wrap(next)(context.Background(), nil)
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeMissingAuthorization, apiErr.RPCCode)
}

func TestAuthenticate_Wrap_InvalidToken(t *testing.T) {
	tokenParser := &mocks.TokenParser{}
	ctxMgr := rpcctx.NewManager()

	tokenParser.On("ParseCallerToken", "bad-token").
		Return(common.Address{}, errors.New("signature mismatch"))

	m := NewAuthenticate(tokenParser, ctxMgr, testutil.MakeNoopLogger())

	next := func(ctx context.Context, _ json.RawMessage) (any, error) {
		t.Fatal("handler must not run with an invalid token")
		return nil, nil
	}

	ctx := ctxMgr.SetAuthHeaderToContext(context.Background(), "Bearer bad-token")

	_, err := m.Wrap(next)(ctx, nil)
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeInvalidAuthorization, apiErr.RPCCode)
}

func TestAuthenticate_Wrap_ZeroAddress(t *testing.T) {
	tokenParser := &mocks.TokenParser{}
	ctxMgr := rpcctx.NewManager()

	tokenParser.On("ParseCallerToken", "zero-token").Return(common.Address{}, nil)

	m := NewAuthenticate(tokenParser, ctxMgr, testutil.MakeNoopLogger())

	next := func(ctx context.Context, _ json.RawMessage) (any, error) {
		return "ok", nil
	}

	ctx := ctxMgr.SetAuthHeaderToContext(context.Background(), "Bearer zero-token")

	_, err := m.Wrap(next)(ctx, nil)
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.CodeInvalidAuthorization, apiErr.RPCCode)
}

func TestAuthenticate_Wrap_BearerPrefixOptional(t *testing.T) {
	tokenParser := &mocks.TokenParser{}
	ctxMgr := rpcctx.NewManager()

	tokenParser.On("ParseCallerToken", "raw-token").Return(caller, nil)

	m := NewAuthenticate(tokenParser, ctxMgr, testutil.MakeNoopLogger())

	next := func(ctx context.Context, _ json.RawMessage) (any, error) {
		return "ok", nil
	}

	ctx := ctxMgr.SetAuthHeaderToContext(context.Background(), "raw-token")

	_, err := m.Wrap(next)(ctx, nil)
	require.NoError(t, err)
}
