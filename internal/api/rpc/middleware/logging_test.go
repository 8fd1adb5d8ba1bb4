package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirpnet/chirper-server/internal/testutil"
)

func TestLogging_Wrap_PassesThroughResult(t *testing.T) {
	m := NewLogging(testutil.MakeNoopLogger())

	next := func(ctx context.Context, params json.RawMessage) (any, error) {
		assert.Equal(t, json.RawMessage(`{"a":1}`), params)
		return 42, nil
	}

	result, err := m.Wrap("tweet.get", next)(context.Background(), json.RawMessage(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestLogging_Wrap_PassesThroughError(t *testing.T) {
	m := NewLogging(testutil.MakeNoopLogger())

	boom := errors.New("boom")
	next := func(ctx context.Context, _ json.RawMessage) (any, error) {
		return nil, boom
	}

	_, err := m.Wrap("tweet.add", next)(context.Background(), nil)
	require.ErrorIs(t, err, boom)
}
