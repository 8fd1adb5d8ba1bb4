package handler

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chirpnet/chirper-server/internal/apierrors"
)

func decodeParams(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return apierrors.NewErrInvalidParams("params are required")
	}
	if err := json.Unmarshal(params, v); err != nil {
		return apierrors.NewErrInvalidParams(err.Error())
	}
	return nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, apierrors.NewErrInvalidParams(fmt.Sprintf("malformed address %q", s))
	}
	return common.HexToAddress(s), nil
}

// parseWei parses an attached value given as a decimal wei string.
func parseWei(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	value, ok := new(big.Int).SetString(s, 10)
	if !ok || value.Sign() < 0 {
		return nil, apierrors.NewErrInvalidParams(fmt.Sprintf("malformed wei value %q", s))
	}
	return value, nil
}
