package token

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT claims binding a caller address.
type Claims struct {
	jwt.RegisteredClaims
	Address   string `json:"addr"`
	TokenType string `json:"typ"`
}

// JWT verifies and issues caller identity tokens backed by symmetric HMAC.
// Tokens are normally issued by the deployment harness; issuance lives here
// so tests and tooling can mint them.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: secretKey}
}

const (
	callerTTL  = 24 * time.Hour
	typeCaller = "caller"
)

// GenerateCallerToken creates a token asserting the given caller address.
func (j *JWT) GenerateCallerToken(address common.Address) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(callerTTL)),
		},
		Address:   address.Hex(),
		TokenType: typeCaller,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign caller token: %w", err)
	}

	return tokenString, nil
}

// ParseCallerToken validates the token and extracts the caller address.
func (j *JWT) ParseCallerToken(tokenString string) (common.Address, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to parse caller token: %w", err)
	}
	if !token.Valid {
		return common.Address{}, fmt.Errorf("caller token is invalid")
	}
	if claims.TokenType != typeCaller {
		return common.Address{}, fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}
	if !common.IsHexAddress(claims.Address) {
		return common.Address{}, fmt.Errorf("malformed caller address: %s", claims.Address)
	}

	return common.HexToAddress(claims.Address), nil
}
