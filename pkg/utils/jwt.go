package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the user payload the upstream user service returns on a
// successful password check. It rides inside every token so the gateway can
// re-mint service tokens without calling the user service again.
type Identity struct {
	UserID  int    `json:"user_id,omitempty"`
	Login   string `json:"login"`
	Email   string `json:"email,omitempty"`
	Nivel   int    `json:"nivel"`
	Ativado string `json:"ativado,omitempty"`
}

// Claims represents the claims in a gateway token. The registered ID (jti)
// is what the revocation store blacklists on logout.
type Claims struct {
	Identity Identity `json:"identity"`
	jwt.RegisteredClaims
}

// JWTManager handles JWT token generation and validation
type JWTManager struct {
	secretKey []byte
	expiry    time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{
		secretKey: []byte(secret),
		expiry:    expiry,
	}
}

// GenerateToken generates a new access token for the given identity
func (m *JWTManager) GenerateToken(identity Identity) (string, error) {
	claims := &Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "notafiscal-api",
			Subject:   identity.Login,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// ValidateToken validates an access token and returns the claims
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
