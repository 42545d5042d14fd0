package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/searn/hubadmin/internal/domain"
)

const issuer = "hubadmin"

// Claims carries the console principal and the session it belongs to.
type Claims struct {
	SessionID  string      `json:"sid"`
	UserID     string      `json:"user_id"`
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
	MerchantID string      `json:"merchant_id,omitempty"`
	jwt.RegisteredClaims
}

// Principal returns the principal encoded in the claims.
func (c *Claims) Principal() domain.Principal {
	return domain.Principal{
		UserID:     c.UserID,
		Email:      c.Email,
		Role:       domain.ParseRole(string(c.Role)),
		MerchantID: c.MerchantID,
	}
}

// JWTManager manages JWT token creation and validation
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
	now           func() time.Time
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		now:           time.Now,
	}
}

// Generate signs an access token for the principal's session.
func (m *JWTManager) Generate(p domain.Principal, sessionID string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("%w: session id", domain.ErrInvalidInput)
	}
	now := m.now()
	claims := Claims{
		SessionID:  sessionID,
		UserID:     p.UserID,
		Email:      p.Email,
		Role:       p.Role,
		MerchantID: p.Tenant(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify verifies a JWT token and returns the claims
func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
