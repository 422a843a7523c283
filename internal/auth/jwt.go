package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/msaemrow/anglers-index-api/pkg/ctxutil"
)

// Token validation failures that callers may want to distinguish.
// An expired token produces a different unauthorized reason than a
// malformed or tampered one.
var (
	ErrTokenMissing = errors.New("token is missing")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// JWTManager issues and validates HS256 bearer tokens with a fixed expiry.
type JWTManager struct {
	secret   []byte
	issuer   string
	tokenTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, tokenTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:   []byte(secret),
		issuer:   issuer,
		tokenTTL: tokenTTL,
	}
}

// userClaims extends standard JWT claims with the user's profile fields
// and admin flag.
type userClaims struct {
	jwt.RegisteredClaims
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
}

// TokenUser is the identity a token is issued for.
type TokenUser struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

// GenerateToken creates a signed HS256 JWT with the user id as subject.
func (m *JWTManager) GenerateToken(u TokenUser) (string, error) {
	now := time.Now()
	claims := userClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and validates a bearer token.
// Returns ErrTokenExpired for an expired token and ErrTokenInvalid for
// anything else that fails verification.
func (m *JWTManager) ValidateToken(tokenString string) (ctxutil.Principal, error) {
	if tokenString == "" {
		return ctxutil.Principal{}, ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &userClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ctxutil.Principal{}, ErrTokenExpired
		}
		return ctxutil.Principal{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*userClaims)
	if !ok || !token.Valid {
		return ctxutil.Principal{}, ErrTokenInvalid
	}

	if claims.Issuer != m.issuer {
		return ctxutil.Principal{}, ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return ctxutil.Principal{}, ErrTokenInvalid
	}

	return ctxutil.Principal{
		UserID:   userID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}, nil
}
