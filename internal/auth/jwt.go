// Package auth issues and validates editor bearer tokens.
//
// Tokens are minted by an operator (see the token CLI command) and carry the
// editor's ID as subject plus a role claim. Read routes never need one.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role is the privilege level carried by a token.
type Role string

const (
	// RoleEditor may change rules, lexicon and grammar of any language.
	RoleEditor Role = "editor"
	// RoleAdmin may additionally delete whole languages.
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleEditor || r == RoleAdmin
}

// JWTManager handles JWT generation and validation.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// editorClaims extends standard JWT claims with the editor's role and display name.
type editorClaims struct {
	jwt.RegisteredClaims
	Role Role   `json:"role"`
	Name string `json:"name,omitempty"`
}

// GenerateToken creates a signed HS256 JWT with the editor ID as subject.
func (m *JWTManager) GenerateToken(editorID uuid.UUID, role Role, name string) (string, error) {
	if editorID == uuid.Nil {
		return "", fmt.Errorf("editor id is empty")
	}
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := time.Now()
	claims := editorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   editorID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Role: role,
		Name: name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and validates an editor token.
// Returns the editor ID and role if valid.
func (m *JWTManager) ValidateToken(_ context.Context, tokenString string) (uuid.UUID, string, error) {
	if tokenString == "" {
		return uuid.Nil, "", fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &editorClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*editorClaims)
	if !ok || !token.Valid {
		return uuid.Nil, "", fmt.Errorf("invalid token claims")
	}

	if !claims.Role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("invalid role %q", claims.Role)
	}

	editorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject UUID: %w", err)
	}

	return editorID, string(claims.Role), nil
}
