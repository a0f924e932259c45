package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a parsed or freshly signed JWT bearer token.
type Token struct {
	jwt.RegisteredClaims
	Token        *jwt.Token
	SignedString string
	AccountID    string
}
