package models

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the bearer token issued by the backend on login or register.
//
// The client never verifies the signature (it has no key); it only reads the
// "sub" claim to learn which user the session belongs to.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be attached to Authorization headers and persisted in the local
// session store. UserID is a cached, parsed copy of the subject claim.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// ParseToken builds a Token from its compact serialized form, extracting the
// user id from the unverified "sub" claim.
func ParseToken(signedString string) (Token, error) {
	if signedString == "" {
		return Token{}, errors.New("empty token string")
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(signedString, jwt.MapClaims{})
	if err != nil {
		return Token{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Token{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return Token{}, fmt.Errorf("error extracting subject from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Token{}, fmt.Errorf("error converting token subject to int64: %w", err)
	}

	return Token{SignedString: signedString, UserID: userID}, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
