// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every session token.
//
// Besides the standard registered claims (iss, iat, exp) it holds the
// identifier and email of the user the token was issued for.
type TokenClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be returned to the client.
// UserID and Email are copies of the custom claims, filled after
// generation or a successful parse.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "userId" claim.
	UserID int64 `json:"-"`

	// Email is the owner email taken from the "email" claim.
	Email string `json:"-"`
}

// Identity returns the authenticated caller described by the token.
func (t *Token) Identity() Identity {
	return Identity{UserID: t.UserID, Email: t.Email}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
