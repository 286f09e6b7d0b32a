// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package jwt wraps golang-jwt with the signing and verification policy
// used for media library access tokens: RS256 only, kid headers, and
// strict issuer/audience/lifetime validation.
package jwt

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs access token claims with an RSA private key.
type Signer struct{}

// NewSigner creates a new JWT signer.
func NewSigner() *Signer {
	return &Signer{}
}

// Sign creates an RS256-signed JWT from the given claims.
func (s *Signer) Sign(key *rsa.PrivateKey, claims jwt.Claims) (string, error) {
	if key == nil {
		return "", fmt.Errorf("signing key is nil")
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}

// SignWithKID creates an RS256-signed JWT carrying a kid header so the
// verifier can select the matching key from a published JWKS.
func (s *Signer) SignWithKID(key *rsa.PrivateKey, claims jwt.Claims, kid string) (string, error) {
	if key == nil {
		return "", fmt.Errorf("signing key is nil")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	return token.SignedString(key)
}

// VerifyOptions contains the validation policy applied on top of the
// signature check.
type VerifyOptions struct {
	// ExpectedIssuer rejects tokens whose iss claim differs.
	ExpectedIssuer string

	// ExpectedAudience rejects tokens whose aud claim does not contain it.
	ExpectedAudience string

	// Leeway is the tolerated clock skew for time-based claims.
	Leeway time.Duration
}

// Verifier verifies access tokens.
type Verifier struct{}

// NewVerifier creates a new JWT verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify parses the token, checks the RS256 signature against the public
// key, and enforces the validation options. Expiry is always required.
func (v *Verifier) Verify(tokenString string, publicKey *rsa.PublicKey, opts VerifyOptions) (*jwt.Token, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if opts.ExpectedIssuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.ExpectedIssuer))
	}
	if opts.ExpectedAudience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(opts.ExpectedAudience))
	}
	if opts.Leeway > 0 {
		parserOpts = append(parserOpts, jwt.WithLeeway(opts.Leeway))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return publicKey, nil
	}, parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return token, nil
}

// ExtractKID returns the kid header of a token without verifying the
// signature. An empty string is returned when no kid is present.
func ExtractKID(tokenString string) (string, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	kid, _ := token.Header["kid"].(string)
	return kid, nil
}
