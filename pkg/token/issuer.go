// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package token issues and validates the media library's JWT access
// tokens.
//
// Each Issuer owns a process-lifetime RSA signing keypair generated at
// construction and never persisted. The public half is published through
// the JWKS endpoint as an RFC 7517 key whose kid is the RFC 7638
// thumbprint.
package token

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mvnserver/identity/pkg/encoding/jwk"
	idjwt "github.com/mvnserver/identity/pkg/encoding/jwt"
	"github.com/mvnserver/identity/pkg/logging"
	"github.com/mvnserver/identity/pkg/metrics"
	"github.com/mvnserver/identity/pkg/types"
)

// Token lifetime and validation constants. Both are fixed by policy, not
// configuration: token expiry must be deterministic given issue time.
const (
	TokenLifetime = 24 * time.Hour
	ClockSkew     = 5 * time.Minute
)

// keyBits is the RSA modulus size of generated signing keys.
const keyBits = 2048

var (
	// ErrIssuerClosed is returned by every operation after Close.
	ErrIssuerClosed = errors.New("token issuer has been disposed")

	// ErrUserID is returned when the user record has no id.
	ErrUserID = errors.New("user id is required")

	// ErrUsername is returned when the user record has no username.
	ErrUsername = errors.New("username is required")
)

// Config configures an Issuer. Zero values fall back to defaults.
type Config struct {
	// Issuer is the iss claim stamped on issued tokens.
	Issuer string `yaml:"issuer" json:"issuer" mapstructure:"issuer"`

	// Audience is the aud claim stamped on issued tokens.
	Audience string `yaml:"audience" json:"audience" mapstructure:"audience"`
}

// SetDefaults fills unset configuration fields.
func (c *Config) SetDefaults() {
	if c.Issuer == "" {
		c.Issuer = "mvn-server"
	}
	if c.Audience == "" {
		c.Audience = "mvn-server"
	}
}

// ValidationParameters is the fixed validation policy handed to the
// authentication middleware at startup.
type ValidationParameters struct {
	ValidateSigningKey bool
	ValidateIssuer     bool
	ValidateAudience   bool
	ValidateLifetime   bool
	ClockSkew          time.Duration
	Issuer             string
	Audience           string
	SigningKey         *rsa.PublicKey
}

// Issuer signs and validates access tokens with a per-instance RSA key.
// Key material is immutable after construction and safe for concurrent
// reads without locking.
type Issuer struct {
	config    Config
	key       *rsa.PrivateKey
	kid       string
	publicJWK *jwk.JWK
	signer    *idjwt.Signer
	verifier  *idjwt.Verifier
	logger    *logging.Logger
	closed    atomic.Bool
}

// NewIssuer generates a fresh RSA signing keypair and returns an issuer
// stamping tokens with the configured issuer and audience claims.
func NewIssuer(config Config, logger *logging.Logger) (*Issuer, error) {
	config.SetDefaults()

	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}

	publicJWK, err := jwk.FromRSAPublicKey(&key.PublicKey)
	if err != nil {
		return nil, err
	}
	kid, err := publicJWK.Thumbprint()
	if err != nil {
		return nil, err
	}
	publicJWK.Kid = kid

	logger.Debug("generated token signing key", "kid", kid, "bits", keyBits)

	return &Issuer{
		config:    config,
		key:       key,
		kid:       kid,
		publicJWK: publicJWK,
		signer:    idjwt.NewSigner(),
		verifier:  idjwt.NewVerifier(),
		logger:    logger,
	}, nil
}

// GenerateToken issues a signed access token for the user. The claims are
// sub (user id), unique_name (username), role, scope (derived from the
// role), iss, aud, iat and exp = iat + 24h.
func (i *Issuer) GenerateToken(user types.User) (string, error) {
	if i.closed.Load() {
		return "", ErrIssuerClosed
	}
	if user.ID == "" {
		return "", ErrUserID
	}
	if user.Username == "" {
		return "", ErrUsername
	}

	role := user.Role.String()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         user.ID,
		"unique_name": user.Username,
		"role":        role,
		"scope":       user.Role.Scopes(),
		"iss":         i.config.Issuer,
		"aud":         i.config.Audience,
		"iat":         now.Unix(),
		"exp":         now.Add(TokenLifetime).Unix(),
	}

	signed, err := i.signer.SignWithKID(i.key, claims, i.kid)
	if err != nil {
		metrics.RecordOperation("token", "generate", false)
		return "", err
	}

	metrics.RecordOperation("token", "generate", true)
	metrics.TokensIssuedTotal.WithLabelValues(role).Inc()
	i.logger.Debug("issued access token", "sub", user.ID, "role", role)
	return signed, nil
}

// ValidationParameters returns the strict validation policy for tokens
// issued by this instance: signing key, issuer, audience and lifetime are
// all validated, with at most five minutes of clock skew.
func (i *Issuer) ValidationParameters() (ValidationParameters, error) {
	if i.closed.Load() {
		return ValidationParameters{}, ErrIssuerClosed
	}
	return ValidationParameters{
		ValidateSigningKey: true,
		ValidateIssuer:     true,
		ValidateAudience:   true,
		ValidateLifetime:   true,
		ClockSkew:          ClockSkew,
		Issuer:             i.config.Issuer,
		Audience:           i.config.Audience,
		SigningKey:         &i.key.PublicKey,
	}, nil
}

// Verify validates a token under this issuer's validation parameters and
// returns the parsed token on success.
func (i *Issuer) Verify(tokenString string) (*jwt.Token, error) {
	if i.closed.Load() {
		return nil, ErrIssuerClosed
	}
	return i.verifier.Verify(tokenString, &i.key.PublicKey, idjwt.VerifyOptions{
		ExpectedIssuer:   i.config.Issuer,
		ExpectedAudience: i.config.Audience,
		Leeway:           ClockSkew,
	})
}

// JWK exports the public signing key. The result is identical across
// calls on the same instance and never contains private parameters.
func (i *Issuer) JWK() (*jwk.JWK, error) {
	if i.closed.Load() {
		return nil, ErrIssuerClosed
	}
	key := *i.publicJWK
	return &key, nil
}

// KeySet wraps the public key in a JWKS document for the .well-known
// endpoint.
func (i *Issuer) KeySet() (*jwk.Set, error) {
	key, err := i.JWK()
	if err != nil {
		return nil, err
	}
	return &jwk.Set{Keys: []*jwk.JWK{key}}, nil
}

// KeyID returns the kid of the signing key.
func (i *Issuer) KeyID() string {
	return i.kid
}

// Close disposes the issuer. Close is idempotent; afterwards every
// operation returns ErrIssuerClosed. An in-flight GenerateToken either
// completes normally or observes the closed state, never partial output.
func (i *Issuer) Close() error {
	i.closed.CompareAndSwap(false, true)
	return nil
}
