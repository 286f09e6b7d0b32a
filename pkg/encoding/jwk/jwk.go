// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package jwk provides the RSA subset of RFC 7517 JSON Web Keys needed to
// publish the token signing key through the .well-known JWKS endpoint.
package jwk

import (
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/mvnserver/identity/pkg/encoding/base64url"
)

// JWK is an RSA public signing key in JSON Web Key form. Private key
// parameters are never represented.
type JWK struct {
	Kty string `json:"kty"`           // Key Type, always "RSA"
	Use string `json:"use,omitempty"` // Public Key Use, "sig"
	Alg string `json:"alg,omitempty"` // Algorithm, "RS256"
	Kid string `json:"kid,omitempty"` // Key ID

	N string `json:"n"` // Modulus (base64url)
	E string `json:"e"` // Exponent (base64url)
}

// Set is a JSON Web Key Set as served by a .well-known/jwks.json endpoint.
type Set struct {
	Keys []*JWK `json:"keys"`
}

// FromRSAPublicKey converts an RSA public key to its JWK representation
// with use "sig" and algorithm "RS256".
func FromRSAPublicKey(pub *rsa.PublicKey) (*JWK, error) {
	if pub == nil || pub.N == nil {
		return nil, fmt.Errorf("rsa public key is nil")
	}
	return &JWK{
		Kty: "RSA",
		Use: "sig",
		Alg: "RS256",
		N:   base64url.Encode(pub.N.Bytes()),
		E:   base64url.Encode(big.NewInt(int64(pub.E)).Bytes()),
	}, nil
}

// ToPublicKey converts the JWK back to an RSA public key.
func (k *JWK) ToPublicKey() (*rsa.PublicKey, error) {
	if k.Kty != "RSA" {
		return nil, fmt.Errorf("unsupported key type: %s", k.Kty)
	}
	if k.N == "" || k.E == "" {
		return nil, fmt.Errorf("RSA JWK missing required field")
	}

	nBytes, err := base64url.Decode(k.N)
	if err != nil {
		return nil, fmt.Errorf("failed to decode RSA modulus: %w", err)
	}
	eBytes, err := base64url.Decode(k.E)
	if err != nil {
		return nil, fmt.Errorf("failed to decode RSA exponent: %w", err)
	}

	e := new(big.Int).SetBytes(eBytes)
	if !e.IsInt64() {
		return nil, fmt.Errorf("RSA exponent too large")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(e.Int64()),
	}, nil
}

// Marshal returns the JSON encoding of the JWK.
func (k *JWK) Marshal() ([]byte, error) {
	return json.Marshal(k)
}

// Marshal returns the JSON encoding of the key set.
func (s *Set) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// Unmarshal parses a JSON-encoded JWK.
func Unmarshal(data []byte) (*JWK, error) {
	var k JWK
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JWK: %w", err)
	}
	return &k, nil
}
