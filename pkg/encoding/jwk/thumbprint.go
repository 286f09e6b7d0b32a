// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package jwk

import (
	"crypto/rsa"
	"crypto/sha256"
	"fmt"

	"github.com/mvnserver/identity/pkg/encoding/base64url"
)

// Thumbprint computes the SHA-256 JWK thumbprint defined in RFC 7638.
// The issuer uses it as the key id (kid) so the value is stable for a
// given key across processes.
//
// Per RFC 7638 the input is the JSON object holding only the required RSA
// members {"e","kty","n"}, lexicographically ordered, with no whitespace.
func (k *JWK) Thumbprint() (string, error) {
	if k.Kty != "RSA" {
		return "", fmt.Errorf("unsupported key type for thumbprint: %s", k.Kty)
	}
	if k.N == "" || k.E == "" {
		return "", fmt.Errorf("RSA JWK missing required fields for thumbprint")
	}

	canonical := fmt.Sprintf(`{"e":%q,"kty":"RSA","n":%q}`, k.E, k.N)
	sum := sha256.Sum256([]byte(canonical))
	return base64url.Encode(sum[:]), nil
}

// ThumbprintRSA computes the RFC 7638 SHA-256 thumbprint directly from an
// RSA public key.
func ThumbprintRSA(pub *rsa.PublicKey) (string, error) {
	k, err := FromRSAPublicKey(pub)
	if err != nil {
		return "", err
	}
	return k.Thumbprint()
}
