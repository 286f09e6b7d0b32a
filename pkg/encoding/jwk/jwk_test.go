// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package jwk

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func TestFromRSAPublicKey(t *testing.T) {
	key := testKey(t)

	jwk, err := FromRSAPublicKey(&key.PublicKey)
	require.NoError(t, err)

	assert.Equal(t, "RSA", jwk.Kty)
	assert.Equal(t, "sig", jwk.Use)
	assert.Equal(t, "RS256", jwk.Alg)
	assert.NotEmpty(t, jwk.N)
	assert.Equal(t, "AQAB", jwk.E)
}

func TestFromRSAPublicKeyNil(t *testing.T) {
	_, err := FromRSAPublicKey(nil)
	assert.Error(t, err)
}

func TestToPublicKeyRoundTrip(t *testing.T) {
	key := testKey(t)

	jwk, err := FromRSAPublicKey(&key.PublicKey)
	require.NoError(t, err)

	pub, err := jwk.ToPublicKey()
	require.NoError(t, err)
	assert.Zero(t, pub.N.Cmp(key.PublicKey.N))
	assert.Equal(t, key.PublicKey.E, pub.E)
}

func TestToPublicKeyErrors(t *testing.T) {
	tests := []struct {
		name string
		jwk  JWK
	}{
		{"wrong key type", JWK{Kty: "EC", N: "AQAB", E: "AQAB"}},
		{"missing modulus", JWK{Kty: "RSA", E: "AQAB"}},
		{"missing exponent", JWK{Kty: "RSA", N: "AQAB"}},
		{"invalid modulus encoding", JWK{Kty: "RSA", N: "!!!", E: "AQAB"}},
		{"invalid exponent encoding", JWK{Kty: "RSA", N: "AQAB", E: "!!!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.jwk.ToPublicKey()
			assert.Error(t, err)
		})
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	key := testKey(t)

	jwk, err := FromRSAPublicKey(&key.PublicKey)
	require.NoError(t, err)
	jwk.Kid = "test-kid"

	data, err := jwk.Marshal()
	require.NoError(t, err)

	parsed, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, jwk, parsed)
}

func TestThumbprintStable(t *testing.T) {
	key := testKey(t)

	jwk, err := FromRSAPublicKey(&key.PublicKey)
	require.NoError(t, err)

	tp1, err := jwk.Thumbprint()
	require.NoError(t, err)
	tp2, err := jwk.Thumbprint()
	require.NoError(t, err)

	assert.NotEmpty(t, tp1)
	assert.Equal(t, tp1, tp2, "thumbprint must be deterministic")
}

func TestThumbprintDistinguishesKeys(t *testing.T) {
	a, err := FromRSAPublicKey(&testKey(t).PublicKey)
	require.NoError(t, err)
	b, err := FromRSAPublicKey(&testKey(t).PublicKey)
	require.NoError(t, err)

	tpA, err := a.Thumbprint()
	require.NoError(t, err)
	tpB, err := b.Thumbprint()
	require.NoError(t, err)

	assert.NotEqual(t, tpA, tpB)
}

func TestThumbprintIgnoresOptionalMembers(t *testing.T) {
	key := testKey(t)

	a, err := FromRSAPublicKey(&key.PublicKey)
	require.NoError(t, err)
	b, err := FromRSAPublicKey(&key.PublicKey)
	require.NoError(t, err)
	b.Kid = "some-kid"
	b.Use = ""

	tpA, err := a.Thumbprint()
	require.NoError(t, err)
	tpB, err := b.Thumbprint()
	require.NoError(t, err)

	// RFC 7638: only kty, n and e participate in the thumbprint.
	assert.Equal(t, tpA, tpB)
}
