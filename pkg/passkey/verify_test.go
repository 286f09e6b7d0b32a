// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package passkey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvnserver/identity/pkg/encoding/base64url"
	"github.com/mvnserver/identity/pkg/types"
)

const (
	testChallenge = "dGVzdC1jaGFsbGVuZ2UtdmFsdWU"
	testOrigin    = "https://media.example.com"
)

func encodeClientData(t *testing.T, ceremonyType, challengeValue, origin string) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"type":      ceremonyType,
		"challenge": challengeValue,
		"origin":    origin,
	})
	require.NoError(t, err)
	return base64url.Encode(raw)
}

func TestVerifyRegistrationInputValidation(t *testing.T) {
	ceremony := testCeremony(t)
	request := &RegistrationRequest{}

	tests := []struct {
		name      string
		request   *RegistrationRequest
		challenge string
		userID    string
		origin    string
		wantErr   error
	}{
		{"nil request", nil, testChallenge, "urn:mvn:user:1", testOrigin, ErrNilRequest},
		{"empty challenge", request, "", "urn:mvn:user:1", testOrigin, ErrChallengeRequired},
		{"empty user id", request, testChallenge, "", testOrigin, ErrUserIDRequired},
		{"empty origin", request, testChallenge, "urn:mvn:user:1", "", ErrOriginRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ceremony.VerifyRegistration(tt.request, tt.challenge, tt.userID, tt.origin)
			require.False(t, result.Success)
			assert.Nil(t, result.Passkey)
			assert.ErrorIs(t, result.Err, tt.wantErr)
		})
	}
}

func TestVerifyRegistrationClientDataChecks(t *testing.T) {
	ceremony := testCeremony(t)

	tests := []struct {
		name       string
		clientData string
		wantErr    error
	}{
		{
			name:       "not base64url",
			clientData: "%%%",
			wantErr:    nil, // wrapped decode error, no sentinel
		},
		{
			name:       "not json",
			clientData: base64url.Encode([]byte("not json")),
			wantErr:    nil,
		},
		{
			name:       "wrong ceremony type",
			clientData: encodeClientData(t, "webauthn.get", testChallenge, testOrigin),
			wantErr:    ErrClientDataType,
		},
		{
			name:       "challenge mismatch",
			clientData: encodeClientData(t, "webauthn.create", "c29tZW90aGVy", testOrigin),
			wantErr:    ErrChallengeMismatch,
		},
		{
			name:       "origin mismatch",
			clientData: encodeClientData(t, "webauthn.create", testChallenge, "https://evil.example.com"),
			wantErr:    ErrOriginMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := &RegistrationRequest{
				Response: AuthenticatorAttestationResponse{ClientDataJSON: tt.clientData},
			}
			result := ceremony.VerifyRegistration(request, testChallenge, "urn:mvn:user:1", testOrigin)
			require.False(t, result.Success)
			require.Error(t, result.Err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, result.Err, tt.wantErr)
			}
		})
	}
}

func TestVerifyRegistrationMalformedAttestation(t *testing.T) {
	ceremony := testCeremony(t)

	request := &RegistrationRequest{
		Response: AuthenticatorAttestationResponse{
			ClientDataJSON:    encodeClientData(t, "webauthn.create", testChallenge, testOrigin),
			AttestationObject: base64url.Encode([]byte("not cbor at all")),
		},
	}
	result := ceremony.VerifyRegistration(request, testChallenge, "urn:mvn:user:1", testOrigin)
	require.False(t, result.Success)
	assert.Error(t, result.Err)
}

func TestVerifyAuthenticationInputValidation(t *testing.T) {
	ceremony := testCeremony(t)
	request := &AuthenticationRequest{}
	stored := &types.Passkey{CredentialID: base64url.Encode([]byte{1, 2, 3})}

	tests := []struct {
		name      string
		request   *AuthenticationRequest
		passkey   *types.Passkey
		challenge string
		origin    string
		wantErr   error
	}{
		{"nil request", nil, stored, testChallenge, testOrigin, ErrNilRequest},
		{"nil passkey", request, nil, testChallenge, testOrigin, ErrNilPasskey},
		{"empty challenge", request, stored, "", testOrigin, ErrChallengeRequired},
		{"empty origin", request, stored, testChallenge, "", ErrOriginRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ceremony.VerifyAuthentication(tt.request, tt.passkey, tt.challenge, tt.origin)
			require.False(t, result.Success)
			assert.Zero(t, result.NewSignCount)
			assert.ErrorIs(t, result.Err, tt.wantErr)
		})
	}
}

func TestVerifyAuthenticationCredentialMismatch(t *testing.T) {
	ceremony := testCeremony(t)

	request := &AuthenticationRequest{
		RawID: base64url.Encode([]byte{9, 9, 9}),
		Response: AuthenticatorAssertionResponse{
			ClientDataJSON: encodeClientData(t, "webauthn.get", testChallenge, testOrigin),
		},
	}
	stored := &types.Passkey{CredentialID: base64url.Encode([]byte{1, 2, 3})}

	result := ceremony.VerifyAuthentication(request, stored, testChallenge, testOrigin)
	require.False(t, result.Success)
	assert.ErrorIs(t, result.Err, ErrCredentialMismatch)
}

func TestVerifyAuthenticationWrongCeremonyType(t *testing.T) {
	ceremony := testCeremony(t)

	request := &AuthenticationRequest{
		Response: AuthenticatorAssertionResponse{
			ClientDataJSON: encodeClientData(t, "webauthn.create", testChallenge, testOrigin),
		},
	}
	stored := &types.Passkey{CredentialID: base64url.Encode([]byte{1, 2, 3})}

	result := ceremony.VerifyAuthentication(request, stored, testChallenge, testOrigin)
	require.False(t, result.Success)
	assert.ErrorIs(t, result.Err, ErrClientDataType)
}

func TestVerifyAuthenticationMalformedAuthData(t *testing.T) {
	ceremony := testCeremony(t)

	request := &AuthenticationRequest{
		Response: AuthenticatorAssertionResponse{
			ClientDataJSON:    encodeClientData(t, "webauthn.get", testChallenge, testOrigin),
			AuthenticatorData: base64url.Encode([]byte{1, 2}),
		},
	}
	stored := &types.Passkey{CredentialID: base64url.Encode([]byte{1, 2, 3})}

	result := ceremony.VerifyAuthentication(request, stored, testChallenge, testOrigin)
	require.False(t, result.Success)
	assert.Error(t, result.Err)
}
