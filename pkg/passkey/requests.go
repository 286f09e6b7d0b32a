// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package passkey

import (
	"github.com/mvnserver/identity/pkg/types"
)

// RegistrationRequest is the credential creation response sent by the
// browser, with binary fields base64url encoded as on the wire.
type RegistrationRequest struct {
	ID       string                           `json:"id"`
	RawID    string                           `json:"rawId"`
	Type     string                           `json:"type"`
	Response AuthenticatorAttestationResponse `json:"response"`
}

// AuthenticatorAttestationResponse carries the attestation produced
// during registration.
type AuthenticatorAttestationResponse struct {
	ClientDataJSON    string `json:"clientDataJSON"`
	AttestationObject string `json:"attestationObject"`
}

// AuthenticationRequest is the credential assertion response sent by the
// browser during login.
type AuthenticationRequest struct {
	ID       string                         `json:"id"`
	RawID    string                         `json:"rawId"`
	Type     string                         `json:"type"`
	Response AuthenticatorAssertionResponse `json:"response"`
}

// AuthenticatorAssertionResponse carries the signed assertion.
type AuthenticatorAssertionResponse struct {
	ClientDataJSON    string `json:"clientDataJSON"`
	AuthenticatorData string `json:"authenticatorData"`
	Signature         string `json:"signature"`
	UserHandle        string `json:"userHandle,omitempty"`
}

// clientData is the parsed clientDataJSON payload.
type clientData struct {
	Type        string `json:"type"`
	Challenge   string `json:"challenge"`
	Origin      string `json:"origin"`
	CrossOrigin bool   `json:"crossOrigin,omitempty"`
}

// RegistrationResult is the outcome of VerifyRegistration. Err carries the
// failure reason when Success is false; Passkey is the new credential
// record to persist when Success is true.
type RegistrationResult struct {
	Success bool
	Err     error
	Passkey *types.Passkey
}

// AuthenticationResult is the outcome of VerifyAuthentication. On success
// NewSignCount is the counter value the caller must persist on the stored
// passkey.
type AuthenticationResult struct {
	Success      bool
	Err          error
	NewSignCount uint32
}

func registrationFailure(err error) *RegistrationResult {
	return &RegistrationResult{Err: err}
}

func authenticationFailure(err error) *AuthenticationResult {
	return &AuthenticationResult{Err: err}
}
