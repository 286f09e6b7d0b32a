// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package passkey

import (
	"bytes"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"time"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/protocol/webauthncbor"
	"github.com/go-webauthn/webauthn/protocol/webauthncose"
	"github.com/google/uuid"

	"github.com/mvnserver/identity/pkg/encoding/base64url"
	"github.com/mvnserver/identity/pkg/metrics"
	"github.com/mvnserver/identity/pkg/types"
)

// Client data type values fixed by the WebAuthn spec.
const (
	ceremonyCreate = "webauthn.create"
	ceremonyGet    = "webauthn.get"
)

// VerifyRegistration verifies a credential creation response against the
// challenge and origin expected for this ceremony. On success the result
// carries a new Passkey record, with SignCount zero, for the caller to
// persist. All failures are reported in the result; this method never
// panics on malformed input.
func (c *Ceremony) VerifyRegistration(request *RegistrationRequest, expectedChallenge, expectedUserID, expectedOrigin string) *RegistrationResult {
	result := c.verifyRegistration(request, expectedChallenge, expectedUserID, expectedOrigin)
	metrics.RecordOperation("passkey", "verify_registration", result.Success)
	if !result.Success {
		c.logger.Debug("registration verification failed", "reason", result.Err.Error())
	}
	return result
}

func (c *Ceremony) verifyRegistration(request *RegistrationRequest, expectedChallenge, expectedUserID, expectedOrigin string) *RegistrationResult {
	if request == nil {
		return registrationFailure(ErrNilRequest)
	}
	if expectedChallenge == "" {
		return registrationFailure(ErrChallengeRequired)
	}
	if expectedUserID == "" {
		return registrationFailure(ErrUserIDRequired)
	}
	if expectedOrigin == "" {
		return registrationFailure(ErrOriginRequired)
	}

	if _, err := c.parseClientData(request.Response.ClientDataJSON, ceremonyCreate, expectedChallenge, expectedOrigin); err != nil {
		return registrationFailure(err)
	}

	attBytes, err := base64url.Decode(request.Response.AttestationObject)
	if err != nil {
		return registrationFailure(reasonf(err, "malformed attestation object"))
	}

	var attObj protocol.AttestationObject
	if err := webauthncbor.Unmarshal(attBytes, &attObj); err != nil {
		return registrationFailure(reasonf(err, "failed to parse attestation object"))
	}

	var authData protocol.AuthenticatorData
	if err := authData.Unmarshal(attObj.RawAuthData); err != nil {
		return registrationFailure(reasonf(err, "failed to parse authenticator data"))
	}

	if err := c.checkAuthenticatorData(&authData); err != nil {
		return registrationFailure(err)
	}
	if !authData.Flags.HasAttestedCredentialData() {
		return registrationFailure(ErrNoAttestedCredential)
	}
	if len(authData.AttData.CredentialID) == 0 {
		return registrationFailure(ErrNoAttestedCredential)
	}

	// The key must parse as COSE; the algorithm it declares is the one
	// accepted at authentication time.
	if _, err := webauthncose.ParsePublicKey(authData.AttData.CredentialPublicKey); err != nil {
		return registrationFailure(reasonf(err, "unsupported credential public key"))
	}

	passkey := &types.Passkey{
		ID:           uuid.NewString(),
		UserID:       expectedUserID,
		CredentialID: base64url.Encode(authData.AttData.CredentialID),
		PublicKey:    authData.AttData.CredentialPublicKey,
		SignCount:    0,
		DeviceType:   types.DeviceTypeSingleDevice,
		BackedUp:     authData.Flags.HasBackupState(),
		CreatedAt:    time.Now().UTC(),
	}
	if authData.Flags.HasBackupEligible() {
		passkey.DeviceType = types.DeviceTypeMultiDevice
	}

	return &RegistrationResult{Success: true, Passkey: passkey}
}

// VerifyAuthentication verifies a credential assertion against the stored
// passkey, the expected challenge and the expected origin. Beyond the
// signature check, the reported counter must strictly exceed the stored
// sign count; a stale counter fails the ceremony even when the signature
// is cryptographically valid.
func (c *Ceremony) VerifyAuthentication(request *AuthenticationRequest, storedPasskey *types.Passkey, expectedChallenge, expectedOrigin string) *AuthenticationResult {
	result := c.verifyAuthentication(request, storedPasskey, expectedChallenge, expectedOrigin)
	metrics.RecordOperation("passkey", "verify_authentication", result.Success)
	if !result.Success {
		c.logger.Debug("authentication verification failed", "reason", result.Err.Error())
	}
	return result
}

func (c *Ceremony) verifyAuthentication(request *AuthenticationRequest, storedPasskey *types.Passkey, expectedChallenge, expectedOrigin string) *AuthenticationResult {
	if request == nil {
		return authenticationFailure(ErrNilRequest)
	}
	if storedPasskey == nil {
		return authenticationFailure(ErrNilPasskey)
	}
	if expectedChallenge == "" {
		return authenticationFailure(ErrChallengeRequired)
	}
	if expectedOrigin == "" {
		return authenticationFailure(ErrOriginRequired)
	}

	if request.RawID != "" {
		rawID, err := base64url.Decode(request.RawID)
		if err != nil {
			return authenticationFailure(reasonf(err, "malformed credential id"))
		}
		storedID, err := base64url.Decode(storedPasskey.CredentialID)
		if err != nil || !bytes.Equal(rawID, storedID) {
			return authenticationFailure(ErrCredentialMismatch)
		}
	}

	if _, err := c.parseClientData(request.Response.ClientDataJSON, ceremonyGet, expectedChallenge, expectedOrigin); err != nil {
		return authenticationFailure(err)
	}

	rawAuthData, err := base64url.Decode(request.Response.AuthenticatorData)
	if err != nil {
		return authenticationFailure(reasonf(err, "malformed authenticator data"))
	}
	var authData protocol.AuthenticatorData
	if err := authData.Unmarshal(rawAuthData); err != nil {
		return authenticationFailure(reasonf(err, "failed to parse authenticator data"))
	}

	if err := c.checkAuthenticatorData(&authData); err != nil {
		return authenticationFailure(err)
	}

	signature, err := base64url.Decode(request.Response.Signature)
	if err != nil {
		return authenticationFailure(reasonf(err, "malformed signature"))
	}
	rawClientData, err := base64url.Decode(request.Response.ClientDataJSON)
	if err != nil {
		return authenticationFailure(reasonf(err, "malformed client data"))
	}

	key, err := webauthncose.ParsePublicKey(storedPasskey.PublicKey)
	if err != nil {
		return authenticationFailure(reasonf(err, "unsupported credential public key"))
	}

	// The authenticator signs authenticatorData || SHA-256(clientDataJSON).
	clientDataHash := sha256.Sum256(rawClientData)
	signedData := append(rawAuthData, clientDataHash[:]...)

	valid, err := webauthncose.VerifySignature(key, signedData, signature)
	if err != nil {
		return authenticationFailure(reasonf(err, "signature verification error"))
	}
	if !valid {
		return authenticationFailure(ErrInvalidSignature)
	}

	// Clone detection: a counter that fails to advance means the private
	// key may exist in more than one place.
	if authData.Counter <= storedPasskey.SignCount {
		return authenticationFailure(reasonf(ErrStaleSignCount,
			"reported %d, stored %d", authData.Counter, storedPasskey.SignCount))
	}

	return &AuthenticationResult{Success: true, NewSignCount: authData.Counter}
}

// parseClientData decodes clientDataJSON and checks its type, challenge
// and origin against the ceremony expectations.
func (c *Ceremony) parseClientData(encoded, expectedType, expectedChallenge, expectedOrigin string) (*clientData, error) {
	raw, err := base64url.Decode(encoded)
	if err != nil {
		return nil, reasonf(err, "malformed client data")
	}
	var cd clientData
	if err := json.Unmarshal(raw, &cd); err != nil {
		return nil, reasonf(err, "failed to parse client data")
	}

	if cd.Type != expectedType {
		return nil, reasonf(ErrClientDataType, "expected %q, got %q", expectedType, cd.Type)
	}
	if subtle.ConstantTimeCompare([]byte(cd.Challenge), []byte(expectedChallenge)) != 1 {
		return nil, ErrChallengeMismatch
	}
	if cd.Origin != expectedOrigin {
		return nil, reasonf(ErrOriginMismatch, "got %q", cd.Origin)
	}

	return &cd, nil
}

// checkAuthenticatorData validates the RP-id hash and the presence and
// verification flags shared by both ceremonies.
func (c *Ceremony) checkAuthenticatorData(authData *protocol.AuthenticatorData) error {
	rpIDHash := sha256.Sum256([]byte(c.config.RPID))
	if subtle.ConstantTimeCompare(authData.RPIDHash, rpIDHash[:]) != 1 {
		return ErrRPIDHashMismatch
	}
	if !authData.Flags.UserPresent() {
		return ErrUserNotPresent
	}
	if c.config.UserVerification == "required" && !authData.Flags.UserVerified() {
		return ErrUserNotVerified
	}
	return nil
}
