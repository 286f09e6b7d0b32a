// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package passkey

import (
	"errors"
	"fmt"
)

// Sentinel errors for ceremony verification. These surface in results, not
// as returned errors, since callers branch on them as routine control flow.
var (
	// ErrNilRequest is reported when the client response is missing.
	ErrNilRequest = errors.New("request cannot be nil")

	// ErrNilPasskey is reported when no stored credential was supplied.
	ErrNilPasskey = errors.New("stored passkey cannot be nil")

	// ErrChallengeRequired is reported when the expected challenge is empty.
	ErrChallengeRequired = errors.New("expected challenge is required")

	// ErrOriginRequired is reported when the expected origin is empty.
	ErrOriginRequired = errors.New("expected origin is required")

	// ErrUserIDRequired is reported when the expected user id is empty.
	ErrUserIDRequired = errors.New("expected user id is required")

	// ErrClientDataType is reported when the client data declares the
	// wrong ceremony type.
	ErrClientDataType = errors.New("unexpected client data type")

	// ErrChallengeMismatch is reported when the signed challenge differs
	// from the one stored for the ceremony.
	ErrChallengeMismatch = errors.New("challenge does not match expected challenge")

	// ErrOriginMismatch is reported when the client origin differs from
	// the relying party origin.
	ErrOriginMismatch = errors.New("origin does not match expected origin")

	// ErrRPIDHashMismatch is reported when the authenticator data was
	// produced for a different relying party.
	ErrRPIDHashMismatch = errors.New("relying party id hash mismatch")

	// ErrUserNotPresent is reported when the user presence flag is unset.
	ErrUserNotPresent = errors.New("user presence flag not set")

	// ErrUserNotVerified is reported when user verification is required
	// but the flag is unset.
	ErrUserNotVerified = errors.New("user verification required but not performed")

	// ErrNoAttestedCredential is reported when the attestation carries no
	// credential data.
	ErrNoAttestedCredential = errors.New("attestation contains no credential data")

	// ErrCredentialMismatch is reported when the asserted credential id
	// differs from the stored passkey.
	ErrCredentialMismatch = errors.New("credential id does not match stored passkey")

	// ErrInvalidSignature is reported when the assertion signature does
	// not verify against the stored public key.
	ErrInvalidSignature = errors.New("invalid assertion signature")

	// ErrStaleSignCount is reported when the reported counter did not
	// strictly increase. A valid signature with a stale counter indicates
	// a cloned authenticator.
	ErrStaleSignCount = errors.New("sign count did not increase, possible cloned authenticator")
)

// Contract errors returned from option generation.
var (
	// ErrNilConfig is returned when a ceremony is built without config.
	ErrNilConfig = errors.New("config is required")

	// ErrNilStore is returned when a ceremony is built without a
	// challenge store.
	ErrNilStore = errors.New("challenge store is required")

	// ErrUserID is returned when the user record has no id.
	ErrUserID = errors.New("user id is required")

	// ErrUsername is returned when the user record has no username.
	ErrUsername = errors.New("username is required")
)

// reasonf wraps a sentinel error with detail while keeping errors.Is
// matching intact.
func reasonf(err error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
}
