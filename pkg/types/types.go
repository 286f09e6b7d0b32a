// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package types defines the value objects exchanged between the identity
// core and its collaborators.
//
// The identity core owns no durable storage. User and Passkey records are
// persisted by an external repository and passed to this module by value.
package types

import "time"

// User is a media library account as stored by the external user repository.
type User struct {
	// ID is the user's URN, e.g. "urn:mvn:user:1".
	ID string `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password. Empty when
	// the account is passkey-only.
	PasswordHash string `json:"-"`

	// Role determines the scopes granted on token issuance.
	Role Role `json:"role"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// PasswordLoginDisabled is set when the account may only authenticate
	// with a passkey.
	PasswordLoginDisabled bool `json:"password_login_disabled,omitempty"`
}

// Passkey is a registered WebAuthn credential.
type Passkey struct {
	// ID is the record identifier assigned by the credential repository.
	ID string `json:"id"`

	// UserID is the URN of the owning user.
	UserID string `json:"user_id"`

	// CredentialID is the authenticator-assigned credential id, base64url
	// encoded without padding.
	CredentialID string `json:"credential_id"`

	// PublicKey is the credential public key in COSE format.
	PublicKey []byte `json:"public_key"`

	// SignCount is the authenticator's signature counter. It must strictly
	// increase across successful authentications; a stale value indicates
	// a cloned authenticator.
	SignCount uint32 `json:"sign_count"`

	// Name is a user-chosen label for the credential.
	Name string `json:"name,omitempty"`

	// DeviceType is "multi-device" for synced passkeys or "single-device"
	// for hardware-bound credentials.
	DeviceType string `json:"device_type,omitempty"`

	// BackedUp reports whether the credential is currently backed up.
	BackedUp bool `json:"backed_up"`

	// CreatedAt is when the credential was registered.
	CreatedAt time.Time `json:"created_at"`

	// LastUsedAt is when the credential last completed an authentication.
	LastUsedAt time.Time `json:"last_used_at,omitempty"`
}

// Passkey device types.
const (
	DeviceTypeMultiDevice  = "multi-device"
	DeviceTypeSingleDevice = "single-device"
)
