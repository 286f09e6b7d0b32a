// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package passkey implements the WebAuthn registration and authentication
// ceremonies for the media library server.
//
// A Ceremony is constructed with relying party configuration and its own
// challenge.Store instance, which acts as the anti-replay ledger: option
// generation stores a fresh single-use challenge, and the HTTP layer
// redeems it exactly once before calling the matching verify operation.
//
// Verification failures are expected control flow for login endpoints, so
// VerifyRegistration and VerifyAuthentication report them as structured
// results rather than errors. COSE key parsing and signature verification
// are delegated to the go-webauthn protocol packages; any algorithm the
// stored key declares is accepted, not just the ones advertised during
// registration.
package passkey
