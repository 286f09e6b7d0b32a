// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package base64url implements the unpadded base64url encoding used
// throughout the WebAuthn wire format (RFC 4648 section 5).
package base64url

import (
	"encoding/base64"
	"strings"
)

// Encode encodes b without padding. Empty input encodes to an empty string.
func Encode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode decodes an unpadded base64url string. Padded input is tolerated
// since some clients include it despite the WebAuthn spec.
func Decode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
