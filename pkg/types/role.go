// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package types

import "strings"

// Role is a media library account role. The set is closed; anything that
// does not parse to a known role is treated as RoleGuest.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleUploader Role = "uploader"
	RoleUser     Role = "user"
	RoleGuest    Role = "guest"
)

// OAuth-style scopes granted to issued tokens.
const (
	ScopeRead        = "read"
	ScopeSocialWrite = "social:write"
	ScopeIngest      = "ingest"
	ScopeAdmin       = "admin"
)

// ParseRole parses a role name case-insensitively. Unknown or empty input
// yields RoleGuest so an unrecognized role can never gain privileges.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleUploader:
		return RoleUploader
	case RoleUser:
		return RoleUser
	default:
		return RoleGuest
	}
}

// Scopes returns the scopes granted to the role. The mapping is exhaustive
// over the closed role set; unknown roles fall back to guest scopes.
func (r Role) Scopes() []string {
	switch ParseRole(string(r)) {
	case RoleAdmin:
		return []string{ScopeRead, ScopeSocialWrite, ScopeIngest, ScopeAdmin}
	case RoleUploader:
		return []string{ScopeRead, ScopeSocialWrite, ScopeIngest}
	case RoleUser:
		return []string{ScopeRead, ScopeSocialWrite}
	default:
		return []string{ScopeRead}
	}
}

// String returns the canonical lowercase role name.
func (r Role) String() string {
	return string(ParseRole(string(r)))
}
