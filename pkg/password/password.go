// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package password implements the media library password policy and the
// bcrypt hashing used for password logins.
//
// Verification is fail-closed: malformed input or hashes yield false,
// never an error or panic, so login handlers can branch on a single bool.
package password

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt cost factor applied to new hashes.
const Cost = 12

// Password length bounds enforced by ValidateStrength.
const (
	MinLength = 8
	MaxLength = 128
)

var (
	// ErrPasswordRequired is returned for empty or whitespace-only passwords.
	ErrPasswordRequired = errors.New("Password is required")

	// ErrPasswordLength is returned when the length is outside [8, 128].
	ErrPasswordLength = errors.New("Password must be between 8 and 128 characters")

	// ErrPasswordUpper is returned when no uppercase letter is present.
	ErrPasswordUpper = errors.New("Password must contain an uppercase letter")

	// ErrPasswordLower is returned when no lowercase letter is present.
	ErrPasswordLower = errors.New("Password must contain a lowercase letter")

	// ErrPasswordDigit is returned when no digit is present.
	ErrPasswordDigit = errors.New("Password must contain a digit")
)

// ValidateStrength checks a candidate password against the policy and
// returns the first violated rule, or nil when the password is acceptable.
func ValidateStrength(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}
	if len(password) < MinLength || len(password) > MaxLength {
		return ErrPasswordLength
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return ErrPasswordUpper
	}
	if !hasLower {
		return ErrPasswordLower
	}
	if !hasDigit {
		return ErrPasswordDigit
	}
	return nil
}

// HashPassword produces a salted bcrypt hash of the password. The salt is
// generated per call, so hashing the same password twice yields different
// outputs. Empty or whitespace-only input is a caller bug and returns an
// error before any hashing work.
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrPasswordRequired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. Empty inputs and
// malformed hashes return false.
func VerifyPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NeedsRehash reports whether a stored hash should be regenerated on the
// next successful login. Anything that is not a current-generation bcrypt
// hash qualifies, which enables lazy migration of legacy hashes.
func NeedsRehash(hash string) bool {
	if hash == "" {
		return true
	}
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(hash, prefix) {
			return false
		}
	}
	return true
}
