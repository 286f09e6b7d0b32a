// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package challenge implements the single-use challenge ledger backing
// WebAuthn ceremonies.
//
// Every ceremony owns its own Store instance; stores never share state.
// A challenge is consumed exactly once: Validate is the only read path and
// it atomically checks and consumes under a single lock, so two concurrent
// validations of the same id can never both succeed.
package challenge

import (
	"crypto/rand"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvnserver/identity/pkg/encoding/base64url"
	"github.com/mvnserver/identity/pkg/metrics"
)

// DefaultTTL matches the ceremony timeout sent to clients.
const DefaultTTL = 5 * time.Minute

// valueSize is the entropy of a generated challenge value in bytes.
const valueSize = 32

// ErrEmptyValue is returned when Save is called without a challenge value.
var ErrEmptyValue = errors.New("challenge value cannot be empty")

type entry struct {
	value     string
	userID    string
	expiresAt time.Time
	consumed  bool
}

// Store is an in-memory single-use challenge store.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*entry
}

// NewStore creates a store with the default TTL.
func NewStore() *Store {
	return NewStoreWithTTL(DefaultTTL)
}

// NewStoreWithTTL creates a store whose challenges expire after ttl.
func NewStoreWithTTL(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

// NewValue generates a fresh random challenge value, base64url encoded.
func NewValue() (string, error) {
	buf := make([]byte, valueSize)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64url.Encode(buf), nil
}

// Save records a challenge value, optionally bound to a user, and returns
// an opaque challenge id. Expired entries are swept lazily on each call.
func (s *Store) Save(value, boundUserID string) (string, error) {
	if value == "" {
		return "", ErrEmptyValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(time.Now())

	id := uuid.NewString()
	s.entries[id] = &entry{
		value:     value,
		userID:    boundUserID,
		expiresAt: time.Now().Add(s.ttl),
	}
	metrics.ChallengesActive.Inc()

	return id, nil
}

// Validate atomically checks and consumes the challenge with the given id.
// It succeeds at most once per id: a missing, expired or already consumed
// challenge yields ok=false with empty value and user id. On success the
// stored value and bound user id are returned and the entry is marked
// consumed before the lock is released.
func (s *Store) Validate(id string) (value, boundUserID string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, found := s.entries[id]
	if !found || e.consumed || time.Now().After(e.expiresAt) {
		metrics.RecordOperation("challenge", "validate", false)
		return "", "", false
	}

	e.consumed = true
	metrics.ChallengesActive.Dec()
	metrics.RecordOperation("challenge", "validate", true)
	return e.value, e.userID, true
}

// Cleanup removes expired and consumed entries and returns how many were
// reclaimed. Reclamation is a resource concern only; correctness never
// depends on it.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(time.Now())
}

// Count returns the number of stored entries, consumed or not.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) sweepLocked(now time.Time) int {
	removed := 0
	for id, e := range s.entries {
		if e.consumed || now.After(e.expiresAt) {
			if !e.consumed {
				metrics.ChallengesActive.Dec()
			}
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}
