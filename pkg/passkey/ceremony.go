// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package passkey

import (
	"time"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/protocol/webauthncose"

	"github.com/mvnserver/identity/pkg/challenge"
	"github.com/mvnserver/identity/pkg/encoding/base64url"
	"github.com/mvnserver/identity/pkg/logging"
	"github.com/mvnserver/identity/pkg/metrics"
	"github.com/mvnserver/identity/pkg/types"
)

// Ceremony drives WebAuthn registration and authentication for one
// relying party. Each ceremony owns its challenge store; nothing is shared
// across instances.
type Ceremony struct {
	config     *Config
	challenges *challenge.Store
	logger     *logging.Logger
}

// NewCeremony creates a ceremony for the given relying party with a
// dedicated challenge store.
func NewCeremony(config *Config, store *challenge.Store, logger *logging.Logger) (*Ceremony, error) {
	if config == nil {
		return nil, ErrNilConfig
	}
	if store == nil {
		return nil, ErrNilStore
	}

	config.SetDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Ceremony{
		config:     config,
		challenges: store,
		logger:     logger,
	}, nil
}

// Config returns the ceremony configuration.
func (c *Ceremony) Config() *Config {
	return c.config
}

// Challenges returns the ceremony's challenge store so the HTTP layer can
// redeem challenge handles during verification.
func (c *Ceremony) Challenges() *challenge.Store {
	return c.challenges
}

// GenerateRegistrationOptions builds credential creation options for the
// user and stores a fresh challenge bound to the user's id. The returned
// challenge id is the handle the client must present when finishing the
// ceremony. Credentials already registered by the user are excluded so an
// authenticator cannot be enrolled twice.
func (c *Ceremony) GenerateRegistrationOptions(user types.User, existingPasskeys []types.Passkey) (*protocol.PublicKeyCredentialCreationOptions, string, error) {
	if user.ID == "" {
		return nil, "", ErrUserID
	}
	if user.Username == "" {
		return nil, "", ErrUsername
	}

	value, err := challenge.NewValue()
	if err != nil {
		return nil, "", err
	}
	challengeID, err := c.challenges.Save(value, user.ID)
	if err != nil {
		return nil, "", err
	}
	rawChallenge, err := base64url.Decode(value)
	if err != nil {
		return nil, "", err
	}

	excludeList := make([]protocol.CredentialDescriptor, 0, len(existingPasskeys))
	for _, pk := range existingPasskeys {
		credID, err := base64url.Decode(pk.CredentialID)
		if err != nil {
			return nil, "", reasonf(err, "invalid stored credential id %q", pk.CredentialID)
		}
		excludeList = append(excludeList, protocol.CredentialDescriptor{
			Type:         protocol.PublicKeyCredentialType,
			CredentialID: credID,
		})
	}

	options := &protocol.PublicKeyCredentialCreationOptions{
		RelyingParty: protocol.RelyingPartyEntity{
			CredentialEntity: protocol.CredentialEntity{Name: c.config.RPDisplayName},
			ID:               c.config.RPID,
		},
		User: protocol.UserEntity{
			CredentialEntity: protocol.CredentialEntity{Name: user.Username},
			DisplayName:      user.Username,
			ID:               protocol.URLEncodedBase64(user.ID),
		},
		Challenge: rawChallenge,
		Parameters: []protocol.CredentialParameter{
			{Type: protocol.PublicKeyCredentialType, Algorithm: webauthncose.AlgES256},
			{Type: protocol.PublicKeyCredentialType, Algorithm: webauthncose.AlgRS256},
		},
		Timeout:     int(c.config.Timeout / time.Millisecond),
		Attestation: protocol.PreferNoAttestation,
		AuthenticatorSelection: protocol.AuthenticatorSelection{
			ResidentKey:      protocol.ResidentKeyRequirementPreferred,
			UserVerification: c.userVerification(),
		},
	}
	if len(excludeList) > 0 {
		options.CredentialExcludeList = excludeList
	}

	metrics.RecordOperation("passkey", "registration_options", true)
	c.logger.Debug("generated registration options",
		"user", user.ID, "challenge_id", challengeID, "excluded", len(excludeList))
	return options, challengeID, nil
}

// GenerateAuthenticationOptions builds credential request options with a
// fresh unbound challenge. When allowedPasskeys is empty the credential
// list is omitted, which selects the discoverable-credential flow.
func (c *Ceremony) GenerateAuthenticationOptions(allowedPasskeys []types.Passkey) (*protocol.PublicKeyCredentialRequestOptions, string, error) {
	value, err := challenge.NewValue()
	if err != nil {
		return nil, "", err
	}
	challengeID, err := c.challenges.Save(value, "")
	if err != nil {
		return nil, "", err
	}
	rawChallenge, err := base64url.Decode(value)
	if err != nil {
		return nil, "", err
	}

	options := &protocol.PublicKeyCredentialRequestOptions{
		Challenge:        rawChallenge,
		Timeout:          int(c.config.Timeout / time.Millisecond),
		RelyingPartyID:   c.config.RPID,
		UserVerification: c.userVerification(),
	}

	if len(allowedPasskeys) > 0 {
		allowed := make([]protocol.CredentialDescriptor, 0, len(allowedPasskeys))
		for _, pk := range allowedPasskeys {
			credID, err := base64url.Decode(pk.CredentialID)
			if err != nil {
				return nil, "", reasonf(err, "invalid stored credential id %q", pk.CredentialID)
			}
			allowed = append(allowed, protocol.CredentialDescriptor{
				Type:         protocol.PublicKeyCredentialType,
				CredentialID: credID,
			})
		}
		options.AllowedCredentials = allowed
	}

	metrics.RecordOperation("passkey", "authentication_options", true)
	c.logger.Debug("generated authentication options",
		"challenge_id", challengeID, "allowed", len(allowedPasskeys))
	return options, challengeID, nil
}

func (c *Ceremony) userVerification() protocol.UserVerificationRequirement {
	switch c.config.UserVerification {
	case "required":
		return protocol.VerificationRequired
	case "discouraged":
		return protocol.VerificationDiscouraged
	default:
		return protocol.VerificationPreferred
	}
}
