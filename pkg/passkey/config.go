// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package passkey

import (
	"fmt"
	"time"
)

// Config configures the relying party for WebAuthn ceremonies.
type Config struct {
	// RPID is the relying party identifier, the effective domain of the
	// server. Example: "media.example.com"
	RPID string `yaml:"id" json:"id" mapstructure:"id"`

	// RPDisplayName is the human-readable relying party name shown by
	// authenticators.
	RPDisplayName string `yaml:"display_name" json:"display_name" mapstructure:"display_name"`

	// RPOrigin is the web origin clients perform ceremonies from.
	// Example: "https://media.example.com"
	RPOrigin string `yaml:"origin" json:"origin" mapstructure:"origin"`

	// Timeout is how long clients have to complete a ceremony.
	// Default: 5 minutes.
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`

	// UserVerification is the user verification requirement:
	// "required", "preferred" or "discouraged". Default: "preferred".
	UserVerification string `yaml:"user_verification" json:"user_verification" mapstructure:"user_verification"`
}

// SetDefaults sets default values for unset configuration fields.
func (c *Config) SetDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 5 * time.Minute
	}
	if c.UserVerification == "" {
		c.UserVerification = "preferred"
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.RPID == "" {
		return fmt.Errorf("RPID is required")
	}
	if c.RPDisplayName == "" {
		return fmt.Errorf("RPDisplayName is required")
	}
	if c.RPOrigin == "" {
		return fmt.Errorf("RPOrigin is required")
	}

	switch c.UserVerification {
	case "", "required", "preferred", "discouraged":
	default:
		return fmt.Errorf("invalid user verification: %s", c.UserVerification)
	}

	return nil
}
