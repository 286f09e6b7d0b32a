// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package passkey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigSetDefaults(t *testing.T) {
	config := &Config{
		RPID:          "media.example.com",
		RPDisplayName: "MVN Media Server",
		RPOrigin:      "https://media.example.com",
	}
	config.SetDefaults()

	assert.Equal(t, 5*time.Minute, config.Timeout)
	assert.Equal(t, "preferred", config.UserVerification)
}

func TestConfigSetDefaultsKeepsExplicit(t *testing.T) {
	config := &Config{
		RPID:             "media.example.com",
		RPDisplayName:    "MVN Media Server",
		RPOrigin:         "https://media.example.com",
		Timeout:          time.Minute,
		UserVerification: "required",
	}
	config.SetDefaults()

	assert.Equal(t, time.Minute, config.Timeout)
	assert.Equal(t, "required", config.UserVerification)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid",
			config: Config{
				RPID:          "media.example.com",
				RPDisplayName: "MVN Media Server",
				RPOrigin:      "https://media.example.com",
			},
			wantErr: false,
		},
		{
			name: "missing rp id",
			config: Config{
				RPDisplayName: "MVN Media Server",
				RPOrigin:      "https://media.example.com",
			},
			wantErr: true,
		},
		{
			name: "missing display name",
			config: Config{
				RPID:     "media.example.com",
				RPOrigin: "https://media.example.com",
			},
			wantErr: true,
		},
		{
			name: "missing origin",
			config: Config{
				RPID:          "media.example.com",
				RPDisplayName: "MVN Media Server",
			},
			wantErr: true,
		},
		{
			name: "invalid user verification",
			config: Config{
				RPID:             "media.example.com",
				RPDisplayName:    "MVN Media Server",
				RPOrigin:         "https://media.example.com",
				UserVerification: "sometimes",
			},
			wantErr: true,
		},
		{
			name: "discouraged user verification",
			config: Config{
				RPID:             "media.example.com",
				RPDisplayName:    "MVN Media Server",
				RPOrigin:         "https://media.example.com",
				UserVerification: "discouraged",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
