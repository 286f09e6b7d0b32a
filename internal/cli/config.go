// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mvnserver/identity/pkg/passkey"
	"github.com/mvnserver/identity/pkg/token"
)

// loadConfig merges flags, environment variables (MVN_IDENTITY_*) and an
// optional YAML config file into viper, flags taking precedence.
func loadConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".mvn-identity")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("MVN_IDENTITY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; flags and env carry the rest.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

// tokenConfig builds the issuer configuration from the merged settings.
func tokenConfig() token.Config {
	return token.Config{
		Issuer:   viper.GetString("issuer"),
		Audience: viper.GetString("audience"),
	}
}

// passkeyConfig builds the relying party configuration from the merged
// settings.
func passkeyConfig() *passkey.Config {
	return &passkey.Config{
		RPID:          viper.GetString("rp-id"),
		RPDisplayName: viper.GetString("rp-name"),
		RPOrigin:      viper.GetString("rp-origin"),
	}
}
