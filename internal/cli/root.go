// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

// Package cli implements the mvn-identity developer command line. It is a
// thin operational wrapper over the identity core for generating tokens,
// inspecting the JWKS and exercising the password policy; the core
// library itself performs no I/O.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "identity",
	Short: "mvn-identity CLI - media library identity core utilities",
	Long: `mvn-identity CLI provides developer and operations utilities for the
identity core of the MVN media library server:

  token            issue an access token for a user
  jwks             print the published JSON Web Key Set
  password         hash, check and validate passwords against the policy
  passkey-options  print WebAuthn registration options for a user`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.mvn-identity.yaml)")
	rootCmd.PersistentFlags().String("issuer", "", "token issuer claim")
	rootCmd.PersistentFlags().String("audience", "", "token audience claim")
	rootCmd.PersistentFlags().String("rp-id", "", "relying party id (domain)")
	rootCmd.PersistentFlags().String("rp-name", "", "relying party display name")
	rootCmd.PersistentFlags().String("rp-origin", "", "relying party web origin")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(jwksCmd)
	rootCmd.AddCommand(passwordCmd)
}
