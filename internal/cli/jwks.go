// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvnserver/identity/pkg/logging"
	"github.com/mvnserver/identity/pkg/token"
)

// jwksCmd prints the JWKS document for a freshly generated signing key,
// matching the shape served at /.well-known/jwks.json.
var jwksCmd = &cobra.Command{
	Use:   "jwks",
	Short: "Print a JSON Web Key Set for a fresh signing key",
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, err := token.NewIssuer(tokenConfig(), logging.NewLogger(debug))
		if err != nil {
			return err
		}
		defer func() { _ = issuer.Close() }()

		set, err := issuer.KeySet()
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}
