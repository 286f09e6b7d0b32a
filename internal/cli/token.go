// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvnserver/identity/pkg/logging"
	"github.com/mvnserver/identity/pkg/token"
	"github.com/mvnserver/identity/pkg/types"
)

var (
	tokenUserID   string
	tokenUsername string
	tokenRole     string
)

// tokenCmd issues an access token with an ephemeral signing key. Useful
// for inspecting claim shapes during development; tokens signed here do
// not validate against a running server's JWKS.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, err := token.NewIssuer(tokenConfig(), logging.NewLogger(debug))
		if err != nil {
			return err
		}
		defer func() { _ = issuer.Close() }()

		signed, err := issuer.GenerateToken(types.User{
			ID:        tokenUserID,
			Username:  tokenUsername,
			Role:      types.ParseRole(tokenRole),
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		fmt.Println(signed)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user", "", "user id (URN)")
	tokenCmd.Flags().StringVar(&tokenUsername, "username", "", "username")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "guest", "role (admin, uploader, user, guest)")
	_ = tokenCmd.MarkFlagRequired("user")
	_ = tokenCmd.MarkFlagRequired("username")
}
