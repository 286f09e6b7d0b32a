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
	"time"

	"github.com/spf13/cobra"

	"github.com/mvnserver/identity/pkg/challenge"
	"github.com/mvnserver/identity/pkg/logging"
	"github.com/mvnserver/identity/pkg/passkey"
	"github.com/mvnserver/identity/pkg/types"
)

var (
	passkeyUserID   string
	passkeyUsername string
)

// passkeyCmd prints the registration options a client would receive, for
// inspecting the ceremony wire shapes during development.
var passkeyCmd = &cobra.Command{
	Use:   "passkey-options",
	Short: "Print WebAuthn registration options for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ceremony, err := passkey.NewCeremony(passkeyConfig(), challenge.NewStore(), logging.NewLogger(debug))
		if err != nil {
			return err
		}

		options, challengeID, err := ceremony.GenerateRegistrationOptions(types.User{
			ID:        passkeyUserID,
			Username:  passkeyUsername,
			CreatedAt: time.Now().UTC(),
		}, nil)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(options, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		fmt.Printf("challenge id: %s\n", challengeID)
		return nil
	},
}

func init() {
	passkeyCmd.Flags().StringVar(&passkeyUserID, "user", "", "user id (URN)")
	passkeyCmd.Flags().StringVar(&passkeyUsername, "username", "", "username")
	_ = passkeyCmd.MarkFlagRequired("user")
	_ = passkeyCmd.MarkFlagRequired("username")
	rootCmd.AddCommand(passkeyCmd)
}
