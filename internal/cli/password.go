// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvnserver/identity/pkg/password"
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Password policy and hashing utilities",
}

var passwordHashCmd = &cobra.Command{
	Use:   "hash <password>",
	Short: "Validate a password against the policy and print its bcrypt hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := password.ValidateStrength(args[0]); err != nil {
			return err
		}
		hash, err := password.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}

var passwordCheckCmd = &cobra.Command{
	Use:   "check <password> <hash>",
	Short: "Check a password against a stored hash",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !password.VerifyPassword(args[0], args[1]) {
			return fmt.Errorf("password does not match hash")
		}
		fmt.Println("ok")
		if password.NeedsRehash(args[1]) {
			fmt.Println("hash is outdated and should be regenerated")
		}
		return nil
	},
}

var passwordPolicyCmd = &cobra.Command{
	Use:   "policy <password>",
	Short: "Check a password against the strength policy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := password.ValidateStrength(args[0]); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	passwordCmd.AddCommand(passwordHashCmd)
	passwordCmd.AddCommand(passwordCheckCmd)
	passwordCmd.AddCommand(passwordPolicyCmd)
}
