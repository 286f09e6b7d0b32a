// Copyright (c) 2026 MVN Server Project
//
// This file is part of mvn-identity, the identity and credential core of
// the MVN media library server.
//
// Licensed under the MIT License. See the LICENSE file for details.

package main

import (
	"fmt"
	"os"

	"github.com/mvnserver/identity/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
