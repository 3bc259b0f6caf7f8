// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors
//
// nagactl - Razer Naga configuration tool
//
// Configures LED states, sensor resolution and scan frequency of Naga mice
// over the reverse engineered USB control protocol.

package main

import (
	"fmt"
	"os"

	"github.com/openrzr/nagactl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
