// Copyright 2026 The Gather Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Command gather is the illustrative CLI for the gather library: it walks
// through the broadcasting-vs-truncation contrast and times the four
// equivalent gather implementations against each other.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// NewCLI creates the root command with all subcommands.
func NewCLI() *cobra.Command {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "gather",
		Short:         "Broadcasting gather semantics, demonstrated and benchmarked",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through the broadcasting vs. truncation contrast",
		Args:  cobra.ExactArgs(0),
		RunE:  DemoHandler,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the four equivalent gather implementations",
		Args:  cobra.ExactArgs(0),
		RunE:  BenchHandler,
	}
	benchCmd.Flags().Int("iterations", 20, "timing iterations per implementation")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.ExactArgs(0),
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("gather %s\n", version)
		},
	}

	rootCmd.AddCommand(demoCmd, benchCmd, versionCmd)
	return rootCmd
}

func main() {
	if err := NewCLI().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
