// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// brandcfg inspects the whitelabel configuration a process would resolve
// from its environment. It is a debugging aid for tenant setups: point it at
// a dotenv file (or run it under the real environment) and see exactly what
// the factory produces.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/akashmahale123/nextjs-brand/internal/logger"
)

var (
	buildVersion string

	envFile string

	rootLog = logger.NewLogger("brandcfg")
)

var rootCmd = &cobra.Command{
	Use:     "brandcfg",
	Short:   "Inspect the resolved whitelabel brand configuration",
	Version: version(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// subcommands recover the logger via logger.FromContext
		cmd.SetContext(rootLog.WithContext(cmd.Context()))

		if envFile == "" {
			return nil
		}

		if err := godotenv.Load(envFile); err != nil {
			return err
		}
		rootLog.Debug().Str("file", envFile).Msg("loaded dotenv file")
		return nil
	},
}

func version() string {
	if buildVersion == "" {
		return "N/A"
	}
	return buildVersion
}

func main() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before resolving")
	rootCmd.AddCommand(resolveCmd, localesCmd)

	if err := rootCmd.Execute(); err != nil {
		rootLog.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
