package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akashmahale123/nextjs-brand/config"
	"github.com/akashmahale123/nextjs-brand/internal/logger"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "Print the supported locale codes, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.FromContext(cmd.Context())
		cfg := config.New(config.Options{Logger: log})

		for _, code := range cfg.I18n.SupportedLocales {
			fmt.Fprintln(cmd.OutOrStdout(), code)
		}
		return nil
	},
}
