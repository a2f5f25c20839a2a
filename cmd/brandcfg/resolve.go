package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akashmahale123/nextjs-brand/config"
	"github.com/akashmahale123/nextjs-brand/internal/logger"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the aggregate configuration resolved from the environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.FromContext(cmd.Context())
		cfg := config.New(config.Options{Logger: log})

		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
