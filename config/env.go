// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the brand and regional fields that can be overridden
// through the environment. The NEXT_PUBLIC_ prefix follows the host
// framework's convention for values that are safe to expose to clients.
//
// Environment variables are read once, at construction time; later changes
// to the process environment do not affect an already-built Config.
type envConfig struct {
	Brand    envBrand    `envPrefix:"NEXT_PUBLIC_"`
	Regional envRegional `envPrefix:"NEXT_PUBLIC_"`
}

type envBrand struct {
	// Env: NEXT_PUBLIC_APP_NAME
	Name string `env:"APP_NAME"`

	// Env: NEXT_PUBLIC_APP_TAGLINE
	Tagline string `env:"APP_TAGLINE"`

	// Env: NEXT_PUBLIC_LOGO_URL
	LogoURL string `env:"LOGO_URL"`

	// Env: NEXT_PUBLIC_PRIMARY_COLOR / _SECONDARY_COLOR / _TERTIARY_COLOR
	PrimaryColor   string `env:"PRIMARY_COLOR"`
	SecondaryColor string `env:"SECONDARY_COLOR"`
	TertiaryColor  string `env:"TERTIARY_COLOR"`
}

type envRegional struct {
	// Env: NEXT_PUBLIC_DEFAULT_CURRENCY
	DefaultCurrency string `env:"DEFAULT_CURRENCY"`

	// Env: NEXT_PUBLIC_DEFAULT_LOCALE
	DefaultLocale string `env:"DEFAULT_LOCALE"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags.
//
// Returns a wrapped error if env.Parse fails; the assembler logs the error
// and drops the environment layer rather than failing construction.
func parseEnv(cfg *envConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
