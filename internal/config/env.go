// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environment variables according to the `env` and
// `envPrefix` tags declared on [StructuredConfig] and its nested blocks.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing environment config: %w", err)
	}

	return nil
}
