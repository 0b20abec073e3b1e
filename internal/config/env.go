// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags.
// Fields whose variable is unset keep their current value.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type or EDGE_KEYS is malformed).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

type jsonSource struct {
	Path string `env:"CONFIG"`
}

// resolveJSONPath returns the JSON config path: the flag value when given,
// otherwise the CONFIG environment variable.
func resolveJSONPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}

	src, err := env.ParseAs[jsonSource]()
	if err != nil {
		return ""
	}

	return src.Path
}
