package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config fields from the environment using the struct's
// env tags. Unset variables leave the current values untouched.
func parseEnv(config *Config) error {
	return env.Parse(config)
}
