package config

import "errors"

func ValidateForRun(cfg *Config) error {
	if cfg.ActivityAPIURL == "" {
		return errors.New("ACTIVITY_API_URL environment variable is required")
	}
	return nil
}
