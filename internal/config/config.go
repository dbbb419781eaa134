// Package config provides repository configuration management,
// including reading nbgit configuration files and platform defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config represents the nbgit configuration for a repository
type Config struct {
	CredentialHelper *string `json:"credentialHelper,omitempty"`
}

// GetConfig reads the repository configuration, returning defaults when no
// config file exists.
func GetConfig(repoRoot string) (*Config, error) {
	configPath := filepath.Join(repoRoot, ".git", ".nbgit_config")

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config doesn't exist - return default
		return &Config{}, nil
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// GetCredentialHelper returns the configured credential helper for the
// repository, falling back to the platform default.
func GetCredentialHelper(repoRoot string) (string, error) {
	config, err := GetConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.CredentialHelper != nil && *config.CredentialHelper != "" {
		return *config.CredentialHelper, nil
	}

	return DefaultCredentialHelper(), nil
}

// DefaultCredentialHelper returns the credential helper name registered in a
// repository's configuration when none is configured explicitly. The cache
// helper keeps credentials in memory for a bounded window; Windows has no
// cache daemon, so the native credential store is used there.
func DefaultCredentialHelper() string {
	if runtime.GOOS == "windows" {
		return "wincred"
	}
	return "cache --timeout=3600"
}
