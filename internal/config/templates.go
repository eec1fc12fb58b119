package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Chart Prophet Client Configuration

[server]
# Backend root URL
base_url = "http://localhost:8000"
# Request timeout (e.g., "30s", "1m")
timeout = "30s"
# Maximum retries for read requests
retry_max = 3

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Write a rotated log file alongside console output
file = true
# Rotation limits
max_size = 100
max_backups = 7
max_age = 30
`

// createTemplateConfig writes a commented config template on first run.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0644)
}
