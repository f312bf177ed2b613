package config

import (
	"fmt"
	"path/filepath"

	"file-shredder/internal/domain"
)

// Provider provides configuration paths.
type Provider struct {
	fs domain.FileSystemAdapter
}

// NewProvider creates a new configuration provider.
func NewProvider(fs domain.FileSystemAdapter) *Provider {
	return &Provider{
		fs: fs,
	}
}

// GetConfigPath returns the path to the file-shredder configuration file.
func (p *Provider) GetConfigPath() (string, error) {
	homeDir, err := p.fs.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "file-shredder", "config.yaml"), nil
}
