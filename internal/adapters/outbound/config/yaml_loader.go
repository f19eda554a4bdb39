package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dirqc/dirqc/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".dirqc.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .dirqc.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .dirqc.yaml from dir. Returns DefaultConfig when the file does
// not exist.
func (l *YAMLLoader) Load(dir string) (domain.ToolConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ToolConfig{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ToolConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	return cfg, nil
}
