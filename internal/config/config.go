package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/mkcatalog/pkg/mkcatalog"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// EnvDuplicates overrides the duplicates policy from mkcatalog.yaml.
const EnvDuplicates = "MKCATALOG_DUPLICATES"

// ProjectConfig mirrors mkcatalog.yaml.
type ProjectConfig struct {
	Duplicates  string `yaml:"duplicates"`
	CatalogName string `yaml:"catalog_name,omitempty"`
}

// Load reads mkcatalog.yaml from rootPath.
func Load(rootPath string) (*ProjectConfig, error) {
	configPath := filepath.Join(rootPath, mkcatalog.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %v: %w", configPath, err, mkcatalog.ErrInvalidConfig)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", configPath, err, mkcatalog.ErrInvalidConfig)
	}
	return &cfg, nil
}

// Resolve builds run options for rootPath from defaults, mkcatalog.yaml,
// a .env file in the working directory, and the process environment,
// in increasing order of precedence.
func Resolve(rootPath string) (mkcatalog.Options, error) {
	_ = godotenv.Load()

	opts := mkcatalog.DefaultOptions()

	cfg, err := Load(rootPath)
	switch {
	case errors.Is(err, ErrConfigNotFound):
		cfg = &ProjectConfig{}
	case err != nil:
		return opts, err
	}

	duplicates := cfg.Duplicates
	if env := strings.TrimSpace(os.Getenv(EnvDuplicates)); env != "" {
		duplicates = env
	}
	policy, err := mkcatalog.ParseDuplicatePolicy(duplicates)
	if err != nil {
		return opts, err
	}
	opts.Duplicates = policy

	if cfg.CatalogName != "" {
		if cfg.CatalogName != filepath.Base(cfg.CatalogName) || strings.HasPrefix(cfg.CatalogName, ".") {
			return opts, fmt.Errorf("catalog_name %q must be a plain, non-hidden file name: %w", cfg.CatalogName, mkcatalog.ErrInvalidConfig)
		}
		opts.CatalogName = cfg.CatalogName
	}
	return opts, nil
}
