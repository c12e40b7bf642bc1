package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/treetidy/pkg/treetidy"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// DuplicatesConfig configures the duplicate finder.
type DuplicatesConfig struct {
	BackupDir  string   `yaml:"backup_dir"`
	Extensions []string `yaml:"extensions"`
	Skip       []string `yaml:"skip"`
}

// PlaceholdersConfig configures the placeholder scanner.
type PlaceholdersConfig struct {
	Extensions       []string `yaml:"extensions"`
	Skip             []string `yaml:"skip"`
	RespectGitignore bool     `yaml:"respect_gitignore"`
}

// Config is the complete tool configuration. It is passed explicitly into
// each operation; nothing reads package-level state.
type Config struct {
	Root         string             `yaml:"root"`
	Duplicates   DuplicatesConfig   `yaml:"duplicates"`
	Placeholders PlaceholdersConfig `yaml:"placeholders"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Root: treetidy.DefaultRoot,
		Duplicates: DuplicatesConfig{
			BackupDir:  treetidy.DefaultBackupDir,
			Extensions: treetidy.DefaultDuplicateExtensions(),
			Skip:       treetidy.DefaultDuplicateSkip(),
		},
		Placeholders: PlaceholdersConfig{
			Extensions: treetidy.DefaultPlaceholderExtensions(),
			Skip:       treetidy.DefaultPlaceholderSkip(),
		},
	}
}

// Load reads a YAML config file. Fields left out of the file keep their
// default values.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", treetidy.ErrInvalidConfig, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads the effective configuration. The path is taken from
// explicitPath, then $TREETIDY_CONFIG (after loading .env), then
// treetidy.yaml in the working directory. Only an explicitly named file
// is required to exist.
func Resolve(explicitPath string) (*Config, error) {
	_ = godotenv.Load()

	configPath := explicitPath
	if configPath == "" {
		configPath = os.Getenv(treetidy.ConfigEnvVar)
	}
	required := configPath != ""
	if configPath == "" {
		configPath = treetidy.ConfigFileName
	}

	cfg, err := Load(configPath)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) && !required {
			return Default(), nil
		}
		if errors.Is(err, ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s does not exist", treetidy.ErrInvalidConfig, configPath)
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Root == "" {
		c.Root = treetidy.DefaultRoot
	}
	if strings.TrimSpace(c.Duplicates.BackupDir) == "" {
		c.Duplicates.BackupDir = treetidy.DefaultBackupDir
	}
	if filepath.Clean(c.Duplicates.BackupDir) == "." {
		return fmt.Errorf("%w: backup_dir must not be the root directory", treetidy.ErrInvalidConfig)
	}
	if len(c.Duplicates.Extensions) == 0 {
		c.Duplicates.Extensions = treetidy.DefaultDuplicateExtensions()
	}
	if len(c.Placeholders.Extensions) == 0 {
		c.Placeholders.Extensions = treetidy.DefaultPlaceholderExtensions()
	}

	if err := validateExtensions("duplicates.extensions", c.Duplicates.Extensions); err != nil {
		return err
	}
	return validateExtensions("placeholders.extensions", c.Placeholders.Extensions)
}

func validateExtensions(field string, exts []string) error {
	for _, ext := range exts {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %s: %q must start with a dot", treetidy.ErrInvalidConfig, field, ext)
		}
	}
	return nil
}

// BackupPath returns the backup mirror root. Relative backup directories
// are resolved against root.
func (c *Config) BackupPath(root string) string {
	if filepath.IsAbs(c.Duplicates.BackupDir) {
		return filepath.Clean(c.Duplicates.BackupDir)
	}
	return filepath.Join(root, c.Duplicates.BackupDir)
}

// BackupName is the path component the duplicate finder skips so that
// relocated files are never re-scanned.
func (c *Config) BackupName() string {
	return filepath.Base(filepath.Clean(c.Duplicates.BackupDir))
}
