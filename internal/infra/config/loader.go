// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/relnotes/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/relnotes)
	explicitPath  string // File given with --config; must exist when set
}

// NewLoader creates a new Loader. explicitPath may be empty.
func NewLoader(explicitPath string) *Loader {
	return &Loader{
		globalConfDir: defaultGlobalConfigDir(),
		explicitPath:  explicitPath,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir, explicitPath string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
		explicitPath:  explicitPath,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration: default <- global <- explicit.
// A missing global file is ignored; a missing explicit file is an error.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if path := l.globalPath(); path != "" {
		global, err := loadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		base.Merge(global)
	}

	if l.explicitPath != "" {
		explicit, err := loadFile(l.explicitPath)
		if err != nil {
			return nil, err
		}
		base.Merge(explicit)
	}

	return base, nil
}

// Sources lists the configuration files consulted, in merge order.
func (l *Loader) Sources() []domain.ConfigInfo {
	var infos []domain.ConfigInfo
	if path := l.globalPath(); path != "" {
		infos = append(infos, fileInfo(path))
	}
	if l.explicitPath != "" {
		infos = append(infos, fileInfo(l.explicitPath))
	}
	return infos
}

func (l *Loader) globalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

func fileInfo(path string) domain.ConfigInfo {
	_, err := os.Stat(path)
	return domain.ConfigInfo{Path: path, Exists: err == nil}
}

// loadFile loads a configuration from a file. Unknown keys become warnings
// rather than errors.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg domain.Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(&cfg)

	var strict *toml.StrictMissingError
	switch {
	case err == nil:
		return &cfg, nil
	case errors.As(err, &strict):
		cfg = domain.Config{}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		for _, e := range strict.Errors {
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("unknown key in %s: %s", filepath.Base(path), strings.Join(e.Key(), ".")))
		}
		return &cfg, nil
	default:
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
}
