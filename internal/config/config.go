// Package config resolves process-wide settings once at startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const (
	appName  = "acronym"
	fileName = "acronyms.yaml"
)

// Config holds the settings threaded into the store and logger.
type Config struct {
	FilePath string
	Debug    bool
}

// Load resolves the configuration from ACRONYM_* environment variables,
// falling back to the XDG config directory.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("file", "")
	v.SetDefault("dir", "")
	v.SetDefault("debug", false)

	path, err := filepath.Abs(resolveFilePath(v.GetString("file"), v.GetString("dir")))
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve glossary path: %w", err)
	}

	return Config{
		FilePath: path,
		Debug:    v.GetBool("debug"),
	}, nil
}

func resolveFilePath(file, dir string) string {
	if file != "" {
		return file
	}
	if dir != "" {
		return filepath.Join(dir, fileName)
	}
	return filepath.Join(GetConfigDir(), fileName)
}

// GetConfigDir returns the per-user directory holding the glossary file.
// XDG_CONFIG_HOME wins when set; otherwise $HOME/.config is used on every
// platform, including macOS where xdg would pick ~/Library/Application Support.
func GetConfigDir() string {
	xdg.Reload()

	var configHome string
	if os.Getenv("XDG_CONFIG_HOME") != "" {
		configHome = xdg.ConfigHome
	}
	if configHome == "" {
		home := xdg.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), appName)
			}
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, appName)
}
