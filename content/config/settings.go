package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// EnvConfigPath names the environment variable that overrides the settings file location.
const EnvConfigPath = "ROCKET_CONFIG"

const (
	FrontendEbiten   = "ebiten"
	FrontendTerminal = "terminal"
)

// Settings is the user-editable part of the configuration, read from a TOML file.
type Settings struct {
	Mode        string `toml:"mode"`         // "4G" or "5G"; empty shows the mode screen
	ScoreFile   string `toml:"score_file"`   // where best scores are kept
	Seed        int64  `toml:"seed"`         // 0 seeds from the clock
	Frontend    string `toml:"frontend"`     // "ebiten" or "terminal"
	WindowScale int    `toml:"window_scale"` // ebiten window size multiplier
	Sound       bool   `toml:"sound"`
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"` // empty logs to stderr
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		ScoreFile:   DefaultScoreFile(),
		Frontend:    FrontendEbiten,
		WindowScale: 1,
		Sound:       true,
		LogLevel:    "info",
	}
}

// DefaultScoreFile places the score file under the user's config directory,
// falling back to the working directory.
func DefaultScoreFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "rocket-scores.toml"
	}
	return filepath.Join(dir, "rocket-dodge", "scores.toml")
}

// LoadSettings reads path over the defaults. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), errors.Wrapf(err, "decode settings %s", path)
	}
	if s.ScoreFile == "" {
		s.ScoreFile = DefaultScoreFile()
	}
	if s.Frontend == "" {
		s.Frontend = FrontendEbiten
	}
	if s.WindowScale < 1 {
		s.WindowScale = 1
	}
	return s, nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
