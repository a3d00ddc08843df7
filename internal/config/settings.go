// internal/config/settings.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvSettingsPath overrides the settings file location.
const EnvSettingsPath = "ROADDEF_CONFIG"

// DefaultSettingsPath is used when the env variable is unset.
const DefaultSettingsPath = "config/settings.yaml"

// Settings holds the tunables read from the settings file.
type Settings struct {
	LogLevel   string `yaml:"log_level"`
	Difficulty string `yaml:"difficulty"`
	LevelFile  string `yaml:"level_file"` // empty means the embedded level
	DataDir    string `yaml:"data_dir"`   // empty means embedded game data
	Seed       int64  `yaml:"seed"`       // 0 picks a time-based seed

	StealthWindow     float64 `yaml:"stealth_window"` // seconds
	DropChance        float64 `yaml:"drop_chance"`
	SynergyBonusRatio float64 `yaml:"synergy_bonus_ratio"`

	DayLength   float64 `yaml:"day_length"`   // seconds
	NightLength float64 `yaml:"night_length"` // seconds
	Weather     string  `yaml:"weather"`      // clear, rain or storm

	StartingGold  int     `yaml:"starting_gold"`
	StartingLives int     `yaml:"starting_lives"`
	InterestRate  float64 `yaml:"interest_rate"`
}

// DefaultSettings returns Settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:          "info",
		Difficulty:        "normal",
		StealthWindow:     StealthWindowSeconds,
		DropChance:        DropChance,
		SynergyBonusRatio: SynergyBonusRatio,
		DayLength:         DayLengthSeconds,
		NightLength:       NightLengthSeconds,
		Weather:           "clear",
		StartingGold:      StartingGold,
		StartingLives:     StartingLives,
		InterestRate:      InterestRate,
	}
}

// LoadSettings loads settings from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

// SettingsPath returns the env override or the default path.
func SettingsPath() string {
	if p := os.Getenv(EnvSettingsPath); p != "" {
		return p
	}
	return DefaultSettingsPath
}

func (s *Settings) sanitize() {
	def := DefaultSettings()
	if s.StealthWindow < 0 {
		s.StealthWindow = def.StealthWindow
	}
	if s.DropChance < 0 || s.DropChance > 1 {
		slog.Warn("drop_chance out of range, using default", "value", s.DropChance)
		s.DropChance = def.DropChance
	}
	if s.SynergyBonusRatio < 0 {
		s.SynergyBonusRatio = def.SynergyBonusRatio
	}
	if s.DayLength <= 0 {
		s.DayLength = def.DayLength
	}
	if s.NightLength < 0 {
		s.NightLength = def.NightLength
	}
	if s.StartingLives <= 0 {
		s.StartingLives = def.StartingLives
	}
}

// ParseLogLevel maps a config string to a slog level.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
