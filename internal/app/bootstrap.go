// internal/app/bootstrap.go
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"go-road-defense/internal/config"
	"go-road-defense/internal/defs"
)

// SetupLogging installs the default slog handler for the configured level.
func SetupLogging(w io.Writer, level string) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: config.ParseLogLevel(level),
	})))
}

// LoadOptions reads game data and the level named by the settings. Game data
// never fails to load; a level file that cannot be read is an error.
func LoadOptions(s config.Settings) (Options, error) {
	fsys := defs.Embedded()
	if s.DataDir != "" {
		fsys = os.DirFS(s.DataDir)
	}
	data := defs.LoadGameData(fsys)

	level := defs.DefaultLevel()
	if s.LevelFile != "" {
		lvl, err := defs.LoadLevel(s.LevelFile)
		if err != nil {
			return Options{}, fmt.Errorf("loading level %s: %w", s.LevelFile, err)
		}
		level = lvl
	}
	return Options{Settings: s, Data: data, Level: level}, nil
}
