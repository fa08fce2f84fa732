package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

const logFileName = "llmsbrowse.log"

// defaultLogPath is the log file under the user cache dir
func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return logFileName
	}
	return filepath.Join(dir, "llmsbrowse", logFileName)
}

// setupLogging points the global logger at path. The terminal belongs to the
// UI, so when the file cannot be opened logging is switched off instead.
func setupLogging(path, level string) (io.Closer, error) {
	if path == "" {
		path = defaultLogPath()
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		zlog.Logger = zerolog.Nop()
		return nopCloser{}, fmt.Errorf("could not create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		zlog.Logger = zerolog.Nop()
		return nopCloser{}, fmt.Errorf("could not open log file: %w", err)
	}

	w := zerolog.ConsoleWriter{Out: file, NoColor: true, TimeFormat: time.RFC3339}
	zlog.Logger = zerolog.New(w).With().Timestamp().Logger()
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
