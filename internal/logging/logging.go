package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to <logDir>/cofre.log.
// An empty logDir means ~/.cofre/logs. Uses text format for human readability.
// Raw storage failures end up here; the terminal only gets a short notice.
func Init(logDir string, level slog.Level) error {
	if logDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(homeDir, ".cofre", "logs")
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "cofre.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}
