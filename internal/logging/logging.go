package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"battletower/internal/config"
)

// Setup points the standard logger at a rotating log file.
// The returned closer flushes and closes the file.
func Setup(settings config.LogSettings) (io.Closer, error) {
	if dir := filepath.Dir(settings.File); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	logFile := &lumberjack.Logger{
		Filename:   settings.File,
		MaxSize:    settings.MaxSizeMB, // megabytes
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAgeDays, // days
	}

	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile, nil
}

// Discard silences the standard logger, used when no log file can be opened
// so that log output never lands on the terminal under the UI
func Discard() {
	log.SetOutput(io.Discard)
}
