// Package logging sends the standard logger to a rotating file. The terminal
// belongs to the UI, so nothing may be logged to stdout or stderr while the
// program runs.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFile is the log file used when none is given
const DefaultFile = "multiselect.log"

// Setup points the standard logger at path and returns the file so the
// caller can close it on exit.
func Setup(path string) (io.Closer, error) {
	if path == "" {
		path = DefaultFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	logFile := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	}
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile, nil
}

// Discard silences the standard logger
func Discard() {
	log.SetOutput(io.Discard)
}
