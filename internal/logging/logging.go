// Package logging points the shared logrus logger at zwm's log file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

const timestampFormat = "15:04:05 01/02/2006"

// Open truncates (or creates) the log file at path and directs the standard
// logger to it. The caller closes the returned file on exit.
func Open(path string, debug bool) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Configure(f, debug)
	return f, nil
}

// Configure sets output, format and level of the standard logger.
func Configure(out *os.File, debug bool) {
	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	log.SetReportCaller(debug)
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
