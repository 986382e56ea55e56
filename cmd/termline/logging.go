package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "termline.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/termline.log when debug is
// set and discards it otherwise. Anything written to stdout or stderr would
// land on the screen. A log file over maxLogSize is renamed with a timestamp
// before a fresh one is opened.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("termline-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
