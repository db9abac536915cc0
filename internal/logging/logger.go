// Package logging provides a leveled, optionally colored logger with an
// optional file sink. Color state lives in the term package so display
// helpers can share it.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/backmassage/bookmux/internal/config"
	"github.com/backmassage/bookmux/internal/term"
)

// Logger provides leveled logging to stdout/stderr and an optional log file.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	filePath string
}

// NewLogger configures terminal colors from cfg and optionally opens the
// log file. Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{}
	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	plain := ts + " [" + level + "] " + text + "\n"
	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	if color != "" {
		_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+term.NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), also to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
