package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileLogger logs run events to a per-run file under the configured log
// directory and maintains a latest.log symlink pointing to the most
// recent run. The run ID keys the log file to the execution report.
type FileLogger struct {
	logDir   string
	runFile  string
	runID    string
	logLevel string
	file     *os.File
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger writing to
// <logDir>/run-<timestamp>-<id>.log, where <id> is the first eight
// characters of runID. The directory is created if needed.
func NewFileLogger(logDir, logLevel, runID string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	short := runID
	if len(short) > 8 {
		short = short[:8]
	}
	timestamp := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", timestamp, short))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	if err := updateLatestSymlink(logDir, runFile); err != nil {
		file.Close()
		return nil, err
	}

	return &FileLogger{
		logDir:   logDir,
		runFile:  runFile,
		runID:    runID,
		logLevel: normalizeLogLevel(logLevel),
		file:     file,
	}, nil
}

// updateLatestSymlink points <logDir>/latest.log at the current run log.
func updateLatestSymlink(logDir, runFile string) error {
	symlinkPath := filepath.Join(logDir, "latest.log")

	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			return fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		return fmt.Errorf("failed to create symlink: %w", err)
	}
	return nil
}

// Path returns the run log file path.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

// LogTrace logs a trace-level message.
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level, message string) {
	if logLevelToInt(strings.ToLower(level)) < logLevelToInt(fl.logLevel) {
		return
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.file == nil {
		return
	}

	ts := time.Now().Format("15:04:05")
	fmt.Fprintf(fl.file, "[%s] [%s] %s\n", ts, level, message)
}

// Close flushes and closes the underlying run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.file == nil {
		return nil
	}
	err := fl.file.Close()
	fl.file = nil
	return err
}
