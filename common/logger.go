// common/logger.go

// Package common implements shared functionality used across the HelloWorld application.
// This file contains logging functionality.

package common

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logTimeLayout = "2006-01-02 15:04:05"

// earlyLogBuffer stores log messages before logger is initialized
var earlyLogBuffer []string
var earlyLogMutex sync.Mutex

// CaptureEarlyLog captures a log message before the logger is initialized
func CaptureEarlyLog(level Severity, format string, args ...interface{}) {
	earlyLogMutex.Lock()
	defer earlyLogMutex.Unlock()

	timestamp := time.Now().Format(logTimeLayout)
	message := fmt.Sprintf("%s [%s] %s", timestamp, level, fmt.Sprintf(format, args...))

	earlyLogBuffer = append(earlyLogBuffer, message)
}

// FlushEarlyLogs writes all captured early logs to the logger
func FlushEarlyLogs(logger *Logger) {
	earlyLogMutex.Lock()
	defer earlyLogMutex.Unlock()

	if logger == nil || len(earlyLogBuffer) == 0 {
		return
	}

	logger.Info("--- Flushing %d early log messages ---", len(earlyLogBuffer))

	// Written directly to the file to preserve the original timestamps
	for _, message := range earlyLogBuffer {
		if _, err := logger.sink.Write([]byte(message + "\n")); err != nil {
			logger.Info("Early log: %s", message)
		}
	}

	earlyLogBuffer = nil
	logger.Info("--- End of early logs ---")
}

// Logger writes leveled, timestamped lines to a size and age rotated file.
type Logger struct {
	sink  *rotatingFile
	zap   *zap.Logger
	sugar *zap.SugaredLogger
}

// NewLogger creates a new logger instance
func NewLogger(logPath string, maxSizeMB int, maxAgeDays int) (*Logger, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if maxAgeDays <= 0 {
		maxAgeDays = 7
	}

	sink, err := openRotatingFile(logPath, int64(maxSizeMB)*1024*1024, maxAgeDays)
	if err != nil {
		return nil, err
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeTime:       zapcore.TimeEncoderOfLayout(logTimeLayout),
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + string(severityFromLevel(level)) + "]")
		},
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), sink, zapcore.InfoLevel)
	z := zap.New(core)

	return &Logger{
		sink:  sink,
		zap:   z,
		sugar: z.Sugar(),
	}, nil
}

// Log writes a message to the log file
func (l *Logger) Log(level Severity, format string, args ...interface{}) {
	l.sugar.Logf(level.zapLevel(), format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(SeverityInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(SeverityWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(SeverityError, format, args...)
}

// Critical logs a critical message
func (l *Logger) Critical(format string, args ...interface{}) {
	l.Log(SeverityCritical, format, args...)
}

// Path returns the file the logger currently writes to.
func (l *Logger) Path() string {
	return l.sink.path
}

// Close flushes and closes the log file
func (l *Logger) Close() error {
	_ = l.zap.Sync()
	return l.sink.Close()
}

// rotatingFile is the zapcore.WriteSyncer behind Logger.
type rotatingFile struct {
	path        string
	file        *os.File
	mutex       sync.Mutex
	maxBytes    int64
	maxAgeDays  int
	currentSize int64
}

func openRotatingFile(logPath string, maxBytes int64, maxAgeDays int) (*rotatingFile, error) {
	r := &rotatingFile{
		path:       logPath,
		maxBytes:   maxBytes,
		maxAgeDays: maxAgeDays,
	}
	rootLogPath := filepath.Join(".", filepath.Base(logPath))

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		r.path = rootLogPath
		CaptureEarlyLog(SeverityWarning, "Failed to create log directory at '%s': %v", filepath.Dir(logPath), err)
		CaptureEarlyLog(SeverityWarning, "Attempting fallback to root directory: %s", rootLogPath)
	}

	if err := r.checkRotation(); err != nil {
		CaptureEarlyLog(SeverityWarning, "Failed to check log rotation: %v", err)
	}

	// A rotation above has already opened a fresh file.
	if r.file == nil {
		file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			if r.path == rootLogPath {
				return nil, fmt.Errorf("failed to open log file: %w", err)
			}
			CaptureEarlyLog(SeverityWarning, "Failed to open log file at '%s': %v", r.path, err)
			CaptureEarlyLog(SeverityWarning, "Attempting fallback to root directory: %s", rootLogPath)

			r.path = rootLogPath
			file, err = os.OpenFile(rootLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return nil, fmt.Errorf("failed to open log file at primary and fallback locations: %w", err)
			}
		}
		r.file = file
	}

	if info, err := r.file.Stat(); err == nil {
		r.currentSize = info.Size()
	}
	return r, nil
}

// Write implements io.Writer, rotating first when the size limit is reached.
func (r *rotatingFile) Write(p []byte) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.file == nil {
		return 0, os.ErrClosed
	}

	if r.currentSize >= r.maxBytes {
		if err := r.rotate(); err != nil {
			return 0, fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	n, err := r.file.Write(p)
	r.currentSize += int64(n)
	if err != nil {
		return n, fmt.Errorf("failed to write to log file: %w", err)
	}
	return n, nil
}

func (r *rotatingFile) Sync() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.file == nil {
		return nil
	}
	return r.file.Sync()
}

func (r *rotatingFile) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// checkRotation checks if log rotation is needed based on age or size
func (r *rotatingFile) checkRotation() error {
	info, err := os.Stat(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	age := time.Since(info.ModTime())
	if age.Hours() >= float64(r.maxAgeDays*24) || info.Size() >= r.maxBytes {
		return r.rotate()
	}
	return nil
}

// rotate renames the current file to name_<timestamp>.ext and starts a new one.
func (r *rotatingFile) rotate() error {
	if r.file != nil {
		r.file.Close()
	}

	timestamp := time.Now().Format("2006-01-02@15_04_05.000")
	if err := os.Rename(r.path, r.rotatedPath(timestamp)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rename log file: %w", err)
	}

	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		r.file = nil
		return fmt.Errorf("failed to create new log file: %w", err)
	}

	r.file = file
	r.currentSize = 0

	r.cleanOldLogs()
	return nil
}

func (r *rotatingFile) rotatedPath(suffix string) string {
	dir := filepath.Dir(r.path)
	base := filepath.Base(r.path)
	ext := filepath.Ext(base)
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", base[:len(base)-len(ext)], suffix, ext))
}

// cleanOldLogs removes rotated log files older than 1 year
func (r *rotatingFile) cleanOldLogs() {
	files, err := filepath.Glob(r.rotatedPath("*"))
	if err != nil {
		return
	}

	oneYearAgo := time.Now().AddDate(-1, 0, 0)
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if info.ModTime().Before(oneYearAgo) {
			os.Remove(file)
		}
	}
}
