package common

import "go.uber.org/zap/zapcore"

// Severity represents the severity level of a message or error.
// It is used consistently across logging and error handling.
type Severity string

const (
	// SeverityInfo represents informational messages that don't indicate any problem
	SeverityInfo Severity = "INFO"

	// SeverityWarning represents warning messages that indicate potential issues
	// but don't prevent the application from functioning
	SeverityWarning Severity = "WARNING"

	// SeverityError represents error messages that indicate failures in specific operations
	// but allow the application to continue running
	SeverityError Severity = "ERROR"

	// SeverityCritical represents critical errors that may prevent parts of the application
	// from functioning correctly
	SeverityCritical Severity = "CRITICAL"
)

// zapLevel maps a severity onto the zap level used to write it.
// CRITICAL uses DPanic, which only panics in development loggers.
func (s Severity) zapLevel() zapcore.Level {
	switch s {
	case SeverityWarning:
		return zapcore.WarnLevel
	case SeverityError:
		return zapcore.ErrorLevel
	case SeverityCritical:
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

// severityFromLevel is the inverse of zapLevel.
func severityFromLevel(level zapcore.Level) Severity {
	switch {
	case level >= zapcore.DPanicLevel:
		return SeverityCritical
	case level == zapcore.ErrorLevel:
		return SeverityError
	case level == zapcore.WarnLevel:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}
