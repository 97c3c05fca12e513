package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/movever/movever/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger is the application logger with structured JSON output
type AppLogger struct {
	*logrus.Logger
	serviceName string
	filePath    string
	file        *os.File
}

// NewAppLogger creates a new application logger
func NewAppLogger(serviceName string, config models.LoggerConfig) (*AppLogger, error) {
	logger := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Set JSON formatter for structured logging
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger:      logger,
		serviceName: serviceName,
	}

	// Setup file output if requested
	if config.Type != "console" && config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// setupFileOutput configures file output for the logger
func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file

	// Set output to both stdout and file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// WithFields adds custom fields to a log entry, always tagging the service
func (al *AppLogger) WithFields(fields logrus.Fields) *logrus.Entry {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["service"] = al.serviceName

	return al.Logger.WithFields(fields)
}

// WithError adds an error field to a log entry
func (al *AppLogger) WithError(err error) *logrus.Entry {
	return al.Logger.WithError(err)
}

// LogHTTPRequest logs an HTTP request with all relevant context
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, userID string, statusCode int, latency time.Duration, err error) {
	entry := al.WithFields(logrus.Fields{
		"status":     statusCode,
		"latency_ms": latency.Milliseconds(),
		"client_ip":  clientIP,
		"method":     method,
		"path":       path,
		"user_id":    userID,
	})

	// Log with appropriate level based on status code
	if statusCode >= 500 {
		if err != nil {
			entry.WithError(err).Error("Server error")
		} else {
			entry.Error("Server error")
		}
	} else if statusCode >= 400 {
		if err != nil {
			entry.WithError(err).Warn("Client error")
		} else {
			entry.Warn("Client error")
		}
	} else {
		entry.Info("Request processed")
	}
}
