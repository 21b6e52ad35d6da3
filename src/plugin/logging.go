package plugin

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	// LogLevelDebug logs everything including per-stage detail
	LogLevelDebug LogLevel = iota
	// LogLevelInfo logs general information about transform runs
	LogLevelInfo
	// LogLevelWarn logs warning messages that don't stop execution
	LogLevelWarn
	// LogLevelError logs only error conditions
	LogLevelError
	// LogLevelOff disables all logging
	LogLevelOff
)

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	case "OFF", "NONE":
		return LogLevelOff
	default:
		return LogLevelInfo
	}
}

// LogCategory represents different categories of logging for granular control
type LogCategory string

const (
	// LogCategoryHost for general pipeline and host operations
	LogCategoryHost LogCategory = "host"
	// LogCategoryParser for lexing and parsing events
	LogCategoryParser LogCategory = "parser"
	// LogCategoryTransform for rule matching and rewrite events
	LogCategoryTransform LogCategory = "transform"
	// LogCategoryPrinter for source rendering events
	LogCategoryPrinter LogCategory = "printer"
	// LogCategoryConfig for plugin config loading events
	LogCategoryConfig LogCategory = "config"
)

// Logger defines the interface for pluggable logging in the pipeline.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})
	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})
	// Warn logs a warning message with optional key-value pairs
	Warn(msg string, keysAndValues ...interface{})
	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
	// IsDebugEnabled returns true if debug logging is enabled
	IsDebugEnabled() bool
	// IsInfoEnabled returns true if info logging is enabled
	IsInfoEnabled() bool
}

// CategorizedLogger extends Logger with category-specific and leveled logging
type CategorizedLogger interface {
	Logger
	// LogWithCategory logs a message with a specific category for granular control
	LogWithCategory(level LogLevel, category LogCategory, msg string, keysAndValues ...interface{})
	// IsCategoryEnabled returns true if the specified category is enabled at the given level
	IsCategoryEnabled(category LogCategory, level LogLevel) bool
	// SetCategoryLevel sets the log level for a specific category
	SetCategoryLevel(category LogCategory, level LogLevel)
}

// LoggingConfig holds logging configuration for the pipeline
type LoggingConfig struct {
	// Logger is the pluggable logger implementation
	Logger Logger
	// Level sets the global minimum log level to output
	Level LogLevel
	// CategoryLevels allows setting different log levels per category
	CategoryLevels map[LogCategory]LogLevel
	// LogStageTiming enables per-stage duration logs
	LogStageTiming bool
	// LogRewrites enables logging each rule application
	LogRewrites bool
}

// DefaultLoggingConfig returns a logging configuration with no-op
// logger (silent by default).
func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Logger:         &NoOpLogger{},
		Level:          LogLevelOff,
		CategoryLevels: make(map[LogCategory]LogLevel),
		LogStageTiming: false,
		LogRewrites:    false,
	}
}

// NewConsoleLoggingConfig creates a console logging configuration.
func NewConsoleLoggingConfig(level LogLevel) *LoggingConfig {
	config := DefaultLoggingConfig()
	config.Logger = NewConsoleLogger(level)
	config.Level = level
	config.LogStageTiming = (level <= LogLevelInfo)
	config.LogRewrites = (level <= LogLevelDebug)
	return config
}

// logAt routes a message through the category machinery. CategoryLevels
// overrides are pushed into a CategorizedLogger when one is configured;
// plain loggers get the category as a leading key-value pair with the
// override consulted here.
func (lc *LoggingConfig) logAt(level LogLevel, category LogCategory, msg string, keysAndValues ...interface{}) {
	if cl, ok := lc.Logger.(CategorizedLogger); ok {
		cl.LogWithCategory(level, category, msg, keysAndValues...)
		return
	}

	if override, ok := lc.CategoryLevels[category]; ok && level < override {
		return
	}

	keysAndValues = append([]interface{}{"category", string(category)}, keysAndValues...)
	switch level {
	case LogLevelDebug:
		lc.Logger.Debug(msg, keysAndValues...)
	case LogLevelInfo:
		lc.Logger.Info(msg, keysAndValues...)
	case LogLevelWarn:
		lc.Logger.Warn(msg, keysAndValues...)
	case LogLevelError:
		lc.Logger.Error(msg, keysAndValues...)
	}
}

// NoOpLogger is a logger that does nothing (default behavior)
type NoOpLogger struct{}

func (l *NoOpLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (l *NoOpLogger) Info(msg string, keysAndValues ...interface{})  {}
func (l *NoOpLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (l *NoOpLogger) Error(msg string, keysAndValues ...interface{}) {}
func (l *NoOpLogger) IsDebugEnabled() bool                           { return false }
func (l *NoOpLogger) IsInfoEnabled() bool                            { return false }

// ConsoleLogger logs to stdout/stderr with configurable level,
// per-category overrides and formatting
type ConsoleLogger struct {
	level          LogLevel
	categoryLevels map[LogCategory]LogLevel
	outLog         *log.Logger
	errLog         *log.Logger
	mu             sync.RWMutex
	timeFormat     string
}

// NewConsoleLogger creates a new console logger with the specified level
func NewConsoleLogger(level LogLevel) *ConsoleLogger {
	return NewConsoleLoggerWithOutput(level, os.Stdout, os.Stderr)
}

// NewConsoleLoggerWithOutput creates a console logger with custom output writers
func NewConsoleLoggerWithOutput(level LogLevel, stdout, stderr io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		level:          level,
		categoryLevels: make(map[LogCategory]LogLevel),
		outLog:         log.New(stdout, "", 0),
		errLog:         log.New(stderr, "", 0),
		timeFormat:     "2006-01-02 15:04:05.000",
	}
}

// SetLevel updates the log level
func (c *ConsoleLogger) SetLevel(level LogLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = level
}

// SetCategoryLevel sets a per-category level override. A category
// without an override uses the global level.
func (c *ConsoleLogger) SetCategoryLevel(category LogCategory, level LogLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categoryLevels[category] = level
}

func (c *ConsoleLogger) levelFor(category LogCategory) LogLevel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if override, ok := c.categoryLevels[category]; ok {
		return override
	}
	return c.level
}

// IsCategoryEnabled reports whether a message at the given level in the
// given category would be emitted.
func (c *ConsoleLogger) IsCategoryEnabled(category LogCategory, level LogLevel) bool {
	return level >= c.levelFor(category) && level < LogLevelOff
}

// LogWithCategory logs a message gated by the category's effective
// level and tagged with the category name.
func (c *ConsoleLogger) LogWithCategory(level LogLevel, category LogCategory, msg string, keysAndValues ...interface{}) {
	if !c.IsCategoryEnabled(category, level) {
		return
	}

	keysAndValues = append([]interface{}{"category", string(category)}, keysAndValues...)
	line := c.formatMessage(level, msg, keysAndValues...)
	if level >= LogLevelWarn {
		c.errLog.Println(line)
	} else {
		c.outLog.Println(line)
	}
}

func (c *ConsoleLogger) formatMessage(level LogLevel, msg string, keysAndValues ...interface{}) string {
	c.mu.RLock()
	timeFormat := c.timeFormat
	c.mu.RUnlock()

	timestamp := time.Now().Format(timeFormat)
	formatted := fmt.Sprintf("[%s] %s [gopher-estree] %s", timestamp, level.String(), msg)

	// Append key-value pairs
	if len(keysAndValues) > 0 {
		var pairs []string
		for i := 0; i < len(keysAndValues); i += 2 {
			if i+1 < len(keysAndValues) {
				key := fmt.Sprintf("%v", keysAndValues[i])
				value := fmt.Sprintf("%v", keysAndValues[i+1])
				pairs = append(pairs, fmt.Sprintf("%s=%s", key, value))
			}
		}
		if len(pairs) > 0 {
			formatted += " | " + strings.Join(pairs, " ")
		}
	}

	return formatted
}

func (c *ConsoleLogger) currentLevel() LogLevel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

func (c *ConsoleLogger) Debug(msg string, keysAndValues ...interface{}) {
	if c.currentLevel() <= LogLevelDebug {
		c.outLog.Println(c.formatMessage(LogLevelDebug, msg, keysAndValues...))
	}
}

func (c *ConsoleLogger) Info(msg string, keysAndValues ...interface{}) {
	if c.currentLevel() <= LogLevelInfo {
		c.outLog.Println(c.formatMessage(LogLevelInfo, msg, keysAndValues...))
	}
}

func (c *ConsoleLogger) Warn(msg string, keysAndValues ...interface{}) {
	if c.currentLevel() <= LogLevelWarn {
		c.errLog.Println(c.formatMessage(LogLevelWarn, msg, keysAndValues...))
	}
}

func (c *ConsoleLogger) Error(msg string, keysAndValues ...interface{}) {
	if c.currentLevel() <= LogLevelError {
		c.errLog.Println(c.formatMessage(LogLevelError, msg, keysAndValues...))
	}
}

func (c *ConsoleLogger) IsDebugEnabled() bool {
	return c.currentLevel() <= LogLevelDebug
}

func (c *ConsoleLogger) IsInfoEnabled() bool {
	return c.currentLevel() <= LogLevelInfo
}
