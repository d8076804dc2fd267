package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	// DEBUG level for per-directory and per-icon detail
	DEBUG LogLevel = iota
	// INFO level for run progress and summaries
	INFO
	// WARN level for swallowed, non-fatal failures
	WARN
	// ERROR level for failures that degrade output
	ERROR
	// FATAL level for startup failures that abort the run
	FATAL
)

var (
	currentLevel LogLevel = INFO

	levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

	logFile *os.File
)

// parseLevel maps a LOG_LEVEL string to its LogLevel, defaulting to INFO.
func parseLevel(s string) (LogLevel, bool) {
	for i, name := range levelNames {
		if strings.ToUpper(s) == name {
			return LogLevel(i), true
		}
	}
	return INFO, false
}

// Init configures the log threshold from LOG_LEVEL and attaches the log file.
func Init() {
	if err := setupLogFile(); err != nil {
		log.Printf("Failed to setup log file: %v, logging to stdout only", err)
	}

	log.SetFlags(0)
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		currentLevel = INFO
		return
	}

	level, ok := parseLevel(logLevel)
	if !ok {
		log.Printf("Invalid LOG_LEVEL: %s, defaulting to INFO", logLevel)
	}
	currentLevel = level
}

// formatMessage formats a log message with timestamp and level
func formatMessage(level LogLevel, format string, args ...interface{}) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	return fmt.Sprintf("%s [%s] %s", timestamp, levelNames[level], message)
}

// Debug logs a message at DEBUG level
func Debug(format string, args ...interface{}) {
	if currentLevel <= DEBUG {
		log.Println(formatMessage(DEBUG, format, args...))
	}
}

// Info logs a message at INFO level
func Info(format string, args ...interface{}) {
	if currentLevel <= INFO {
		log.Println(formatMessage(INFO, format, args...))
	}
}

// Warn logs a message at WARN level
func Warn(format string, args ...interface{}) {
	if currentLevel <= WARN {
		log.Println(formatMessage(WARN, format, args...))
	}
}

// Error logs a message at ERROR level
func Error(format string, args ...interface{}) {
	if currentLevel <= ERROR {
		log.Println(formatMessage(ERROR, format, args...))
	}
}

// Fatal logs a message at FATAL level and then exits the application
func Fatal(format string, args ...interface{}) {
	log.Fatalln(formatMessage(FATAL, format, args...))
}

// setupLogFile appends to logs/archindex.log next to the working directory.
func setupLogFile() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %v", err)
	}

	logsDir := filepath.Join(cwd, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	file, err := os.OpenFile(filepath.Join(logsDir, "archindex.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}

	logFile = file
	log.SetOutput(io.MultiWriter(file, os.Stdout))
	return nil
}

func Close() {
	if logFile != nil {
		logFile.Close()
	}
}
