package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger writes to files so it never draws over the TUI
type Logger struct {
	fileLogger       *log.Logger
	submissionLogger *log.Logger
	logFile          *os.File
	submissionFile   *os.File
	mu               sync.Mutex
}

// Init initializes the global logger instance in dir
func Init(dir string) error {
	var err error
	once.Do(func() {
		instance, err = newLogger(dir)
	})
	return err
}

func newLogger(dir string) (*Logger, error) {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logPath := filepath.Join(dir, "charform.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	submissionPath := filepath.Join(dir, "submissions.log")
	submissionFile, err := os.OpenFile(submissionPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to open submissions log file: %w", err)
	}

	return &Logger{
		fileLogger:       log.New(logFile, "", log.LstdFlags|log.Lshortfile),
		submissionLogger: log.New(submissionFile, "", log.LstdFlags),
		logFile:          logFile,
		submissionFile:   submissionFile,
	}, nil
}

// Info logs an info message
func Info(format string, args ...any) {
	if instance != nil {
		instance.log("INFO", format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...any) {
	if instance != nil {
		instance.log("ERROR", format, args...)
	}
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	if instance != nil {
		instance.log("DEBUG", format, args...)
	}
}

// Submission records a submission lifecycle event in the submissions log
func Submission(event string, data any) {
	if instance != nil {
		instance.submissionLog(event, data)
	}
}

func (l *Logger) log(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	l.fileLogger.Output(3, fmt.Sprintf("[%s] %s", level, message))
}

func (l *Logger) submissionLog(event string, data any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.submissionLogger.Printf("[%s] %+v", event, data)
}

// Close closes both log files
func Close() error {
	if instance == nil {
		return nil
	}
	var err1, err2 error
	if instance.logFile != nil {
		err1 = instance.logFile.Close()
	}
	if instance.submissionFile != nil {
		err2 = instance.submissionFile.Close()
	}
	if err1 != nil {
		return err1
	}
	return err2
}

// SetOutput redirects both logs to w (useful for testing)
func SetOutput(w io.Writer) {
	if instance != nil {
		instance.mu.Lock()
		defer instance.mu.Unlock()
		instance.fileLogger.SetOutput(w)
		instance.submissionLogger.SetOutput(w)
	}
}
