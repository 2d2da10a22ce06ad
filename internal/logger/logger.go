package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultMaxSize = 10 * 1024 * 1024

var (
	log      = newLogger(os.Stderr)
	debugLog *os.File
	logPath  string
)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Options 日志配置
type Options struct {
	Dir     string // 日志目录，为空时使用 ~/.hanabi
	Level   string // logrus 级别名，为空时为 info
	MaxSize int64  // 超过该字节数时轮转，0 表示 10MB
}

// Init initializes the file logger
func Init(opts Options) error {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	logDir := opts.Dir
	if logDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		logDir = filepath.Join(homeDir, ".hanabi")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = defaultMaxSize
	}

	path := filepath.Join(logDir, "debug.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// Rotate if file is too large
	if info, err := f.Stat(); err == nil && info.Size() > maxSize {
		_ = f.Close()
		backupPath := filepath.Join(logDir, fmt.Sprintf("debug.log.%d", time.Now().Unix()))
		_ = os.Rename(path, backupPath)
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create new log file: %w", err)
		}
	}

	Close()
	debugLog = f
	logPath = path
	log.SetOutput(debugLog)
	log.SetLevel(level)

	LogInfo("Logger initialized, log file: %s", logPath)
	return nil
}

// Close closes the log file and falls back to stderr
func Close() {
	if debugLog != nil {
		log.SetOutput(os.Stderr)
		_ = debugLog.Close()
		debugLog = nil
	}
}

// SetOutput redirects log output, mainly for tests
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// LogPanic logs a panic with stack trace
func LogPanic(r interface{}) {
	log.WithField("stack", string(debug.Stack())).Errorf("[PANIC] %v", r)
}

// WithSession returns an entry tagged with the game session ID
func WithSession(id uuid.UUID) *logrus.Entry {
	return log.WithField("session", id.String())
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	return logPath
}
