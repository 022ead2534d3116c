package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// Options controls where and how much the application logs.
type Options struct {
	// File is the rotated log file; empty logs to stdout.
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup points logrus at a rotating file (or stdout) and returns the writer
// so request logs can share it.
func Setup(opts Options) (io.Writer, error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, err
		}
		out = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB, // megabytes
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays, // days
			Compress:   true,
		}
	}

	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetLevel(level)
	return out, nil
}

// GormLogger routes gorm's SQL log through logrus. Statements are only logged
// at debug level; slow ones and errors always are.
func GormLogger() gormlogger.Interface {
	level := gormlogger.Warn
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}
	return gormlogger.New(logrus.StandardLogger(), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Requests logs one line per HTTP request into out. /healthz is not logged.
func Requests(out io.Writer) gin.HandlerFunc {
	return ginlog.SetLogger(
		ginlog.WithWriter(out),
		ginlog.WithUTC(true),
		ginlog.WithSkipPath([]string{"/healthz"}),
	)
}
