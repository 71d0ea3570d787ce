package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotationConfig controls size-based log file rotation
type RotationConfig struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultRotation returns the rotation settings used when none are given
func DefaultRotation(filename string) RotationConfig {
	return RotationConfig{
		Filename:   filename,
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Compress:   true,
	}
}

// NewRotatingWriter returns a writer that appends to the configured file
// and rotates it by size, keeping a bounded number of compressed backups
func NewRotatingWriter(cfg RotationConfig) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// NewRotatingFileAdapter creates a zerolog adapter writing structured
// events to a rotated log file
func NewRotatingFileAdapter(cfg RotationConfig) Adapter {
	return NewZerologAdapterWithWriter(NewRotatingWriter(cfg))
}
