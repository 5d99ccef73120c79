// Package telemetry centralizes the log.Printf-style diagnostics used
// across the transport, transaction, and command class layers so frame
// hex-dumps and verbosity levels stay consistent.
package telemetry

import (
	"encoding/hex"
	"fmt"
	"log"
)

// Logger is a small leveled wrapper over the standard log package. The zero
// value logs everything, Debug included, through the default logger; a nil
// *Logger logs through it at Info level and above.
type Logger struct {
	prefix string
	level  Level
}

// Level controls which calls actually reach the underlying log.Logger.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// New returns a Logger that tags every line with prefix and suppresses
// anything below level.
func New(prefix string, level Level) *Logger {
	return &Logger{prefix: prefix, level: level}
}

func (l *Logger) log(level Level, tag, format string, args ...interface{}) {
	if l == nil {
		l = New("", LevelInfo)
	}
	if level < l.level {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if l.prefix != "" {
		log.Printf("%s %s %s", l.prefix, tag, msg)
		return
	}
	log.Printf("%s %s", tag, msg)
}

// Debugf logs a debug-level frame trace, e.g. raw byte hex dumps.
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(LevelDebug, "DEBUG", format, args...) }

// Infof logs an accepted transaction or discovery event.
func (l *Logger) Infof(format string, args ...interface{}) { l.log(LevelInfo, "INFO", format, args...) }

// Warnf logs a retried read or a degraded (but non-fatal) node.
func (l *Logger) Warnf(format string, args ...interface{}) { l.log(LevelWarn, "WARN", format, args...) }

// Errorf logs a NAK/CAN, checksum failure, or other protocol violation.
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(LevelError, "ERROR", format, args...) }

// ParseLevel converts a command-line-style level name to a Level,
// defaulting to LevelInfo for anything unrecognized.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// HexDump formats b as a lowercase hex string for TX/RX frame logging,
// mirroring the teacher's hex.EncodeToString usage.
func HexDump(b []byte) string {
	return hex.EncodeToString(b)
}
