// Package logging is the process wide leveled logger, a thin layer over logrus.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var levelNames = map[string]logrus.Level{
	"debug":   logrus.DebugLevel,
	"info":    logrus.InfoLevel,
	"warn":    logrus.WarnLevel,
	"warning": logrus.WarnLevel,
	"error":   logrus.ErrorLevel,
}

var baseLogger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05.000000",
		DisableColors:   true,
	})
	return l
}

// SetLogLevel parses and sets the global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	baseLogger.SetLevel(l)
}

// ValidLevel reports whether SetLogLevel understands s.
func ValidLevel(s string) bool {
	_, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// GetLogLevel returns the current global log level.
func GetLogLevel() logrus.Level { return baseLogger.GetLevel() }

// DebugEnabled is true when debug messages are emitted.
func DebugEnabled() bool { return baseLogger.IsLevelEnabled(logrus.DebugLevel) }

// SetOutput redirects log output.
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

func logf(l logrus.Level, format string, args ...interface{}) {
	if !baseLogger.IsLevelEnabled(l) {
		return
	}
	// Without args the input is a finished message; a literal % must not reach fmt.
	if len(args) == 0 {
		baseLogger.Log(l, format)
		return
	}
	baseLogger.Logf(l, format, args...)
}

func Debugf(format string, a ...interface{}) { logf(logrus.DebugLevel, format, a...) }
func Infof(format string, a ...interface{})  { logf(logrus.InfoLevel, format, a...) }
func Warnf(format string, a ...interface{})  { logf(logrus.WarnLevel, format, a...) }
func Errorf(format string, a ...interface{}) { logf(logrus.ErrorLevel, format, a...) }

// TimeTrack logs how long a phase took. Use with defer.
func TimeTrack(start time.Time, label string) {
	dur := time.Since(start)
	Debugf("%s took %s", label, dur)
}
