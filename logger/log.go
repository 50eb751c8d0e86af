package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
)

// Logger writes structured log messages under a namespace ("ns" field).
type Logger struct {
	ns   string
	base logrus.Fields
	log  *logrus.Logger
}

// NewLogger returns a new Logger instance.
func NewLogger(ns string, conf Config) *Logger {
	l := &Logger{ns: ns, base: logrus.Fields{}, log: logrus.New()}
	l.Configure(conf)
	return l
}

// Configure configures the level, formatter, and output of the logger.
func (l *Logger) Configure(conf Config) {
	l.SetLevel(conf.Level)

	switch conf.Formatter {
	case "json":
		l.SetFormatter(&jsonFormatter{conf: conf.JSONFormat})

	// Default to text
	default:
		l.SetFormatter(&textFormatter{
			TextFormatConfig: conf.TextFormat,
			json:             jsonFormatter{conf: conf.JSONFormat},
		})
	}

	if conf.OutputFile != "" {
		logFile, err := os.OpenFile(
			conf.OutputFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666,
		)
		if err != nil {
			l.Error("Can't open log output file", "output", conf.OutputFile)
		} else {
			l.SetOutput(logFile)
		}
	}
}

// SetLevel sets the logging level.
func (l *Logger) SetLevel(lvl string) {
	switch strings.ToLower(lvl) {
	case "debug":
		l.log.SetLevel(logrus.DebugLevel)
	case "info":
		l.log.SetLevel(logrus.InfoLevel)
	case "warn":
		l.log.SetLevel(logrus.WarnLevel)
	case "error":
		l.log.SetLevel(logrus.ErrorLevel)
	default:
		l.log.SetLevel(logrus.InfoLevel)
	}
}

// SetFormatter sets the formatter.
func (l *Logger) SetFormatter(f logrus.Formatter) {
	l.log.SetFormatter(f)
}

// SetOutput sets the logger output.
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// Discard configures the logger to discard all logs.
func (l *Logger) Discard() {
	l.SetOutput(io.Discard)
}

// Sub returns a child logger with the given namespace and base fields
// added to all of its messages.
func (l *Logger) Sub(ns string, args ...interface{}) *Logger {
	base := logrus.Fields{}
	for k, v := range l.base {
		base[k] = v
	}
	for k, v := range fields(args...) {
		base[k] = v
	}
	return &Logger{ns: ns, base: base, log: l.log}
}

// Debug logs a debug message.
//
// After the first argument, arguments are key-value pairs which are written
// as structured logs.
//
//	log.Debug("Some message here", "key1", value1, "key2", value2)
func (l *Logger) Debug(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry(args...).Debug(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry(args...).Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry(args...).Warn(msg)
}

// Error logs an error message.
//
// Error has a two-argument version that can be used as a shortcut.
//
//	err := startServer()
//	log.Error("Couldn't start server", err)
func (l *Logger) Error(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry(args...).Error(msg)
}

func (l *Logger) entry(args ...interface{}) *logrus.Entry {
	f := logrus.Fields{"ns": l.ns}
	for k, v := range l.base {
		f[k] = v
	}
	for k, v := range fields(args...) {
		f[k] = v
	}
	return l.log.WithFields(f)
}

// PrintSimpleError prints out an error message with a red "ERROR:" prefix.
func PrintSimpleError(err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n", aurora.Red("ERROR:"), err.Error())
}

func fields(args ...interface{}) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			f["error"] = err.Error()
		} else {
			f["unknown"] = args[0]
		}
		return f
	}
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			k = fmt.Sprintf("%v", args[i])
		}
		f[k] = args[i+1]
	}
	if len(args)%2 != 0 {
		f["unknown"] = args[len(args)-1]
	}
	return f
}

// recoverLogErr is used to recover from any panics during logging.
// Panics aren't expected of course, but logging should never crash
// a program, so this failsafe tries to prevent those crashes.
func recoverLogErr() {
	if r := recover(); r != nil {
		fmt.Println("Recovered from logging panic", r)
	}
}
