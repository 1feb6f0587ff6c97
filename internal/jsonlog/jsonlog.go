package jsonlog

import (
	"encoding/json"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
	FatalLevel
	OffLevel
)

type Level int8

type Logger struct {
	out   io.Writer
	level Level
	mu    sync.Mutex
	now   func() time.Time
}

func (lv Level) String() string {
	switch lv {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return ""
	}
}

// New returns a logger that drops entries below level.
func New(out io.Writer, level Level) *Logger {
	return &Logger{
		out:   out,
		level: level,
		now:   time.Now,
	}
}

func (l *Logger) Debug(message string, properties map[string]string) {
	l.print(DebugLevel, message, properties)
}

func (l *Logger) Info(message string, properties map[string]string) {
	l.print(InfoLevel, message, properties)
}

func (l *Logger) Error(err error, properties map[string]string) {
	l.print(ErrorLevel, err.Error(), properties)
}

func (l *Logger) FatalErr(err error, properties map[string]string) {
	l.print(FatalLevel, err.Error(), properties)
	os.Exit(1)
}

func (l *Logger) print(level Level, message string, properties map[string]string) (int, error) {
	if level < l.level || level >= OffLevel {
		return 0, nil
	}

	aux := struct {
		Level      string            `json:"level"`
		Time       string            `json:"time"`
		Message    string            `json:"message"`
		Properties map[string]string `json:"properties,omitempty"`
		Trace      string            `json:"trace,omitempty"`
	}{
		Level:      level.String(),
		Time:       l.now().UTC().Format(time.RFC3339),
		Message:    message,
		Properties: properties,
	}

	if level >= ErrorLevel {
		aux.Trace = string(debug.Stack())
	}

	line, err := json.Marshal(aux)
	if err != nil {
		line = []byte(ErrorLevel.String() + ": unable to marshal log message: " + err.Error())
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Write(append(line, '\n'))
}

// Write lets the logger back a log.Logger, e.g. http.Server.ErrorLog. Every
// line lands at ERROR.
func (l *Logger) Write(b []byte) (int, error) {
	n := len(b)
	if _, err := l.print(ErrorLevel, strings.TrimRight(string(b), "\n"), nil); err != nil {
		return 0, err
	}

	return n, nil
}
