package logger

import (
	"time"
)

type logLevel int8

const (
	TraceLogLevel logLevel = iota - 1
	DebugLogLevel
	InfoLogLevel
	WarningLogLevel
	ErrorLogLevel
	// Handled immediately after calling Log(), then os.Exit(1) is called.
	FatalLogLevel
	// Handled immediately after calling Log(), then panics.
	PanicLogLevel
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARNING", "ERROR", "FATAL", "PANIC"}

func (l logLevel) String() string {
	if l < TraceLogLevel || l > PanicLogLevel {
		return "UNKNOWN"
	}
	return levelNames[l-TraceLogLevel]
}

// Debug and trace levels are toggled at runtime via Debug and Trace flags.
func (l logLevel) enabled() bool {
	switch l {
	case TraceLogLevel:
		return Trace.Load()
	case DebugLogLevel:
		return Debug.Load()
	}
	return true
}

// Name of the service in log entries, can be changed via config.
var ServiceName = "classroom"

type LogEntry struct {
	Timestamp time.Time `json:"ts"`
	Service   string    `json:"service"`
	Instance  string    `json:"instance"`
	rawLevel  logLevel
	Level     string `json:"level"`
	Source    string `json:"source,omitempty"`
	Message   string `json:"msg"`
	Error     string `json:"error,omitempty"`
	Meta      Meta   `json:"meta,omitempty"`
}

// Timestamp is time.Now(). err is dropped for levels below ErrorLogLevel.
func NewLogEntry(
	level logLevel,
	src string,
	msg string,
	err string,
	meta Meta,
) LogEntry {
	e := LogEntry{
		Timestamp: time.Now(),
		Service:   ServiceName,
		Instance:  InstanceID,
		rawLevel:  level,
		Level:     level.String(),
		Source:    src,
		Message:   msg,
		Meta:      meta,
	}

	if level >= ErrorLogLevel {
		e.Error = err
	}

	return e
}
