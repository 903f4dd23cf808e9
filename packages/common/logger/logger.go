package logger

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

var Debug atomic.Bool
var Trace atomic.Bool

// Unique ID of this process, stamped on every log entry.
var InstanceID = uuid.NewString()

type Meta map[string]any

// Printed first and without key, only if value is a string.
var positionalMeta = []string{"method", "path"}

// Too verbose for a single line, file logs still keep them in meta.
var hiddenMeta = map[string]bool{
	"addr":       true,
	"user_agent": true,
	"browser":    true,
	"os":         true,
	"bot":        true,
}

// Formats meta as " (GET /path key=value ...)", keys after positional ones are sorted.
func (m Meta) stringSuffix() string {
	if len(m) == 0 {
		return ""
	}

	parts := make([]string, 0, len(m))

	for _, key := range positionalMeta {
		if v, ok := m[key].(string); ok && v != "" {
			parts = append(parts, v)
		}
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		if hiddenMeta[key] || slices.Contains(positionalMeta, key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parts = append(parts, key+"="+fmt.Sprint(m[key]))
	}

	if len(parts) == 0 {
		return ""
	}

	return " (" + strings.Join(parts, " ") + ")"
}

type Logger interface {
	Log(entry *LogEntry)
	// Just logs specified entry.
	// This method mustn't cause any side effects and mostly required for ForwardingLogger.
	// e.g. entry with panic level won't cause panic when
	// forwarded to another logger, only when main logger will handle it
	log(entry *LogEntry)
}

// Logger that can forward logs to another loggers.
type ForwardingLogger interface {
	Logger

	// Binds another logger to this logger.
	// On calling Log() it also will be called on all binded loggers
	// (entry will be the same for all loggers)
	//
	// Can't bind to self. Can't bind to one logger more then once.
	NewForwarding(logger Logger) error

	// Removes existing forwarding.
	// Will return error if forwading to specified logger isn't exist.
	RemoveForwarding(logger Logger) error
}

// Returns false if log must not be processed
func preprocess(entry *LogEntry, forwardings []Logger) bool {
	if !entry.rawLevel.enabled() {
		return false
	}

	for _, forwarding := range forwardings {
		// Must call log() not Log(), since log() just doing logging
		// without any additional side effects.
		forwarding.log(entry)
	}

	return true
}

// If log entry rawLevel is:
//   - FatalLogLevel: will call os.Exit(1)
//   - PanicLogLevel: will cause panic with entry.Message and entry.Error
func handleCritical(entry *LogEntry) {
	if entry.rawLevel == PanicLogLevel {
		panic(entry.Message + "\n" + entry.Error)
	}
	os.Exit(1)
}

var Default = NewFileLogger("classroom")

var Stdout = newStdoutLogger()

var Stderr = newStderrLogger()
