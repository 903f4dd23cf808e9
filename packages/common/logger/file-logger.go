package logger

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

const queueSize = 1024

var errLogger = NewSource("LOG", Stderr)

var streamPool = sync.Pool{
	New: func() any {
		return jsoniter.NewStream(jsoniter.ConfigFastest, nil, 1024)
	},
}

// Writes log entries as JSON lines into <dir>/<name>.log.
// Until Start() is called entries are only forwarded.
//
// Satisfies Logger and ForwardingLogger interfaces.
type FileLogger struct {
	name        string
	mu          sync.RWMutex
	writeMu     sync.Mutex
	file        *os.File
	queue       chan *LogEntry
	done        chan struct{}
	isRunning   atomic.Bool
	forwardings []Logger
}

func NewFileLogger(name string) *FileLogger {
	return &FileLogger{
		name:        name,
		forwardings: []Logger{},
	}
}

func (l *FileLogger) IsRunning() bool {
	return l.isRunning.Load()
}

// Opens log file inside of dir and starts writer goroutine.
func (l *FileLogger) Start(dir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isRunning.Load() {
		return errors.New("logger already started")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(
		filepath.Join(dir, l.name+".log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644, // -rw-r--r--
	)
	if err != nil {
		return err
	}

	l.file = f
	l.queue = make(chan *LogEntry, queueSize)
	l.done = make(chan struct{})
	l.isRunning.Store(true)

	go l.consume(l.queue, l.done)

	return nil
}

// Flushes all pending entries and closes log file.
func (l *FileLogger) Stop() error {
	l.mu.Lock()

	if !l.isRunning.Load() {
		l.mu.Unlock()
		return errors.New("logger isn't started, hence can't be stopped")
	}

	l.isRunning.Store(false)
	close(l.queue)

	l.mu.Unlock()

	<-l.done

	return l.file.Close()
}

func (l *FileLogger) consume(queue <-chan *LogEntry, done chan<- struct{}) {
	for entry := range queue {
		l.write(entry)
	}
	close(done)
}

func (l *FileLogger) write(entry *LogEntry) {
	stream := streamPool.Get().(*jsoniter.Stream)
	defer streamPool.Put(stream)

	stream.Reset(nil)
	stream.Error = nil

	stream.WriteVal(entry)
	if stream.Error != nil {
		errLogger.Error("failed to write log", stream.Error.Error(), nil)
		return
	}

	// Without this all logs will be written in single line
	stream.WriteRaw("\n")

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	if _, err := l.file.Write(stream.Buffer()); err != nil {
		errLogger.Error("failed to write log", err.Error(), nil)
	}
}

func (l *FileLogger) Log(entry *LogEntry) {
	l.mu.RLock()

	if !preprocess(entry, l.forwardings) {
		l.mu.RUnlock()
		return
	}

	// Immediatly handle panic or fatal log
	if entry.rawLevel >= FatalLogLevel {
		if l.isRunning.Load() {
			l.write(entry)
		}
		l.mu.RUnlock()
		handleCritical(entry)
		return
	}

	if l.isRunning.Load() {
		select {
		case l.queue <- entry:
		default:
			// queue is overflowed
			l.write(entry)
		}
	}

	l.mu.RUnlock()
}

func (l *FileLogger) log(entry *LogEntry) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.isRunning.Load() {
		l.write(entry)
	}
}

func (l *FileLogger) NewForwarding(logger Logger) error {
	if logger == nil {
		return errors.New("received nil instead of logger")
	}

	if fl, ok := logger.(*FileLogger); ok && fl == l {
		return errors.New("can't create forwarding to self")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if slices.Contains(l.forwardings, logger) {
		return errors.New("this logger already has forwarding")
	}

	l.forwardings = append(l.forwardings, logger)

	return nil
}

func (l *FileLogger) RemoveForwarding(logger Logger) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.Index(l.forwardings, logger)
	if idx == -1 {
		return errors.New("forwarding to this logger doesn't exist")
	}

	l.forwardings = slices.Delete(l.forwardings, idx, idx+1)

	return nil
}
