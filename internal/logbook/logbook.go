package logbook

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logbook appends one line per event to a text file so the UI can tail it
// and the visitor's session can be inspected after the terminal closes.
type Logbook struct {
	path string
	mu   sync.Mutex
	file *os.File
	log  zerolog.Logger
}

// Option customizes a Logbook.
type Option func(*options)

type options struct {
	session string
	clock   func() time.Time
}

// WithSession tags every entry with a session identifier.
func WithSession(id string) Option {
	return func(o *options) { o.session = strings.TrimSpace(id) }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// New creates a logbook that appends to the provided path.
func New(path string, opts ...Option) (*Logbook, error) {
	o := options{clock: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logbook: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logbook: open log file: %w", err)
	}
	return &Logbook{path: path, file: f, log: newLogger(f, o)}, nil
}

func newLogger(w io.Writer, o options) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		TimeFormat:   time.RFC3339,
		TimeLocation: time.UTC,
	}
	ctx := zerolog.New(console).With()
	if o.session != "" {
		ctx = ctx.Str("session", o.session)
	}
	clock := o.clock
	return ctx.Logger().Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		e.Time(zerolog.TimestampFieldName, clock())
	}))
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close releases the file handle.
func (l *Logbook) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logbook) write(level zerolog.Level, message string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	l.log.WithLevel(level).Msg(strings.TrimSpace(message))
}

// Tail returns up to maxLines of the most recent entries and the total
// number of lines in the file.
func (l *Logbook) Tail(maxLines int) ([]string, int) {
	if l == nil || maxLines <= 0 {
		return nil, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.Open(l.path)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	total := len(lines)
	if total > maxLines {
		lines = lines[total-maxLines:]
	}
	return lines, total
}

// Info appends an informational entry.
func (l *Logbook) Info(format string, args ...any) {
	l.write(zerolog.InfoLevel, fmt.Sprintf(format, args...))
}

// Warn appends a warning entry.
func (l *Logbook) Warn(format string, args ...any) {
	l.write(zerolog.WarnLevel, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (l *Logbook) Error(format string, args ...any) {
	l.write(zerolog.ErrorLevel, fmt.Sprintf(format, args...))
}

// Printf lets the logbook serve as a plain printf-style logger.
func (l *Logbook) Printf(format string, args ...any) {
	l.Info(format, args...)
}
