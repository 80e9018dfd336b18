package audit

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

// Usage log columns, in order.
var header = []string{"Username", "Role", "Action", "Timestamp"}

// timestampLayout is fixed and sortable.
const timestampLayout = "2006-01-02 15:04:05"

// Logger appends audit entries to the usage log. The log is created with a
// header row when absent and is only ever appended to, never rewritten.
type Logger struct {
	path   string
	mirror *Store
	now    func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithMirror adds a database mirror; every entry is also inserted there.
// Mirror failures are reported to stderr and never fail the caller.
func WithMirror(store *Store) Option {
	return func(l *Logger) {
		l.mirror = store
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// NewLogger opens (or creates) the usage log at path.
func NewLogger(path string, opts ...Option) (*Logger, error) {
	l := &Logger{
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	// Bootstrap the header for a new log file.
	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		if err := l.appendRow(header); err != nil {
			return nil, fmt.Errorf("failed to create usage log: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("usage log unavailable: %w", err)
	}
	return l, nil
}

// Log appends one entry for the event. The entry lands in the usage log
// before Log returns; a mirror insert failure does not fail the caller.
func (l *Logger) Log(event Event) error {
	ts := l.now().Format(timestampLayout)
	row := []string{event.Username(), event.Role(), event.Action(), ts}
	if err := l.appendRow(row); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	if l.mirror != nil {
		if err := l.mirror.Save(event, ts); err != nil {
			fmt.Fprintf(os.Stderr, "audit: failed to mirror event: %v\n", err)
		}
	}
	return nil
}

// Close releases the mirror store, if any.
func (l *Logger) Close() error {
	if l.mirror != nil {
		return l.mirror.Close()
	}
	return nil
}

func (l *Logger) appendRow(row []string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(row); err != nil {
		f.Close()
		return err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
