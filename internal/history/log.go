package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/logger"
)

// ErrClosed is returned when writing to a log that was already closed
var ErrClosed = errors.New("history log is closed")

// Log is the append-only, per-session history file.
// It is opened in truncate mode and must be closed exactly once.
type Log struct {
	file     *os.File
	path     string
	currency string
	mu       sync.Mutex
	closed   bool
}

// Open truncates (or creates) the file at path and writes the session header.
// Failures wrap domain.ErrResource.
func Open(ctx context.Context, path, currency string, now time.Time) (*Log, error) {
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, FilePermissions)
	if err != nil {
		return nil, fmt.Errorf("%w: open history file %s: %v", domain.ErrResource, path, err)
	}

	l := &Log{file: f, path: path, currency: currency}
	if err := l.writeLine(fmt.Sprintf(HeaderFormat, now.Format(TimestampLayout))); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: write history header: %v", domain.ErrResource, err)
	}

	logger.FromContext(ctx).Info(LogMsgHistoryOpened, "path", path)
	return l, nil
}

// FormatOutcome renders the history line for one spin
func FormatOutcome(o domain.Outcome, currency string) string {
	if o.IsWin() {
		return fmt.Sprintf(WonFormat, o.Gain, currency, o.Segment.Label)
	}
	return fmt.Sprintf(LostFormat, o.Bet, currency, o.Segment.Label)
}

// Marker returns the closing line for reason
func Marker(reason domain.EndReason) string {
	if reason == domain.EndReasonManualClose {
		return MarkerManualClose
	}
	return MarkerGameOver
}

// Record appends one outcome line
func (l *Log) Record(o domain.Outcome) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	return l.writeLine(FormatOutcome(o, l.currency))
}

// Close writes the closing marker for reason and releases the file.
// Calling Close again is a no-op.
func (l *Log) Close(ctx context.Context, reason domain.EndReason) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	werr := l.writeLine(Marker(reason))
	cerr := l.file.Close()

	logger.FromContext(ctx).Info(LogMsgHistoryClosed, "path", l.path, "reason", reason)
	return errors.Join(werr, cerr)
}

// Path returns the file location
func (l *Log) Path() string {
	return l.path
}

func (l *Log) writeLine(line string) error {
	_, err := l.file.WriteString(line + "\n")
	return err
}
