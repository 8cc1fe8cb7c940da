package history

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/wheelbet/internal/domain"
)

var sessionStart = time.Date(2026, 10, 19, 14, 3, 7, 123456000, time.UTC)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func outcome(label int, bet, gain int64) domain.Outcome {
	return domain.Outcome{
		Segment: domain.Segment{Label: label, Multiplier: label},
		Bet:     bet,
		Gain:    gain,
	}
}

func TestOpen_WritesHeaderAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale line\n"), 0o644))

	l, err := Open(context.Background(), path, "MGA", sessionStart)
	require.NoError(t, err)
	require.NoError(t, l.Close(context.Background(), domain.EndReasonManualClose))

	lines := readLines(t, path)
	assert.Equal(t, []string{
		"=== SESSION START - 2026-10-19 14:03:07.123456 ===",
		"=== GAME OVER (MANUAL CLOSE) ===",
	}, lines)
}

func TestOpen_Unavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "history.txt")

	l, err := Open(context.Background(), path, "MGA", sessionStart)

	assert.Nil(t, l)
	assert.ErrorIs(t, err, domain.ErrResource)
}

func TestRecord_Lines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	l, err := Open(context.Background(), path, "MGA", sessionStart)
	require.NoError(t, err)

	require.NoError(t, l.Record(outcome(5, 1000, 5000)))
	require.NoError(t, l.Record(outcome(0, 2000, 0)))
	require.NoError(t, l.Close(context.Background(), domain.EndReasonGameOver))

	lines := readLines(t, path)
	require.Len(t, lines, 4)
	assert.Equal(t, "Won 5000 MGA | Result: 5", lines[1])
	assert.Equal(t, "Lost 2000 MGA | Result: 0", lines[2])
	assert.Equal(t, "=== GAME OVER ===", lines[3])
}

func TestClose_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	l, err := Open(context.Background(), path, "MGA", sessionStart)
	require.NoError(t, err)

	require.NoError(t, l.Close(context.Background(), domain.EndReasonGameOver))
	require.NoError(t, l.Close(context.Background(), domain.EndReasonManualClose))

	assert.ErrorIs(t, l.Record(outcome(1, 10, 10)), ErrClosed)

	lines := readLines(t, path)
	assert.Equal(t, "=== GAME OVER ===", lines[len(lines)-1])
	assert.Len(t, lines, 2, "second close must not append a marker")
}

func TestFormatOutcome_Currency(t *testing.T) {
	assert.Equal(t, "Won 80 EUR | Result: 8", FormatOutcome(outcome(8, 10, 80), "EUR"))
	assert.Equal(t, "Lost 10 EUR | Result: 0", FormatOutcome(outcome(0, 10, 0), "EUR"))
}
