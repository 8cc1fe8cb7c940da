package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osse101/wheelbet/internal/utils"
)

// Input reads player lines from a terminal
type Input struct {
	scanner *bufio.Scanner
}

// NewInput wraps r
func NewInput(r io.Reader) *Input {
	return &Input{scanner: bufio.NewScanner(r)}
}

// ResolveBalance applies the starting balance rule: a whole number in
// [min, max] is taken as is, anything else falls back to def. The second
// result reports whether raw was accepted.
func ResolveBalance(raw string, min, max, def int64) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v < min || v > max {
		return def, false
	}
	return v, true
}

// PromptBalance asks for the starting balance on w. Input that is not a
// whole number in [min, max], and end of input, start the game with def.
func (in *Input) PromptBalance(w io.Writer, min, max, def int64, currency string) int64 {
	fmt.Fprintf(w, MsgBalancePrompt, utils.FormatAmount(min, currency), utils.FormatAmount(max, currency), utils.FormatAmount(def, currency))

	raw := ""
	if in.scanner.Scan() {
		raw = in.scanner.Text()
	}

	balance, ok := ResolveBalance(raw, min, max, def)
	if !ok && strings.TrimSpace(raw) != "" {
		fmt.Fprintf(w, MsgBalanceDefaulted+"\n", utils.FormatAmount(def, currency))
	}
	return balance
}

// IsQuit reports whether line asks to close the session
func IsQuit(line string) bool {
	cmd := strings.ToLower(strings.TrimSpace(line))
	for _, q := range QuitCommands {
		if cmd == q {
			return true
		}
	}
	return false
}

// ReadBets delivers every bet line to onBet until the player quits or input
// ends, then calls onQuit once. It blocks on the reader.
func (in *Input) ReadBets(onBet func(line string), onQuit func()) error {
	defer onQuit()

	for in.scanner.Scan() {
		line := in.scanner.Text()
		if IsQuit(line) {
			return nil
		}
		onBet(line)
	}
	return in.scanner.Err()
}
