package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/utils"
	"github.com/osse101/wheelbet/internal/wheel"
)

// Options controls terminal rendering
type Options struct {
	Currency string
	NoColor  bool
}

// Display renders the session to a terminal. The wheel is drawn as a strip
// of segments centered on the pointer and redrawn in place every frame.
//
// Display is safe for concurrent use; the game loop draws while the input
// goroutine reports typed lines.
type Display struct {
	mu       sync.Mutex
	w        io.Writer
	layout   *wheel.Layout
	currency string
	color    bool
	midLine  bool
	closed   bool
	strips   *expirable.LRU[int, string]
}

// NewDisplay creates a terminal display for layout
func NewDisplay(w io.Writer, layout *wheel.Layout, opts Options) *Display {
	return &Display{
		w:        w,
		layout:   layout,
		currency: opts.Currency,
		color:    !opts.NoColor,
		strips:   expirable.NewLRU[int, string](StripCacheSize, nil, 0),
	}
}

// ShowWheel redraws the strip for the current rotation
func (d *Display) ShowWheel(state domain.SpinState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	line := d.strip(wheel.PointerIndex(state.AngleOffset, d.layout))
	if state.Active {
		line += fmt.Sprintf("  %d/%d", state.ElapsedTicks, state.TotalTicks)
	}

	if d.color {
		fmt.Fprint(d.w, "\r"+ansiClearLine+line)
	} else {
		fmt.Fprint(d.w, "\r"+line)
	}
	d.midLine = true
}

// ShowBalance prints the balance and, while money remains, the bet prompt
func (d *Display) ShowBalance(balance int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.newLine()
	text := fmt.Sprintf(MsgBalanceFormat, utils.FormatAmount(balance, d.currency))
	if balance <= 0 {
		d.println(text)
		return
	}
	fmt.Fprint(d.w, d.paint(text, "", ansiBold)+MsgBetPrompt)
	d.midLine = true
}

// ShowResult prints the settled outcome in green or red
func (d *Display) ShowResult(o domain.Outcome) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.newLine()
	d.println(d.paint(FormatResult(o, d.currency), resultColor(o), ansiBold))
}

// ShowError reports rejected input and re-prompts
func (d *Display) ShowError(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.newLine()
	fmt.Fprint(d.w, d.paint(MsgErrorPrefix+message, ColorLoss, "")+MsgBetPrompt)
	d.midLine = true
}

// ShowNotice prints a terminal message such as game over
func (d *Display) ShowNotice(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.newLine()
	d.println(d.paint(message, "", ansiBold))
}

// LineEntered tells the display the player finished a line, so the cursor
// is already at the start of a fresh row.
func (d *Display) LineEntered() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.midLine = false
}

// Close prints the closing line once; later draws are ignored
func (d *Display) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true

	d.newLine()
	_, err := fmt.Fprintln(d.w, MsgSessionClosed)
	return err
}

// FormatResult renders the result line shown to the player
func FormatResult(o domain.Outcome, currency string) string {
	if o.IsWin() {
		return fmt.Sprintf(MsgWonFormat, utils.FormatAmount(o.Gain, currency), o.Segment.Label)
	}
	return fmt.Sprintf(MsgLostFormat, utils.FormatAmount(o.Bet, currency), o.Segment.Label)
}

func resultColor(o domain.Outcome) string {
	if o.IsWin() {
		return ColorWin
	}
	return ColorLoss
}

// strip returns the cached rendering for a pointer index. Index i+1 sits to
// the left of i because segments advance counter-clockwise past the top.
func (d *Display) strip(pointer int) string {
	if s, ok := d.strips.Get(pointer); ok {
		return s
	}

	var b strings.Builder
	for k := StripRadius; k >= -StripRadius; k-- {
		seg := d.layout.Segment(pointer + k)
		cell := fmt.Sprintf(" %2d ", seg.Label)
		if k == 0 {
			cell = fmt.Sprintf("[%2d]", seg.Label)
		}
		if d.color {
			b.WriteString(background(seg.Color) + foreground(ColorText) + cell + ansiReset)
		} else {
			b.WriteString(cell)
		}
	}

	s := b.String()
	d.strips.Add(pointer, s)
	return s
}

func (d *Display) paint(text, hex, style string) string {
	if !d.color {
		return text
	}
	prefix := style
	if hex != "" {
		prefix += foreground(hex)
	}
	if prefix == "" {
		return text
	}
	return prefix + text + ansiReset
}

func (d *Display) newLine() {
	if d.midLine {
		fmt.Fprintln(d.w)
		d.midLine = false
	}
}

func (d *Display) println(text string) {
	fmt.Fprintln(d.w, text)
	d.midLine = false
}

func foreground(hex string) string {
	r, g, b := hexToRGB(hex)
	return fmt.Sprintf(ansiFgFormat, r, g, b)
}

func background(hex string) string {
	r, g, b := hexToRGB(hex)
	return fmt.Sprintf(ansiBgFormat, r, g, b)
}

// hexToRGB parses "#rrggbb"; anything else renders as mid grey
func hexToRGB(hex string) (uint8, uint8, uint8) {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil || len(strings.TrimPrefix(hex, "#")) != 6 {
		return 128, 128, 128
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}
