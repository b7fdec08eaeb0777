package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ratel-online/duel/uno/card/color"
)

// Display serializes writes coming from the input loop and from bot timers.
type Display struct {
	sync.Mutex
	out  io.Writer
	pace time.Duration
}

// NewDisplay writes to out, pausing for pace after every message. A nil out
// means the colored terminal.
func NewDisplay(out io.Writer, pace time.Duration) *Display {
	if out == nil {
		out = color.Stdout
	}
	return &Display{out: out, pace: pace}
}

func (d *Display) Print(text string) {
	if text == "" {
		return
	}
	d.Lock()
	defer d.Unlock()
	_, _ = fmt.Fprint(d.out, text)
	if d.pace > 0 {
		time.Sleep(d.pace)
	}
}

func (d *Display) Println(args ...interface{}) {
	d.Print(fmt.Sprintln(args...))
}
