package anchor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/fatih/color"
)

const (
	Red = iota
	Green
	Yellow
	Blue
	Magenta
	Cyan
)

var colors = map[int]color.Attribute{
	Red:     color.FgRed,
	Green:   color.FgGreen,
	Yellow:  color.FgYellow,
	Blue:    color.FgBlue,
	Magenta: color.FgMagenta,
	Cyan:    color.FgCyan,
}

// Window is a terminal printer that keeps a set of named,
// transient status lines ("lots") along with regular log lines
type Window struct {
	lock      sync.Mutex
	out       io.Writer
	in        *bufio.Reader
	highlight *color.Color
	dim       *color.Color
	lots      map[string]*Lot
	active    string
}

type Lot struct {
	window *Window
	name   string
	closed bool
}

func New(anchorColor int) *Window {
	attribute, ok := colors[anchorColor]
	if !ok {
		attribute = color.FgRed
	}
	return &Window{
		out:       os.Stdout,
		in:        bufio.NewReader(os.Stdin),
		highlight: color.New(attribute, color.Bold),
		dim:       color.New(color.Faint),
		lots:      make(map[string]*Lot),
	}
}

// SetOutput redirects the window, disabling cursor handling
// which only makes sense on the standard output
func (window *Window) SetOutput(out io.Writer) {
	window.lock.Lock()
	defer window.lock.Unlock()
	window.out = out
}

func (window *Window) SetInput(in io.Reader) {
	window.lock.Lock()
	defer window.lock.Unlock()
	window.in = bufio.NewReader(in)
}

func (window *Window) interactive() bool {
	return window.out == os.Stdout && !color.NoColor
}

// wipe clears the transient status line, if any;
// must be called with the lock held
func (window *Window) wipe() {
	if len(window.active) == 0 {
		return
	}
	if window.interactive() {
		cursor.ClearLine()
		fmt.Fprint(window.out, "\r")
	}
	window.active = ""
}

func (window *Window) println(text string) {
	window.lock.Lock()
	defer window.lock.Unlock()
	window.wipe()
	fmt.Fprintln(window.out, text)
}

func (window *Window) Print(args ...interface{}) {
	window.println(fmt.Sprint(args...))
}

func (window *Window) Printf(format string, args ...interface{}) {
	window.println(fmt.Sprintf(format, args...))
}

// AnchorPrintf prints an highlighted line
func (window *Window) AnchorPrintf(format string, args ...interface{}) {
	window.println(window.highlight.Sprintf(format, args...))
}

// Reads prompts the user and returns the trimmed line read
func (window *Window) Reads(prompt string) string {
	window.lock.Lock()
	window.wipe()
	fmt.Fprint(window.out, window.highlight.Sprint(prompt)+" ")
	in := window.in
	window.lock.Unlock()

	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

// Lot returns the status line with the given name,
// creating it if needed or if the previous one got closed
func (window *Window) Lot(name string) *Lot {
	window.lock.Lock()
	defer window.lock.Unlock()
	if lot, ok := window.lots[name]; ok && !lot.closed {
		return lot
	}
	lot := &Lot{window: window, name: name}
	window.lots[name] = lot
	return lot
}

func (lot *Lot) Print(args ...interface{}) {
	lot.show(fmt.Sprint(args...))
}

func (lot *Lot) Printf(format string, args ...interface{}) {
	lot.show(fmt.Sprintf(format, args...))
}

func (lot *Lot) show(text string) {
	window := lot.window
	window.lock.Lock()
	defer window.lock.Unlock()
	if lot.closed {
		return
	}
	line := window.highlight.Sprint(lot.name) + " " + text
	if !window.interactive() {
		// nothing to redraw: status updates are only useful on a terminal
		return
	}
	window.wipe()
	fmt.Fprint(window.out, line)
	window.active = lot.name
}

// Wipe clears the lot status line, if it is the one being shown
func (lot *Lot) Wipe() {
	window := lot.window
	window.lock.Lock()
	defer window.lock.Unlock()
	if window.active == lot.name {
		window.wipe()
	}
}

// Close marks the lot as done, printing a final summary
func (lot *Lot) Close(summary ...string) {
	window := lot.window
	window.lock.Lock()
	defer window.lock.Unlock()
	if lot.closed {
		return
	}
	lot.closed = true
	if window.active == lot.name {
		window.wipe()
	}
	text := "done"
	if len(summary) > 0 {
		text = strings.Join(summary, " ")
	}
	fmt.Fprintln(window.out, window.highlight.Sprint(lot.name)+" "+window.dim.Sprint(text))
}
