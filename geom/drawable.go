package geom

import (
	"fmt"
	"io"
	"strings"

	"github.com/hnimtadd/fixture/textutil"
	dw "github.com/mattn/go-runewidth"
)

// Drawable is anything that can render a human readable form of itself.
type Drawable interface {
	Draw(w io.Writer) error
}

func (p Point) Draw(w io.Writer) error {
	_, err := fmt.Fprintln(w, p.String())
	return err
}

type entry struct {
	name string
	item Drawable
}

// Canvas draws a list of named drawables, one per line. Names are padded to
// the widest one, measured in terminal cells, so labels line up even with
// wide runes in the names.
type Canvas struct {
	entries []entry

	// Cell width rules. Never the process wide dw.DefaultCondition, which
	// follows LC_ALL/LANG.
	cond *dw.Condition
}

type CanvasOptions struct {
	// Count East Asian ambiguous runes (e.g. "é") as two cells instead of one.
	EastAsianWidth bool
}

func NewCanvas(opts CanvasOptions) *Canvas {
	cond := dw.NewCondition()
	cond.EastAsianWidth = opts.EastAsianWidth
	return &Canvas{cond: cond}
}

// Add appends d under name. The name is trimmed and NFC normalized first.
func (c *Canvas) Add(name string, d Drawable) {
	c.entries = append(c.entries, entry{name: textutil.Format(name), item: d})
}

func (c *Canvas) Len() int {
	return len(c.entries)
}

// Draw writes every entry as "<name> | <label>".
func (c *Canvas) Draw(w io.Writer) error {
	width := 0
	for _, e := range c.entries {
		width = max(width, c.cond.StringWidth(e.name))
	}

	var buf strings.Builder
	for _, e := range c.entries {
		buf.Reset()
		if err := e.item.Draw(&buf); err != nil {
			return fmt.Errorf("draw %q: %w", e.name, err)
		}
		label := strings.TrimRight(buf.String(), "\n")
		if _, err := fmt.Fprintf(w, "%s | %s\n", c.cond.FillRight(e.name, width), label); err != nil {
			return err
		}
	}
	return nil
}
