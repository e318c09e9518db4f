package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// textWidth returns the display width of s in terminal cells. The box
// drawing glyphs used here are all one cell; East Asian wide runes in
// user-supplied labels count as two.
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}

// center pads s with pad on both sides up to width cells. When the
// margin is uneven the extra cell goes left for odd widths and right
// for even ones, which keeps single-glyph connectors on the same
// column as the wire centers above and below.
func center(s string, width int, pad rune) string {
	marg := width - textWidth(s)
	if marg <= 0 {
		return s
	}
	left := marg/2 + (marg & width & 1)
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), marg-left)
}

// ljust pads s with pad on the right up to width cells.
func ljust(s string, width int, pad rune) string {
	marg := width - textWidth(s)
	if marg <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), marg)
}

// rowSpec describes one of the three text rows of an element: a fixed
// prefix and suffix around a connector string that is centered in the
// element's content width. pad fills around the connector, bck fills
// the leftovers when the whole row is widened to the column width.
type rowSpec struct {
	pre  string
	suf  string
	conn string
	pad  rune
	bck  rune
}

// element is a drawable cell: one operation glyph (or fragment of a
// taller glyph) on one wire, rendered as three rows of equal width.
// Elements in the same column all render at the column's layerWidth so
// the wires line up.
type element struct {
	top rowSpec
	mid rowSpec
	bot rowSpec

	// width is the content width between prefix and suffix, normally
	// the width of the gate label.
	width int

	// rightFill, when set, extends every row to this total width with
	// the row's pad glyph. It reserves room for an inline connector
	// label hanging off the right side of the element.
	rightFill int

	// layerWidth is the column width, assigned once the whole column
	// is known.
	layerWidth int

	// topConnector and botConnector translate an incoming vertical
	// wire glyph into the connector drawn on that edge. A nil map
	// means the edge does not accept connections.
	topConnector map[rune]rune
	botConnector map[rune]rune
}

func (e *element) renderRow(r rowSpec) string {
	s := r.pre + center(r.conn, e.width, r.pad) + r.suf
	if e.rightFill > 0 {
		s = ljust(s, e.rightFill, r.pad)
	}
	return center(s, e.layerWidth, r.bck)
}

func (e *element) topRow() string { return e.renderRow(e.top) }
func (e *element) midRow() string { return e.renderRow(e.mid) }
func (e *element) botRow() string { return e.renderRow(e.bot) }

// length is the natural width of the element before column
// normalization.
func (e *element) length() int {
	n := e.rightFill
	for _, r := range []rowSpec{e.top, e.mid, e.bot} {
		w := e.width
		if c := textWidth(r.conn); c > w {
			w = c
		}
		if l := textWidth(r.pre) + w + textWidth(r.suf); l > n {
			n = l
		}
	}
	return n
}

// connect attaches a vertical wire to the named edges, replacing the
// edge connector according to the element's connector maps.
func (e *element) connect(wire rune, top, bot bool) {
	if top && e.topConnector != nil {
		if c, ok := e.topConnector[wire]; ok {
			e.top.conn = string(c)
		}
	}
	if bot && e.botConnector != nil {
		if c, ok := e.botConnector[wire]; ok {
			e.bot.conn = string(c)
		}
	}
}

// attachLabel hangs an inline connector label off the right side of
// the top row, in place of the last suffix glyph.
func (e *element) attachLabel(label string) {
	if suf := []rune(e.top.suf); len(suf) > 0 {
		e.top.suf = string(suf[:len(suf)-1]) + label
	} else {
		e.top.suf = label
	}
}

// midLength is the natural width of the middle row alone, used to size
// rightFill when an inline label is attached.
func (e *element) midLength() int {
	w := e.width
	if c := textWidth(e.mid.conn); c > w {
		w = c
	}
	return textWidth(e.mid.pre) + w + textWidth(e.mid.suf)
}

// boxOnQuWire draws a labeled box on a quantum wire.
//
//	┌───┐
//	┤ H ├
//	└───┘
func boxOnQuWire(label string, conditional bool) *element {
	botConn := "─"
	if conditional {
		botConn = "┬"
	}
	return &element{
		top:          rowSpec{pre: "┌─", suf: "─┐", conn: "─", pad: '─', bck: ' '},
		mid:          rowSpec{pre: "┤ ", suf: " ├", conn: label, pad: ' ', bck: '─'},
		bot:          rowSpec{pre: "└─", suf: "─┘", conn: botConn, pad: '─', bck: ' '},
		width:        textWidth(label),
		topConnector: map[rune]rune{'│': '┴'},
		botConnector: map[rune]rune{'│': '┬'},
	}
}

// boxOnClWire draws a labeled box on a classical wire, used for the
// "= value" comparison of conditional operations on one-bit registers.
//
//	┌───┐
//	╡ A ╞
//	└───┘
func boxOnClWire(label, topConn string) *element {
	return &element{
		top:   rowSpec{pre: "┌─", suf: "─┐", conn: topConn, pad: '─', bck: ' '},
		mid:   rowSpec{pre: "╡ ", suf: " ╞", conn: label, pad: ' ', bck: '═'},
		bot:   rowSpec{pre: "└─", suf: "─┘", conn: "─", pad: '─', bck: ' '},
		width: textWidth(label),
	}
}

// directOnQuWire draws a glyph directly on a quantum wire, with no box
// around it.
func directOnQuWire(label string) *element {
	return &element{
		top:          rowSpec{pre: " ", suf: " ", conn: " ", pad: ' ', bck: ' '},
		mid:          rowSpec{pre: "─", suf: "─", conn: label, pad: '─', bck: '─'},
		bot:          rowSpec{pre: " ", suf: " ", conn: " ", pad: ' ', bck: ' '},
		width:        textWidth(label),
		topConnector: map[rune]rune{'│': '│', '║': '║'},
		botConnector: map[rune]rune{'│': '│', '║': '║'},
	}
}

// bullet draws a control dot.
//
//	─■─
//	 │
func bullet(conditional bool) *element {
	e := directOnQuWire("■")
	if conditional {
		e.bot.conn = "│"
	}
	return e
}

// exGlyph draws one side of a swap.
//
//	─X─
//	 │
func exGlyph(conditional bool) *element {
	e := directOnQuWire("X")
	if conditional {
		e.bot.conn = "│"
	}
	return e
}

// resetGlyph draws a reset back to the ground state.
func resetGlyph(conditional bool) *element {
	e := directOnQuWire("|0>")
	if conditional {
		e.bot.conn = "│"
	}
	return e
}

// barrierGlyph draws a barrier column fragment on one wire.
//
//	 ░
//	─░─
//	 ░
func barrierGlyph() *element {
	e := directOnQuWire("░")
	e.top.conn = "░"
	e.bot.conn = "░"
	e.topConnector = nil
	e.botConnector = nil
	return e
}

// measureFrom draws the quantum side of a measurement.
//
//	┌─┐
//	┤M├
//	└╥┘
func measureFrom() *element {
	return &element{
		top:   rowSpec{conn: "┌─┐", pad: ' ', bck: ' '},
		mid:   rowSpec{conn: "┤M├", pad: '─', bck: '─'},
		bot:   rowSpec{conn: "└╥┘", pad: ' ', bck: ' '},
		width: 3,
	}
}

// measureTo draws the classical side of a measurement.
//
//	 ║
//	═╩═
func measureTo() *element {
	return &element{
		top:   rowSpec{conn: " ║ ", pad: ' ', bck: ' '},
		mid:   rowSpec{conn: "═╩═", pad: '═', bck: '═'},
		bot:   rowSpec{conn: "   ", pad: ' ', bck: ' '},
		width: 3,
	}
}

// emptyWire draws a stretch of wire with nothing on it.
func emptyWire(wire rune) *element {
	return &element{
		top:   rowSpec{conn: " ", pad: ' ', bck: ' '},
		mid:   rowSpec{conn: string(wire), pad: wire, bck: wire},
		bot:   rowSpec{conn: " ", pad: ' ', bck: ' '},
		width: 1,
	}
}

// breakWire draws the page-break arrow on one wire.
func breakWire(arrow rune) *element {
	return &element{
		top:   rowSpec{conn: string(arrow), pad: ' ', bck: ' '},
		mid:   rowSpec{conn: string(arrow), pad: ' ', bck: ' '},
		bot:   rowSpec{conn: string(arrow), pad: ' ', bck: ' '},
		width: 1,
	}
}

// inputWire draws the wire name and initial value column.
func inputWire(label string) *element {
	return &element{
		top:   rowSpec{conn: " ", pad: ' ', bck: ' '},
		mid:   rowSpec{conn: label, pad: ' ', bck: ' '},
		bot:   rowSpec{conn: " ", pad: ' ', bck: ' '},
		width: textWidth(label),
	}
}
