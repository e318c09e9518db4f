package text

import "strings"

// Boxes that span several wires are split into one element per display
// row: a top fragment, any number of middle fragments, and a bottom
// fragment. Every fragment shares the same content width (the box
// name) so the side walls line up, and the name lands on the row
// closest to the vertical center of the box. Rows that correspond to
// an operation argument carry the argument's position as a tag inside
// the left wall.

// multiBoxTop draws the top fragment.
//
//	┌────────┐
//	┤0       ├
//	│        │
func multiBoxTop(name, tag string, fill int, classical bool) *element {
	e := &element{
		top:          rowSpec{pre: "┌" + strings.Repeat("─", fill) + "─", suf: "─┐", conn: "─", pad: '─', bck: ' '},
		mid:          rowSpec{pre: "┤" + ljust(tag, fill, ' ') + " ", suf: " ├", conn: "", pad: ' ', bck: '─'},
		bot:          rowSpec{pre: "│" + strings.Repeat(" ", fill) + " ", suf: " │", conn: " ", pad: ' ', bck: ' '},
		width:        textWidth(name),
		topConnector: map[rune]rune{'│': '┴'},
	}
	if classical {
		e.mid.pre = "╡" + ljust(tag, fill, ' ') + " "
		e.mid.suf = " ╞"
		e.mid.bck = '═'
	}
	return e
}

// multiBoxMid draws a middle fragment. height is the total number of
// rows the box spans and order counts the middle fragments from the
// top, both needed to decide whether the name lands on this fragment.
func multiBoxMid(name, tag string, fill, height, order int, classical bool) *element {
	e := &element{
		top:   rowSpec{pre: "│" + strings.Repeat(" ", fill) + " ", suf: " │", conn: "", pad: ' ', bck: ' '},
		mid:   rowSpec{pre: "┤" + ljust(tag, fill, ' ') + " ", suf: " ├", conn: "", pad: ' ', bck: '─'},
		bot:   rowSpec{pre: "│" + strings.Repeat(" ", fill) + " ", suf: " │", conn: "", pad: ' ', bck: ' '},
		width: textWidth(name),
	}
	if classical {
		e.mid.pre = "╡" + ljust(tag, fill, ' ') + " "
		e.mid.suf = " ╞"
		e.mid.bck = '═'
	}
	// A height-row box renders as 2*height-1 text rows and its
	// vertical center is text row number height. This fragment owns
	// text rows 2*order+2 and 2*order+3.
	if height == order*2+2 {
		e.top.conn = name
	} else if height == order*2+3 {
		e.mid.conn = name
	}
	return e
}

// multiBoxBot draws the bottom fragment. Boxes spanning only two rows
// have no middle fragment, so the name lands on this fragment's top
// row, the inner border between the two wires.
func multiBoxBot(name, tag string, fill, height int, classical, conditional bool) *element {
	botConn := "─"
	if conditional {
		botConn = "┬"
	}
	e := &element{
		top:          rowSpec{pre: "│" + strings.Repeat(" ", fill) + " ", suf: " │", conn: "", pad: ' ', bck: ' '},
		mid:          rowSpec{pre: "┤" + ljust(tag, fill, ' ') + " ", suf: " ├", conn: "", pad: ' ', bck: '─'},
		bot:          rowSpec{pre: "└" + strings.Repeat("─", fill) + "─", suf: "─┘", conn: botConn, pad: '─', bck: ' '},
		width:        textWidth(name),
		botConnector: map[rune]rune{'│': '┬'},
	}
	if classical {
		e.mid.pre = "╡" + ljust(tag, fill, ' ') + " "
		e.mid.suf = " ╞"
		e.mid.bck = '═'
	}
	if height <= 2 {
		e.top.conn = name
	}
	return e
}
