package text

// layer is one column of the drawing: at most one element per display
// row, plus the vertical connections introduced by the operations
// placed in it.
type layer struct {
	elements []*element
	conns    []connection

	// width is the normalized column width, set by normalize.
	width int
}

// connection ties the elements of one operation together with a
// vertical wire. parts are ordered top to bottom in display order. An
// optional label hangs off the right side of the lowest part.
type connection struct {
	label string
	parts []*element
}

func newLayer(rows int) *layer {
	return &layer{elements: make([]*element, rows)}
}

// empty reports whether nothing was placed in the layer, which happens
// when a column held only hidden barriers.
func (l *layer) empty() bool {
	for _, e := range l.elements {
		if e != nil {
			return false
		}
	}
	return true
}

// connectAll draws the vertical wire of every connection: the top part
// is entered from below, the bottom part from above, and everything in
// between is crossed straight through.
func (l *layer) connectAll() {
	for _, cn := range l.conns {
		if len(cn.parts) < 2 {
			continue
		}
		cn.parts[0].connect('│', false, true)
		for _, p := range cn.parts[1 : len(cn.parts)-1] {
			p.connect('│', true, true)
		}
		last := cn.parts[len(cn.parts)-1]
		last.connect('│', true, false)

		if cn.label != "" {
			last.attachLabel(cn.label)
			for _, p := range cn.parts {
				p.rightFill = textWidth(cn.label) + p.midLength()
			}
		}
	}
}

// fill replaces untouched rows with bare wire. Rows at firstClbit and
// below are classical.
func (l *layer) fill(firstClbit int) {
	for i, e := range l.elements {
		if e != nil {
			continue
		}
		if i >= firstClbit {
			l.elements[i] = emptyWire('═')
		} else {
			l.elements[i] = emptyWire('─')
		}
	}
}

// normalize widens every element to the longest one so the column has
// straight edges.
func (l *layer) normalize() {
	longest := 0
	for _, e := range l.elements {
		if n := e.length(); n > longest {
			longest = n
		}
	}
	for _, e := range l.elements {
		e.layerWidth = longest
	}
	l.width = longest
}

// breakLayer builds a column of page-break arrows.
func breakLayer(arrow rune, rows int) *layer {
	l := newLayer(rows)
	for i := range l.elements {
		l.elements[i] = breakWire(arrow)
	}
	l.normalize()
	return l
}

// labelLayer builds the wire-name column from already-formatted names.
func labelLayer(names []string) *layer {
	l := newLayer(len(names))
	for i, name := range names {
		l.elements[i] = inputWire(name)
	}
	l.normalize()
	return l
}
