package text

import (
	"sort"
	"strconv"

	"github.com/levbishop/qdraw/pkg/circuit"
)

// builder turns the operation list into columns. It owns the mapping
// from flat wire indices to display rows, which is where bit reversal
// happens.
type builder struct {
	c   *circuit.Circuit
	cfg config
	nq  int
	nc  int
}

func newBuilder(c *circuit.Circuit, cfg config) *builder {
	return &builder{c: c, cfg: cfg, nq: c.NumQubits(), nc: c.NumClbits()}
}

func (b *builder) rows() int { return b.nq + b.nc }

func (b *builder) rowOfQubit(i int) int {
	if b.cfg.reverseBits {
		return b.nq - 1 - i
	}
	return i
}

func (b *builder) rowOfClbit(i int) int {
	if b.cfg.reverseBits {
		return b.nq + b.nc - 1 - i
	}
	return b.nq + i
}

// placed is one operation turned into elements, before it is assigned
// to a column. occ lists the display rows the operation blocks for
// column packing.
type placed struct {
	cells map[int]*element
	conn  connection
	occ   []int
}

// buildLayers places every operation and packs the placements into
// columns according to the configured justification.
func (b *builder) buildLayers() []*layer {
	ops := b.c.Ops

	var layers []*layer
	switch b.cfg.justify {
	case JustifyNone:
		for _, op := range ops {
			p := b.place(op)
			if len(p.cells) == 0 {
				continue
			}
			l := newLayer(b.rows())
			b.apply(l, p)
			layers = append(layers, l)
		}
	case JustifyRight:
		reversed := make([]circuit.Operation, len(ops))
		for i, op := range ops {
			reversed[len(ops)-1-i] = op
		}
		layers = b.pack(reversed)
		for i, j := 0, len(layers)-1; i < j; i, j = i+1, j-1 {
			layers[i], layers[j] = layers[j], layers[i]
		}
	default:
		layers = b.pack(ops)
	}

	kept := layers[:0]
	for _, l := range layers {
		if !l.empty() {
			kept = append(kept, l)
		}
	}
	layers = kept

	for _, l := range layers {
		l.connectAll()
		l.fill(b.nq)
		l.normalize()
	}
	return layers
}

// pack assigns each placement greedily to the first column after the
// last one any of its rows is blocked in.
func (b *builder) pack(ops []circuit.Operation) []*layer {
	last := make([]int, b.rows())
	for i := range last {
		last[i] = -1
	}
	var layers []*layer
	for _, op := range ops {
		p := b.place(op)
		col := 0
		for _, w := range p.occ {
			if last[w]+1 > col {
				col = last[w] + 1
			}
		}
		for len(layers) <= col {
			layers = append(layers, newLayer(b.rows()))
		}
		b.apply(layers[col], p)
		for _, w := range p.occ {
			last[w] = col
		}
	}
	return layers
}

func (b *builder) apply(l *layer, p placed) {
	for r, e := range p.cells {
		l.elements[r] = e
	}
	if len(p.conn.parts) > 0 {
		l.conns = append(l.conns, p.conn)
	}
}

// place builds the elements of one operation, keyed by display row.
func (b *builder) place(op circuit.Operation) placed {
	cells := make(map[int]*element)
	var conn connection

	if op.Kind == circuit.Barrier {
		rows := b.barrierRows(op)
		if !b.cfg.hideBarriers {
			for _, r := range rows {
				cells[r] = barrierGlyph()
			}
		}
		// A barrier blocks exactly the wires it names, so unrelated
		// operations can share its column. A hidden barrier keeps its
		// column reservation but draws nothing.
		return placed{cells: cells, occ: rows}
	}

	conditional := op.Condition != nil
	bottom := b.bottomOpRow(op)
	condAt := func(r int) bool { return conditional && r == bottom }

	switch op.Kind {
	case circuit.Measure:
		cells[b.rowOfQubit(op.Qubits[0])] = measureFrom()
		cells[b.rowOfClbit(op.Clbits[0])] = measureTo()

	case circuit.Reset:
		r := b.rowOfQubit(op.Qubits[0])
		cells[r] = resetGlyph(condAt(r))

	case circuit.Swap:
		for _, q := range op.Qubits {
			r := b.rowOfQubit(q)
			cells[r] = exGlyph(condAt(r))
		}
		conn = connection{parts: sortedByRow(cells)}

	case circuit.Dot:
		for _, q := range append(append([]int{}, op.Qubits...), op.Controls...) {
			r := b.rowOfQubit(q)
			cells[r] = bullet(condAt(r))
		}
		conn = connection{label: dotLabel(op), parts: sortedByRow(cells)}

	case circuit.Gate:
		conn = b.placeGate(op, cells, condAt)
	}

	if conditional {
		b.placeCondition(op.Condition, cells)
	}

	return placed{cells: cells, conn: conn, occ: spannedRows(cells)}
}

// placeGate draws a boxed gate: control dots, then a single box or a
// multi-row box over the targets. The returned connection ties the
// dots to the facing edges of the box.
func (b *builder) placeGate(op circuit.Operation, cells map[int]*element, condAt func(int) bool) connection {
	targetRow := make(map[int]int, len(op.Qubits)) // display row -> argument position
	tmin, tmax := -1, -1
	for k, q := range op.Qubits {
		r := b.rowOfQubit(q)
		targetRow[r] = k
		if tmin == -1 || r < tmin {
			tmin = r
		}
		if r > tmax {
			tmax = r
		}
	}

	if len(op.Qubits) == 1 {
		cells[tmin] = boxOnQuWire(gateLabel(op), condAt(tmin))
	} else {
		name := multiboxLabel(op)
		fill := 0
		for r := range targetRow {
			if w := textWidth(strconv.Itoa(targetRow[r])); w > fill {
				fill = w
			}
		}
		height := tmax - tmin + 1
		for r := tmin; r <= tmax; r++ {
			tag := ""
			if k, ok := targetRow[r]; ok {
				tag = strconv.Itoa(k)
			}
			switch {
			case r == tmin:
				cells[r] = multiBoxTop(name, tag, fill, false)
			case r == tmax:
				cells[r] = multiBoxBot(name, tag, fill, height, false, condAt(r))
			default:
				cells[r] = multiBoxMid(name, tag, fill, height, r-tmin-1, false)
			}
		}
	}

	if len(op.Controls) == 0 {
		return connection{}
	}
	for _, q := range op.Controls {
		r := b.rowOfQubit(q)
		cells[r] = bullet(condAt(r))
	}
	parts := make([]*element, 0, len(op.Controls)+2)
	rows := make([]int, 0, len(op.Controls)+2)
	for _, q := range op.Controls {
		rows = append(rows, b.rowOfQubit(q))
	}
	rows = append(rows, tmin)
	if tmax != tmin {
		rows = append(rows, tmax)
	}
	sort.Ints(rows)
	for _, r := range rows {
		parts = append(parts, cells[r])
	}
	return connection{parts: parts}
}

// placeCondition draws the "= value" comparison box across every wire
// of the condition register.
func (b *builder) placeCondition(cond *circuit.Condition, cells map[int]*element) {
	reg, _ := b.c.CReg(cond.Register)
	off := b.c.CRegOffset(cond.Register)
	label := "= " + strconv.Itoa(cond.Value)

	rows := make([]int, 0, reg.Size)
	for i := 0; i < reg.Size; i++ {
		rows = append(rows, b.rowOfClbit(off+i))
	}
	sort.Ints(rows)

	if len(rows) == 1 {
		cells[rows[0]] = boxOnClWire(label, "┴")
		return
	}
	cmin, cmax := rows[0], rows[len(rows)-1]
	height := cmax - cmin + 1
	for r := cmin; r <= cmax; r++ {
		switch {
		case r == cmin:
			e := multiBoxTop(label, "", 0, true)
			e.top.conn = "┴"
			cells[r] = e
		case r == cmax:
			cells[r] = multiBoxBot(label, "", 0, height, true, false)
		default:
			cells[r] = multiBoxMid(label, "", 0, height, r-cmin-1, true)
		}
	}
}

// bottomOpRow returns the lowest display row the operation itself
// touches. The conditional wire drops from there towards the
// comparison box.
func (b *builder) bottomOpRow(op circuit.Operation) int {
	bottom := -1
	for _, q := range append(append([]int{}, op.Qubits...), op.Controls...) {
		if r := b.rowOfQubit(q); r > bottom {
			bottom = r
		}
	}
	return bottom
}

func (b *builder) barrierRows(op circuit.Operation) []int {
	var rows []int
	if b.cfg.wideBarriers {
		for i := 0; i < b.nq; i++ {
			rows = append(rows, i)
		}
		return rows
	}
	for _, q := range op.Qubits {
		rows = append(rows, b.rowOfQubit(q))
	}
	sort.Ints(rows)
	return rows
}

// sortedByRow returns the elements of cells ordered top to bottom.
func sortedByRow(cells map[int]*element) []*element {
	rows := make([]int, 0, len(cells))
	for r := range cells {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	parts := make([]*element, len(rows))
	for i, r := range rows {
		parts[i] = cells[r]
	}
	return parts
}

// spannedRows returns the full contiguous row range covered by cells,
// including untouched rows in between that the vertical connection
// crosses.
func spannedRows(cells map[int]*element) []int {
	min, max := -1, -1
	for r := range cells {
		if min == -1 || r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	rows := make([]int, 0, max-min+1)
	for r := min; r <= max; r++ {
		rows = append(rows, r)
	}
	return rows
}
