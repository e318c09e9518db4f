package text

import (
	"testing"

	"github.com/levbishop/qdraw/pkg/circuit"
)

func layerCount(t *testing.T, c *circuit.Circuit, cfg config) int {
	t.Helper()
	return len(newBuilder(c, cfg).buildLayers())
}

func TestPackSharesColumns(t *testing.T) {
	c := &circuit.Circuit{
		QRegs: []circuit.Register{{Name: "q", Size: 4}},
		Ops:   []circuit.Operation{h(0), h(1), h(2), h(3)},
	}
	if got := layerCount(t, c, config{}); got != 1 {
		t.Errorf("independent gates packed into %d columns, want 1", got)
	}
}

func TestPackBlocksSpannedWires(t *testing.T) {
	// The second operation only touches the outer wires, but the
	// vertical connection of the first crosses the middle one.
	c := &circuit.Circuit{
		QRegs: []circuit.Register{{Name: "q", Size: 3}},
		Ops: []circuit.Operation{
			{Kind: circuit.Dot, Qubits: []int{0, 2}},
			h(1),
		},
	}
	if got := layerCount(t, c, config{}); got != 2 {
		t.Errorf("crossing and gate packed into %d columns, want 2", got)
	}
}

func TestPackBarrierBlocksOnlyItsWires(t *testing.T) {
	c := &circuit.Circuit{
		QRegs: []circuit.Register{{Name: "q", Size: 3}},
		Ops: []circuit.Operation{
			{Kind: circuit.Barrier, Qubits: []int{0, 2}},
			h(1),
		},
	}
	if got := layerCount(t, c, config{}); got != 1 {
		t.Errorf("barrier and untouched gate packed into %d columns, want 1", got)
	}
	if got := layerCount(t, c, config{wideBarriers: true}); got != 2 {
		t.Errorf("widened barrier and gate packed into %d columns, want 2", got)
	}
}

func TestPackConditionBlocksClassicalRows(t *testing.T) {
	c := &circuit.Circuit{
		QRegs: []circuit.Register{{Name: "q", Size: 1}},
		CRegs: []circuit.Register{{Name: "c", Size: 1}},
		Ops: []circuit.Operation{
			{Name: "x", Kind: circuit.Gate, Qubits: []int{0}, Condition: &circuit.Condition{Register: "c", Value: 1}},
			{Name: "x", Kind: circuit.Gate, Qubits: []int{0}, Condition: &circuit.Condition{Register: "c", Value: 1}},
		},
	}
	if got := layerCount(t, c, config{}); got != 2 {
		t.Errorf("conditional gates packed into %d columns, want 2", got)
	}
}

func TestJustifyNoneOneColumnPerOp(t *testing.T) {
	c := &circuit.Circuit{
		QRegs: []circuit.Register{{Name: "q", Size: 2}},
		Ops:   []circuit.Operation{h(0), h(1), h(0)},
	}
	if got := layerCount(t, c, config{justify: JustifyNone}); got != 3 {
		t.Errorf("justify none produced %d columns, want 3", got)
	}
}

func TestHiddenBarrierKeepsColumn(t *testing.T) {
	c := &circuit.Circuit{
		QRegs: []circuit.Register{{Name: "q", Size: 2}},
		Ops: []circuit.Operation{
			h(0),
			{Kind: circuit.Barrier, Qubits: []int{0, 1}},
			h(1),
		},
	}
	// The barrier glyphs disappear but the gate behind it stays in the
	// third column, which shares a drawing column with nothing.
	if got := layerCount(t, c, config{hideBarriers: true}); got != 2 {
		t.Errorf("hidden barrier left %d columns, want 2", got)
	}
	if got := layerCount(t, c, config{}); got != 3 {
		t.Errorf("visible barrier left %d columns, want 3", got)
	}
}
