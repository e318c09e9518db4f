package circuit

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	qerrors "github.com/levbishop/qdraw/pkg/errors"
)

func TestReadDecodesCircuit(t *testing.T) {
	input := `{
	  "qregs": [{"name": "q", "size": 2}],
	  "cregs": [{"name": "c", "size": 2}],
	  "ops": [
	    {"kind": "gate", "name": "h", "qubits": [0]},
	    {"kind": "gate", "name": "cx", "qubits": [1], "controls": [0]},
	    {"kind": "gate", "name": "rz", "qubits": [0], "params": [{"value": 0.5}]},
	    {"kind": "gate", "name": "u1", "qubits": [1], "params": [{"symbol": "pi/2"}]},
	    {"kind": "measure", "qubits": [0], "clbits": [0]},
	    {"kind": "gate", "name": "x", "qubits": [1], "condition": {"register": "c", "value": 1}}
	  ]
	}`

	c, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(c.Ops) != 6 {
		t.Fatalf("len(Ops) = %d, want 6", len(c.Ops))
	}
	if got := c.Ops[1]; got.Kind != Gate || !reflect.DeepEqual(got.Controls, []int{0}) {
		t.Errorf("Ops[1] = %+v, want cx with control 0", got)
	}
	if got := c.Ops[2].Params[0]; got.Symbol != "" || got.Value != 0.5 {
		t.Errorf("Ops[2].Params[0] = %+v, want value 0.5", got)
	}
	if got := c.Ops[3].Params[0]; got.Symbol != "pi/2" {
		t.Errorf("Ops[3].Params[0] = %+v, want symbol pi/2", got)
	}
	if got := c.Ops[5].Condition; got == nil || got.Register != "c" || got.Value != 1 {
		t.Errorf("Ops[5].Condition = %+v, want c == 1", got)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  qerrors.Code
	}{
		{
			name:  "malformed json",
			input: `{"qregs": [`,
			code:  qerrors.ErrCodeInvalidFormat,
		},
		{
			name:  "unknown kind",
			input: `{"qregs": [{"name": "q", "size": 1}], "ops": [{"kind": "teleport", "qubits": [0]}]}`,
			code:  qerrors.ErrCodeUnsupportedOp,
		},
		{
			name:  "out of range wire",
			input: `{"qregs": [{"name": "q", "size": 1}], "ops": [{"kind": "gate", "name": "x", "qubits": [3]}]}`,
			code:  qerrors.ErrCodeInconsistentWire,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Read() = nil error, want failure")
			}
			if got := qerrors.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	v := 3.14159
	c := &Circuit{
		QRegs: []Register{{Name: "q", Size: 3}},
		CRegs: []Register{{Name: "c", Size: 3}},
		Ops: []Operation{
			{Name: "h", Kind: Gate, Qubits: []int{0}},
			{Name: "rz", Kind: Gate, Qubits: []int{1}, Params: []Param{{Value: v}}},
			{Kind: Swap, Qubits: []int{0, 2}},
			{Kind: Barrier, Qubits: []int{0, 1, 2}},
			{Kind: Measure, Qubits: []int{1}, Clbits: []int{1}},
			{Name: "x", Kind: Gate, Qubits: []int{0}, Condition: &Condition{Register: "c", Value: 2}},
		},
	}

	var buf bytes.Buffer
	if err := Write(c, &buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("round trip changed circuit:\ngot  %+v\nwant %+v", got, c)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("ReadFile() = nil error, want failure")
	}
	if got := qerrors.GetCode(err); got != qerrors.ErrCodeFileNotFound {
		t.Errorf("GetCode() = %q, want %q", got, qerrors.ErrCodeFileNotFound)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	c := &Circuit{
		QRegs: []Register{{Name: "q", Size: 1}},
		CRegs: []Register{{Name: "c", Size: 1}},
		Ops:   []Operation{{Name: "h", Kind: Gate, Qubits: []int{0}}},
	}
	path := filepath.Join(t.TempDir(), "circuit.json")
	if err := WriteFile(c, path); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("round trip changed circuit:\ngot  %+v\nwant %+v", got, c)
	}
}
