package circuit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	qerrors "github.com/levbishop/qdraw/pkg/errors"
)

var kindFromString = map[string]Kind{
	"gate":    Gate,
	"measure": Measure,
	"reset":   Reset,
	"barrier": Barrier,
	"swap":    Swap,
	"dot":     Dot,
}

type jsonCircuit struct {
	QRegs []jsonRegister  `json:"qregs"`
	CRegs []jsonRegister  `json:"cregs,omitempty"`
	Ops   []jsonOperation `json:"ops"`
}

type jsonRegister struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type jsonOperation struct {
	Name      string         `json:"name,omitempty"`
	Kind      string         `json:"kind"`
	Qubits    []int          `json:"qubits,omitempty"`
	Clbits    []int          `json:"clbits,omitempty"`
	Controls  []int          `json:"controls,omitempty"`
	Params    []jsonParam    `json:"params,omitempty"`
	Condition *jsonCondition `json:"condition,omitempty"`
}

type jsonParam struct {
	Symbol string   `json:"symbol,omitempty"`
	Value  *float64 `json:"value,omitempty"`
}

type jsonCondition struct {
	Register string `json:"register"`
	Value    int    `json:"value"`
}

// Read decodes a JSON circuit from r.
//
// The input must be a JSON object with "qregs", "cregs", and "ops":
//
//	{
//	  "qregs": [{"name": "q", "size": 2}],
//	  "cregs": [{"name": "c", "size": 2}],
//	  "ops": [
//	    {"kind": "gate", "name": "h", "qubits": [0]},
//	    {"kind": "gate", "name": "x", "qubits": [1], "controls": [0]},
//	    {"kind": "measure", "qubits": [0], "clbits": [0]}
//	  ]
//	}
//
// Operation kinds are the lowercase names of the [Kind] constants.
// Parameters carry either a "symbol" string (rendered verbatim) or a
// numeric "value". The decoded circuit is validated before it is
// returned, so a non-nil result is always drawable.
//
// The returned Circuit is independent of r and can be modified safely
// after Read returns. Read does not close r.
func Read(r io.Reader) (*Circuit, error) {
	var data jsonCircuit
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidFormat, err, "decode circuit")
	}

	c := &Circuit{
		QRegs: make([]Register, len(data.QRegs)),
		CRegs: make([]Register, len(data.CRegs)),
		Ops:   make([]Operation, len(data.Ops)),
	}
	for i, reg := range data.QRegs {
		c.QRegs[i] = Register(reg)
	}
	for i, reg := range data.CRegs {
		c.CRegs[i] = Register(reg)
	}
	for i, op := range data.Ops {
		kind, ok := kindFromString[op.Kind]
		if !ok {
			return nil, qerrors.New(qerrors.ErrCodeUnsupportedOp,
				"operation %d: unknown kind %q", i, op.Kind)
		}
		dec := Operation{
			Name:     op.Name,
			Kind:     kind,
			Qubits:   op.Qubits,
			Clbits:   op.Clbits,
			Controls: op.Controls,
		}
		for _, p := range op.Params {
			param := Param{Symbol: p.Symbol}
			if p.Value != nil {
				param.Value = *p.Value
			}
			dec.Params = append(dec.Params, param)
		}
		if op.Condition != nil {
			dec.Condition = &Condition{Register: op.Condition.Register, Value: op.Condition.Value}
		}
		c.Ops[i] = dec
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ReadFile opens the file at path, decodes it using [Read], and closes
// the file. Open failures are reported with code FILE_NOT_FOUND;
// decoding and validation failures are the same as [Read].
func ReadFile(path string) (*Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes c as indented JSON in the format accepted by [Read].
func Write(c *Circuit, w io.Writer) error {
	out := jsonCircuit{
		QRegs: make([]jsonRegister, len(c.QRegs)),
		CRegs: make([]jsonRegister, len(c.CRegs)),
		Ops:   make([]jsonOperation, len(c.Ops)),
	}
	for i, reg := range c.QRegs {
		out.QRegs[i] = jsonRegister(reg)
	}
	for i, reg := range c.CRegs {
		out.CRegs[i] = jsonRegister(reg)
	}
	for i, op := range c.Ops {
		enc := jsonOperation{
			Name:     op.Name,
			Kind:     op.Kind.String(),
			Qubits:   op.Qubits,
			Clbits:   op.Clbits,
			Controls: op.Controls,
		}
		for _, p := range op.Params {
			jp := jsonParam{Symbol: p.Symbol}
			if p.Symbol == "" {
				v := p.Value
				jp.Value = &v
			}
			enc.Params = append(enc.Params, jp)
		}
		if op.Condition != nil {
			enc.Condition = &jsonCondition{Register: op.Condition.Register, Value: op.Condition.Value}
		}
		out.Ops[i] = enc
	}

	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if err := e.Encode(out); err != nil {
		return fmt.Errorf("encode circuit: %w", err)
	}
	return nil
}

// WriteFile writes c to a JSON file at path. This is a convenience
// wrapper around [Write] for file-based output.
func WriteFile(c *Circuit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(c, f)
}
