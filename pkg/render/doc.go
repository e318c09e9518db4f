// Package render groups the circuit rendering backends.
//
// Each backend lives in its own subpackage and turns a validated
// [circuit.Circuit] into a presentable form:
//
//   - [text]: ASCII-art drawings for terminals, with optional
//     pagination and an HTML wrapping for embedding in web pages.
//
// Backends share the circuit model but nothing else; adding a new
// output format means adding a new subpackage here.
//
// [circuit.Circuit]: https://pkg.go.dev/github.com/levbishop/qdraw/pkg/circuit#Circuit
// [text]: https://pkg.go.dev/github.com/levbishop/qdraw/pkg/render/text
package render
