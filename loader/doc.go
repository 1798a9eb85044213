// Package loader implements the external-collaborator parsers named in
// spec §6: a JSON graph reader, a CSV adjacency-list reader, and a CSV
// edge-list reader. These populate a *graphcore.Graph; they never run
// algorithms and never retain state across calls.
//
// JSON parsing uses json-iterator/go (grounded on golang-geo's go.mod) for
// its drop-in encoding/json-compatible API with faster decoding of the
// deeply nested per-node edge lists this format produces. Node ids are
// walked in document order via jsoniter's low-level Iterator rather than
// decoded straight into a map, since a Go map would discard that order.
// The CSV edge-list reader uses the standard library's encoding/csv — no
// third-party CSV reader appears anywhere in the retrieved example corpus,
// and csv's shape (quoting, configurable separators) is already exactly
// what stdlib covers. The CSV adjacency reader scans raw lines with
// bufio.Scanner instead, because its rows vary in token count.
package loader
