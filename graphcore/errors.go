package graphcore

import "errors"

// Sentinel errors shared by every operation in this package, and re-used
// by compute/pfs/pagerank/analytics so callers can errors.Is against one
// stable vocabulary (spec §7 error kinds NOT_FOUND/DUPLICATE/INVALID_INPUT/
// INVARIANT_VIOLATION/CONFIG_ERROR/EXTERNAL_FAILURE/IO_ERROR).
var (
	// ErrNotFound indicates a referenced node or edge id is absent.
	ErrNotFound = errors.New("graphcore: not found")

	// ErrDuplicate indicates an attempt to add an id that already exists.
	ErrDuplicate = errors.New("graphcore: duplicate id")

	// ErrInvalidInput indicates malformed input: an empty node id or edge
	// endpoint, an undirected self-loop, or an edge attached to a node it
	// does not touch.
	ErrInvalidInput = errors.New("graphcore: invalid input")

	// ErrInvariantViolation indicates an internal consistency failure
	// that should be unreachable by construction.
	ErrInvariantViolation = errors.New("graphcore: invariant violation")

	// ErrConfigError indicates a caller-supplied configuration is invalid,
	// e.g. an empty PFS source or an unrecognized pfs.DirMode.
	ErrConfigError = errors.New("graphcore: config error")

	// ErrExternalFailure indicates an injected external collaborator
	// (e.g. a matrix multiplier) failed.
	ErrExternalFailure = errors.New("graphcore: external collaborator failure")

	// ErrIOError is the wrapper sentinel surfaced by the loader package.
	ErrIOError = errors.New("graphcore: io error")

	// ErrCancelled indicates a caller-supplied context was cancelled
	// mid-run (spec §5 cancellation/timeouts).
	ErrCancelled = errors.New("graphcore: cancelled")
)
