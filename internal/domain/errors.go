package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrNotInstalled indicates the Tcl data root could not be resolved at all
	ErrNotInstalled = errors.New("tcl/tk improperly installed")

	// ErrRootMissing indicates a resolved data root does not exist on disk
	ErrRootMissing = errors.New("data directory not found")

	// ErrNoSuchImage indicates an expected linked image was not present in a scan
	ErrNoSuchImage = errors.New("linked image not found")
)

// ProbeError represents a failed interpreter introspection query. It means
// the toolkit is not usable on this host, not that the query should be
// retried.
type ProbeError struct {
	Expr   string
	Output string
	Err    error
}

func (e *ProbeError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("interpreter probe %q failed: %v: %s", e.Expr, e.Err, e.Output)
	}
	return fmt.Sprintf("interpreter probe %q failed: %v", e.Expr, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// NewProbeError creates a new ProbeError
func NewProbeError(expr, output string, err error) *ProbeError {
	return &ProbeError{Expr: expr, Output: output, Err: err}
}

// ScanError represents a failure to read a compiled binary's linked images
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("dependency scan of %s failed: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
