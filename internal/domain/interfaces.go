package domain

import "context"

// InterpreterProbe asks a live Tcl interpreter about its own installation.
// Each call runs one short-lived interpreter session; sessions are not
// reused. Results are trimmed textual values.
type InterpreterProbe interface {
	// LibraryRoot returns the interpreter's own library/data directory
	// (the value of "info library")
	LibraryRoot(ctx context.Context) (string, error)
	// TclVersion returns the dotted Tcl version (e.g. "8.6")
	TclVersion(ctx context.Context) (string, error)
	// TkVersion returns the dotted Tk version (e.g. "8.6")
	TkVersion(ctx context.Context) (string, error)
}

// DependencyScanner lists the shared libraries directly linked by a
// compiled binary, from its dynamic-linking metadata.
type DependencyScanner interface {
	// SelectImports returns a curated subset of linked image paths,
	// excluding OS-provided system libraries. May be empty.
	SelectImports(binPath string) ([]string, error)
	// Imports returns the full set of linked image paths. May be empty.
	Imports(binPath string) ([]string, error)
}

// TreeWalker enumerates a directory tree into manifest entries. Every
// file and directory under root not matched by an exclusion glob is
// listed, with dest paths rooted at prefix.
type TreeWalker interface {
	Walk(root, prefix string, excludes []string) (Manifest, error)
}
