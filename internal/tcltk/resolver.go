package tcltk

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkgfreeze/pkgfreeze/internal/domain"
	"github.com/pkgfreeze/pkgfreeze/internal/utils"
)

// Path segment identifying an OS-provided Tcl framework on macOS, e.g.
// /System/Library/Frameworks/Tcl.framework/Resources/Scripts/Tcl
const systemFrameworkSegment = "Library/Frameworks/Tcl.framework"

// ResolveDataRoots determines where the Tcl and Tk data directories live.
//
// Everywhere but macOS the installation has the standard layout and the
// interpreter's own answer is used directly; the extension module argument
// is not consulted. On macOS the extension module's linked images decide
// whether Tcl/Tk is the system framework (never collected; both roots nil)
// or a private copy with the standard layout.
func (c *Collector) ResolveDataRoots(ctx context.Context, extFile string) (*domain.DataRoot, *domain.DataRoot, error) {
	if tclRoot, tkRoot, ok := rootsFromEnv(); ok {
		c.logger.Debug().Str("tcl", tclRoot.Path).Str("tk", tkRoot.Path).Msg("data roots taken from environment")
		return tclRoot, tkRoot, nil
	}

	if !c.darwin() {
		return c.standardDataRoots(ctx)
	}

	images, err := c.scanner.SelectImports(extFile)
	if err != nil || len(images) == 0 {
		// Fall back to the unfiltered list
		images, err = c.scanner.Imports(extFile)
		if err != nil {
			c.logger.Debug().Err(err).Msg("linked image scan failed")
			images = nil
		}
	}

	// No linked images discoverable at all: starting with macOS 11 system
	// libraries are hidden from the scan, which implicitly means the
	// system framework is in use. Deliberate no-op, not an error.
	if len(images) == 0 {
		return nil, nil, nil
	}

	tclImage := findImage(images, "Tcl")
	if tclImage == "" {
		// Images were found but none of them is Tcl; treat like the
		// hidden-framework case rather than guessing.
		c.logger.Debug().Err(domain.ErrNoSuchImage).Str("name", "Tcl").Msg("skipping collection")
		return nil, nil, nil
	}

	if strings.Contains(tclImage, systemFrameworkSegment) {
		// Do not gather the system framework's data
		return nil, nil, nil
	}

	// Bundled copy of Tcl/Tk, e.g. inside the interpreter's own framework;
	// its data directories follow the standard layout.
	return c.standardDataRoots(ctx)
}

// standardDataRoots derives both roots from the interpreter: the Tcl root
// is "info library", and the Tk root is the sibling directory tk<version>
// in the same prefix.
func (c *Collector) standardDataRoots(ctx context.Context) (*domain.DataRoot, *domain.DataRoot, error) {
	tclRoot, err := c.probe.LibraryRoot(ctx)
	if err != nil {
		return nil, nil, err
	}
	tkVersion, err := c.probe.TkVersion(ctx)
	if err != nil {
		return nil, nil, err
	}

	tkRoot := filepath.Join(filepath.Dir(tclRoot), "tk"+tkVersion)
	return &domain.DataRoot{Name: domain.TclRootName, Path: tclRoot},
		&domain.DataRoot{Name: domain.TkRootName, Path: tkRoot},
		nil
}

// rootsFromEnv honors the TCL_LIBRARY / TK_LIBRARY overrides the toolkit
// itself respects at runtime. Both must be set and point at existing
// directories to take effect.
func rootsFromEnv() (*domain.DataRoot, *domain.DataRoot, bool) {
	tcl := os.Getenv("TCL_LIBRARY")
	tk := os.Getenv("TK_LIBRARY")
	if tcl == "" || tk == "" {
		return nil, nil, false
	}
	if !utils.IsDir(tcl) || !utils.IsDir(tk) {
		return nil, nil, false
	}
	return &domain.DataRoot{Name: domain.TclRootName, Path: tcl},
		&domain.DataRoot{Name: domain.TkRootName, Path: tk},
		true
}

// findImage returns the first linked image whose base name matches name
// exactly. Scan order decides ties.
func findImage(images []string, name string) string {
	for _, image := range images {
		if filepath.Base(image) == name {
			return image
		}
	}
	return ""
}
