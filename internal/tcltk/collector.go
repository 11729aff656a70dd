// Package tcltk locates the external runtime support data of the host's
// Tcl/Tk installation and assembles the file manifest shipped alongside a
// frozen executable. Discovery is best-effort: a build never fails solely
// because Tcl/Tk data could not be found.
package tcltk

import (
	"context"
	"runtime"

	"github.com/pkgfreeze/pkgfreeze/internal/config"
	"github.com/pkgfreeze/pkgfreeze/internal/domain"
	"github.com/pkgfreeze/pkgfreeze/internal/utils"
)

// Collector assembles the Tcl/Tk data manifest for one build.
type Collector struct {
	probe       domain.InterpreterProbe
	scanner     domain.DependencyScanner
	walker      domain.TreeWalker
	logger      *utils.Logger
	platform    string
	tclExcludes []string
	tkExcludes  []string
	strictProbe bool
}

// CollectorOptions contains options for creating a Collector
type CollectorOptions struct {
	Probe   domain.InterpreterProbe
	Scanner domain.DependencyScanner
	Walker  domain.TreeWalker
	Logger  *utils.Logger
	// Platform overrides runtime.GOOS, for tests
	Platform    string
	TclExcludes []string
	TkExcludes  []string
	// StrictProbe surfaces interpreter probe failures as errors instead of
	// degrading to an empty manifest
	StrictProbe bool
}

// NewCollector creates a new Collector
func NewCollector(opts CollectorOptions) *Collector {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	platform := opts.Platform
	if platform == "" {
		platform = runtime.GOOS
	}
	tclExcludes := opts.TclExcludes
	if tclExcludes == nil {
		tclExcludes = config.DefaultTclExcludes
	}
	tkExcludes := opts.TkExcludes
	if tkExcludes == nil {
		tkExcludes = config.DefaultTkExcludes
	}
	return &Collector{
		probe:       opts.Probe,
		scanner:     opts.Scanner,
		walker:      opts.Walker,
		logger:      logger.WithComponent("tcltk"),
		platform:    platform,
		tclExcludes: tclExcludes,
		tkExcludes:  tkExcludes,
		strictProbe: opts.StrictProbe,
	}
}

func (c *Collector) darwin() bool {
	return c.platform == "darwin"
}

// Collect locates the Tcl and Tk data directories by analyzing the given
// compiled Tk extension module, and returns the file manifest for both
// trees plus the optional Tcl modules directory, in that order. An empty
// manifest with a nil error means there is nothing to bundle on this host.
func (c *Collector) Collect(ctx context.Context, extFile string) (domain.Manifest, error) {
	tclRoot, tkRoot, err := c.ResolveDataRoots(ctx, extFile)
	if err != nil {
		if c.strictProbe {
			return nil, err
		}
		c.logger.Error().Err(err).Msg("tcl/tk introspection failed, collecting nothing")
		return domain.Manifest{}, nil
	}

	// On macOS, both roots nil means python links the system Tcl/Tk
	// framework; system libraries are never bundled.
	if c.darwin() && tclRoot == nil && tkRoot == nil {
		c.logger.Info().Msg("not collecting Tcl/Tk data: system framework in use or data directories not found")
		return domain.Manifest{}, nil
	}

	if tclRoot == nil {
		c.logger.Error().Err(domain.ErrNotInstalled).Msg("tcl/tk improperly installed on this system")
		return domain.Manifest{}, nil
	}

	if !utils.IsDir(tclRoot.Path) {
		c.logger.Error().Err(domain.ErrRootMissing).Str("dir", tclRoot.Path).Msg("tcl data directory not found")
		return domain.Manifest{}, nil
	}
	if !utils.IsDir(tkRoot.Path) {
		c.logger.Error().Err(domain.ErrRootMissing).Str("dir", tkRoot.Path).Msg("tk data directory not found")
		return domain.Manifest{}, nil
	}

	tclTree, err := c.walker.Walk(tclRoot.Path, domain.TclRootName, c.tclExcludes)
	if err != nil {
		return nil, err
	}
	tkTree, err := c.walker.Walk(tkRoot.Path, domain.TkRootName, c.tkExcludes)
	if err != nil {
		return nil, err
	}

	if c.darwin() {
		c.checkKnownBadDistribution(tclRoot.Path, tclTree)
	}

	modulesTree, err := c.CollectModules(ctx, tclRoot.Path)
	if err != nil {
		if c.strictProbe {
			return nil, err
		}
		c.logger.Error().Err(err).Msg("tcl modules collection failed, skipping")
		modulesTree = nil
	}

	return tclTree.Concat(tkTree, modulesTree), nil
}
