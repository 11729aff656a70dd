package tcltk

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkgfreeze/pkgfreeze/internal/domain"
	"github.com/pkgfreeze/pkgfreeze/internal/utils"
)

// CollectModules enumerates the optional Tcl modules directory. It lives
// apart from the library root, at <tclRoot>/../tcl<major>, and ships under
// the same name. A missing directory is advisory only and yields an empty
// manifest.
func (c *Collector) CollectModules(ctx context.Context, tclRoot string) (domain.Manifest, error) {
	version, err := c.probe.TclVersion(ctx)
	if err != nil {
		return nil, err
	}
	major, _, _ := strings.Cut(version, ".")

	dirname := "tcl" + major
	modulesPath := filepath.Join(filepath.Dir(tclRoot), dirname)

	if !utils.IsDir(modulesPath) {
		c.logger.Warn().Str("dir", modulesPath).Msg("tcl modules directory does not exist")
		return domain.Manifest{}, nil
	}

	return c.walker.Walk(modulesPath, dirname, nil)
}
