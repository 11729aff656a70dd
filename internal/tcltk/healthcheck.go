package tcltk

import (
	"os"
	"strings"

	"github.com/pkgfreeze/pkgfreeze/internal/domain"
)

// Markers of a Teapot-distributed ActiveTcl build. Executables frozen
// against one usually fail to run on other hosts, because the Teapot
// repository it references is not bundled.
const (
	markerDistributor = "activetcl"
	markerPackager    = "teapot"
)

const badDistributionDocs = "https://github.com/pkgfreeze/pkgfreeze/wiki/ActiveTcl"

// checkKnownBadDistribution warns, once, when the Tcl installation looks
// like a Teapot-distributed ActiveTcl build. macOS only; system-provided
// installations do not have this problem and are skipped. Never fails and
// never alters the manifest.
func (c *Collector) checkKnownBadDistribution(tclRoot string, tclTree domain.Manifest) {
	if isSystemPath(tclRoot) {
		return
	}

	initScript := ""
	for _, entry := range tclTree {
		if strings.HasSuffix(entry.Source, "init.tcl") {
			initScript = entry.Source
			break
		}
	}
	if initScript == "" {
		return
	}

	scriptLog := c.logger.WithPath(initScript)

	data, err := os.ReadFile(initScript)
	if err != nil {
		scriptLog.Debug().Err(err).Msg("cannot read init.tcl")
		return
	}

	// Tcl reads scripts in the system encoding
	text, err := decodeSystemEncoding(data)
	if err != nil {
		text = string(data)
	}

	mentionsDistributor := false
	mentionsPackager := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, markerDistributor) {
			mentionsDistributor = true
		}
		if strings.Contains(line, markerPackager) {
			mentionsPackager = true
		}
		if mentionsDistributor && mentionsPackager {
			break
		}
	}

	if mentionsDistributor && mentionsPackager {
		scriptLog.Warn().
			Str("docs", badDistributionDocs).
			Msg("this looks like a Teapot-distributed ActiveTcl build; the frozen executable will likely fail to run on other hosts. Remove the teapot references from init.tcl to fix this")
	}
}

// isSystemPath reports whether path belongs to an OS-provided location.
// /usr/local is user territory (Homebrew on Intel macs lives there), not
// the OS's.
func isSystemPath(path string) bool {
	if strings.HasPrefix(path, "/usr/local/") {
		return false
	}
	for _, prefix := range []string{"/usr/", "/System/"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
