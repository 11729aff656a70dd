// Package bindeps lists the shared libraries a compiled binary links
// against, from its Mach-O load commands. Only direct dependencies are
// reported; the transitive closure is the packaging pipeline's concern.
package bindeps

import (
	"debug/macho"
	"path/filepath"
	"strings"

	"github.com/pkgfreeze/pkgfreeze/internal/domain"
)

// Prefixes of OS-provided libraries, never bundled
var systemPrefixes = []string{
	"/usr/lib/",
	"/System/Library/",
}

// MachOScanner implements domain.DependencyScanner for Mach-O binaries
type MachOScanner struct{}

// NewMachOScanner creates a new MachOScanner
func NewMachOScanner() *MachOScanner {
	return &MachOScanner{}
}

// Imports returns the full list of directly linked image paths, in load
// command order. Loader-relative install names (@loader_path, @rpath) are
// resolved against the binary's own directory where possible.
func (s *MachOScanner) Imports(binPath string) ([]string, error) {
	libs, err := importedLibraries(binPath)
	if err != nil {
		return nil, &domain.ScanError{Path: binPath, Err: err}
	}

	binDir := filepath.Dir(binPath)
	out := make([]string, 0, len(libs))
	for _, lib := range libs {
		out = append(out, resolveInstallName(lib, binDir))
	}
	return out, nil
}

// SelectImports returns the curated subset of linked images: everything
// Imports reports minus OS-provided system libraries. May be empty.
func (s *MachOScanner) SelectImports(binPath string) ([]string, error) {
	all, err := s.Imports(binPath)
	if err != nil {
		return nil, err
	}
	return curate(all), nil
}

func importedLibraries(binPath string) ([]string, error) {
	if f, err := macho.Open(binPath); err == nil {
		defer f.Close()
		return f.ImportedLibraries()
	}

	// Universal (fat) binaries: all arch slices link the same images, so
	// the first slice is representative.
	fat, err := macho.OpenFat(binPath)
	if err != nil {
		return nil, err
	}
	defer fat.Close()
	if len(fat.Arches) == 0 {
		return nil, nil
	}
	return fat.Arches[0].ImportedLibraries()
}

// resolveInstallName maps loader-relative install names onto the
// filesystem. Names that cannot be resolved are returned unchanged.
func resolveInstallName(name, binDir string) string {
	for _, prefix := range []string{"@loader_path/", "@executable_path/", "@rpath/"} {
		if strings.HasPrefix(name, prefix) {
			return filepath.Clean(filepath.Join(binDir, strings.TrimPrefix(name, prefix)))
		}
	}
	return name
}

func curate(libs []string) []string {
	out := make([]string, 0, len(libs))
	for _, lib := range libs {
		if isSystemLibrary(lib) {
			continue
		}
		out = append(out, lib)
	}
	return out
}

func isSystemLibrary(path string) bool {
	for _, prefix := range systemPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
