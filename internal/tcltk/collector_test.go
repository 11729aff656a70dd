package tcltk

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pkgfreeze/pkgfreeze/internal/domain"
	"github.com/pkgfreeze/pkgfreeze/internal/tree"
)

// writeInstallation lays out a standard Tcl/Tk prefix:
//
//	lib/tcl8.6/  (init.tcl, clock.tcl, demos/, tclConfig.sh)
//	lib/tk8.6/   (tk.tcl, demos/, tkConfig.sh)
//	lib/tcl8/    (module files)
func writeInstallation(t *testing.T) (prefix, tclRoot string) {
	t.Helper()
	prefix = filepath.Join(t.TempDir(), "lib")
	tclRoot = filepath.Join(prefix, "tcl8.6")

	for _, d := range []string{
		filepath.Join(tclRoot, "demos"),
		filepath.Join(prefix, "tk8.6", "demos"),
		filepath.Join(prefix, "tcl8", "platform"),
	} {
		require.NoError(t, os.MkdirAll(d, 0755))
	}

	files := map[string]string{
		filepath.Join(tclRoot, "init.tcl"):                          "# init",
		filepath.Join(tclRoot, "clock.tcl"):                         "# clock",
		filepath.Join(tclRoot, "tclConfig.sh"):                      "# config",
		filepath.Join(tclRoot, "demos", "demo.tcl"):                 "# demo",
		filepath.Join(prefix, "tk8.6", "tk.tcl"):                    "# tk",
		filepath.Join(prefix, "tk8.6", "tkConfig.sh"):               "# config",
		filepath.Join(prefix, "tcl8", "platform", "shell-1.1.4.tm"): "# tm",
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return prefix, tclRoot
}

// TestCollect_FullPipeline tests end-to-end collection order and exclusions
func TestCollect_FullPipeline(t *testing.T) {
	clearEnvOverrides(t)
	_, tclRoot := writeInstallation(t)

	probe := new(mockProbe)
	probe.On("LibraryRoot", mock.Anything).Return(tclRoot, nil)
	probe.On("TkVersion", mock.Anything).Return("8.6", nil)
	probe.On("TclVersion", mock.Anything).Return("8.6.12", nil)

	c := newTestCollector(t, "linux", probe, new(mockScanner))

	manifest, err := c.Collect(context.Background(), "/ext/_tkinter.so")
	require.NoError(t, err)
	require.NotEmpty(t, manifest)

	dests := manifest.Dests()

	// Exclusions applied per toolkit
	assert.NotContains(t, dests, "tcl/demos")
	assert.NotContains(t, dests, "tcl/tclConfig.sh")
	assert.NotContains(t, dests, "tk/demos")
	assert.NotContains(t, dests, "tk/tkConfig.sh")

	assert.Contains(t, dests, "tcl/init.tcl")
	assert.Contains(t, dests, "tk/tk.tcl")
	assert.Contains(t, dests, "tcl8/platform/shell-1.1.4.tm")

	// Concatenation order: all tcl entries, then tk, then modules
	var phases []string
	for _, d := range dests {
		phase := strings.SplitN(d, "/", 2)[0]
		if len(phases) == 0 || phases[len(phases)-1] != phase {
			phases = append(phases, phase)
		}
	}
	assert.Equal(t, []string{"tcl", "tk", "tcl8"}, phases)
}

// TestCollect_DarwinSystemFramework tests the expected empty outcome when
// the system framework is in use
func TestCollect_DarwinSystemFramework(t *testing.T) {
	clearEnvOverrides(t)

	scanner := new(mockScanner)
	scanner.On("SelectImports", "/ext/_tkinter.so").Return([]string{}, nil)
	scanner.On("Imports", "/ext/_tkinter.so").Return([]string{}, nil)

	c := newTestCollector(t, "darwin", new(mockProbe), scanner)

	manifest, err := c.Collect(context.Background(), "/ext/_tkinter.so")
	require.NoError(t, err)
	assert.Empty(t, manifest)
}

// TestCollect_MissingRootDirectory tests the degrade-to-empty policy for a
// resolved-but-missing data directory
func TestCollect_MissingRootDirectory(t *testing.T) {
	clearEnvOverrides(t)

	probe := new(mockProbe)
	probe.On("LibraryRoot", mock.Anything).Return(filepath.Join(t.TempDir(), "gone", "tcl8.6"), nil)
	probe.On("TkVersion", mock.Anything).Return("8.6", nil)

	c := newTestCollector(t, "linux", probe, new(mockScanner))

	manifest, err := c.Collect(context.Background(), "/ext/_tkinter.so")
	require.NoError(t, err)
	assert.Empty(t, manifest)
}

// TestCollect_MissingTkRoot tests degrade-to-empty when only Tk is absent
func TestCollect_MissingTkRoot(t *testing.T) {
	clearEnvOverrides(t)
	prefix, tclRoot := writeInstallation(t)
	require.NoError(t, os.RemoveAll(filepath.Join(prefix, "tk8.6")))

	probe := new(mockProbe)
	probe.On("LibraryRoot", mock.Anything).Return(tclRoot, nil)
	probe.On("TkVersion", mock.Anything).Return("8.6", nil)

	c := newTestCollector(t, "linux", probe, new(mockScanner))

	manifest, err := c.Collect(context.Background(), "/ext/_tkinter.so")
	require.NoError(t, err)
	assert.Empty(t, manifest)
}

// TestCollect_ProbeFailure tests both probe-failure policies
func TestCollect_ProbeFailure(t *testing.T) {
	clearEnvOverrides(t)

	probeErr := domain.NewProbeError("info library", "", assert.AnError)

	t.Run("default degrades to empty", func(t *testing.T) {
		probe := new(mockProbe)
		probe.On("LibraryRoot", mock.Anything).Return("", probeErr)

		c := newTestCollector(t, "linux", probe, new(mockScanner))

		manifest, err := c.Collect(context.Background(), "/ext/_tkinter.so")
		require.NoError(t, err)
		assert.Empty(t, manifest)
	})

	t.Run("strict mode surfaces the error", func(t *testing.T) {
		probe := new(mockProbe)
		probe.On("LibraryRoot", mock.Anything).Return("", probeErr)

		c := NewCollector(CollectorOptions{
			Probe:       probe,
			Scanner:     new(mockScanner),
			Walker:      tree.NewFSWalker(),
			Platform:    "linux",
			StrictProbe: true,
		})

		_, err := c.Collect(context.Background(), "/ext/_tkinter.so")
		require.Error(t, err)
		var pe *domain.ProbeError
		assert.ErrorAs(t, err, &pe)
	})
}

// TestCollect_ModulesAppended tests that the optional modules tree is
// appended after the data trees even when it is empty
func TestCollect_ModulesAppended(t *testing.T) {
	clearEnvOverrides(t)
	prefix, tclRoot := writeInstallation(t)
	require.NoError(t, os.RemoveAll(filepath.Join(prefix, "tcl8")))

	probe := new(mockProbe)
	probe.On("LibraryRoot", mock.Anything).Return(tclRoot, nil)
	probe.On("TkVersion", mock.Anything).Return("8.6", nil)
	probe.On("TclVersion", mock.Anything).Return("8.6.12", nil)

	c := newTestCollector(t, "linux", probe, new(mockScanner))

	manifest, err := c.Collect(context.Background(), "/ext/_tkinter.so")
	require.NoError(t, err)
	require.NotEmpty(t, manifest)

	for _, d := range manifest.Dests() {
		assert.False(t, strings.HasPrefix(d, "tcl8/"), "unexpected modules entry %q", d)
	}
}
