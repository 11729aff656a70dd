package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCmd_Flags verifies the CLI surface
func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{
		"config", "format", "archive", "tclsh",
		"probe-timeout", "strict-probe", "verbose",
	} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag %q", name)
	}
}

// TestRootCmd_RequiresExtensionArg verifies the positional argument contract
func TestRootCmd_RequiresExtensionArg(t *testing.T) {
	require.NotNil(t, rootCmd.Args)

	assert.Error(t, rootCmd.Args(rootCmd, nil))
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"/ext/_tkinter.so"}))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"a", "b"}))
}

// TestInitConfig verifies initConfig tolerates both states
func TestInitConfig(t *testing.T) {
	orig := cfgFile
	t.Cleanup(func() { cfgFile = orig })

	for _, path := range []string{"", "/tmp/pkgfreeze-test-config.yaml"} {
		cfgFile = path
		assert.NotPanics(t, initConfig)
	}
}

// TestInitConfig_ExpandsHome verifies ~ in --config resolves to the home
// directory before viper sees it
func TestInitConfig_ExpandsHome(t *testing.T) {
	orig := cfgFile
	t.Cleanup(func() {
		cfgFile = orig
		viper.Reset()
	})

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfgFile = "~/pkgfreeze-test-config.yaml"
	initConfig()

	assert.Equal(t, filepath.Join(home, "pkgfreeze-test-config.yaml"), viper.ConfigFileUsed())
}
