package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pkgfreeze/pkgfreeze/internal/archive"
	"github.com/pkgfreeze/pkgfreeze/internal/bindeps"
	"github.com/pkgfreeze/pkgfreeze/internal/config"
	"github.com/pkgfreeze/pkgfreeze/internal/output"
	"github.com/pkgfreeze/pkgfreeze/internal/probe"
	"github.com/pkgfreeze/pkgfreeze/internal/tcltk"
	"github.com/pkgfreeze/pkgfreeze/internal/tree"
	"github.com/pkgfreeze/pkgfreeze/internal/utils"
	"github.com/pkgfreeze/pkgfreeze/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     = utils.NewDefaultLogger()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pkgfreeze <tk-extension-module>",
	Short: "Collect Tcl/Tk runtime data for frozen executables",
	Long: `pkgfreeze locates the external Tcl/Tk data directories of the host's
installation by asking the interpreter itself, and assembles the file
manifest to bundle alongside a frozen/standalone executable.

The argument is the path to the application's compiled Tk extension
module; on macOS its linked libraries decide whether the system framework
(never collected) or a private Tcl/Tk copy is in use.`,
	Version: version.Short(),
	Args:    cobra.ExactArgs(1),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.pkgfreeze/config.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Manifest output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringP("archive", "a", "", "Write collected data to a tar.zst archive instead of printing")
	rootCmd.PersistentFlags().String("tclsh", "tclsh", "Tcl interpreter used for introspection")
	rootCmd.PersistentFlags().Duration("probe-timeout", config.DefaultProbeTimeout, "Timeout per interpreter probe")
	rootCmd.PersistentFlags().Bool("strict-probe", false, "Fail when interpreter introspection breaks instead of collecting nothing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("archive.path", rootCmd.PersistentFlags().Lookup("archive"))
	_ = viper.BindPFlag("probe.tclsh", rootCmd.PersistentFlags().Lookup("tclsh"))
	_ = viper.BindPFlag("probe.timeout", rootCmd.PersistentFlags().Lookup("probe-timeout"))
	_ = viper.BindPFlag("probe.strict", rootCmd.PersistentFlags().Lookup("strict-probe"))

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(utils.ExpandPath(cfgFile))
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	utils.SetGlobalLevel(logLevel)
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	extFile := args[0]

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("shutting down")
		cancel()
	}()

	collector := tcltk.NewCollector(tcltk.CollectorOptions{
		Probe: probe.New(probe.Options{
			Tclsh:   cfg.Probe.Tclsh,
			Timeout: cfg.Probe.Timeout,
			Logger:  log,
		}),
		Scanner:     bindeps.NewMachOScanner(),
		Walker:      tree.NewFSWalker(),
		Logger:      log,
		TclExcludes: cfg.Collect.TclExcludes,
		TkExcludes:  cfg.Collect.TkExcludes,
		StrictProbe: cfg.Probe.Strict,
	})

	manifest, err := collector.Collect(ctx, extFile)
	if err != nil {
		return err
	}

	if cfg.Archive.Path != "" {
		writer := archive.NewWriter(archive.WriterOptions{
			Level:    cfg.Archive.Level,
			Logger:   log,
			Progress: true,
		})
		return writer.Write(cfg.Archive.Path, manifest)
	}

	return output.NewRenderer(cfg.Output.Format).Render(os.Stdout, manifest)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show detailed version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}
