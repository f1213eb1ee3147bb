package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"roundtrip/internal/app"
	"roundtrip/internal/commands"
	"roundtrip/internal/config"
	"roundtrip/internal/logging"
	"roundtrip/internal/report"
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "roundtrip [encoding] [repeat]",
		Short: "Benchmark character encoding round trips through a temporary file",
		Long: `Roundtrip generates a fixed block of pseudo-random printable characters,
writes it repeatedly to a temporary file in the given character encoding and
reads it back, then reports how long the encode/decode round trips took.

The encoding defaults to UTF-8 and the repeat count to 50.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundTrip(cmd, cfgFile, args)
		},
	}

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/roundtrip/config.yaml)")
	rootCmd.PersistentFlags().
		BoolP(config.KeyVerbose, "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		StringP(config.KeyOutput, "o", string(report.FormatText), "Output format: text, json, yaml")
	rootCmd.PersistentFlags().
		String(config.KeyLogFormat, config.LogFormatAuto, "Log format: text, json, auto")

	rootCmd.Flags().String(config.KeyTempDir, "", "Directory for the temporary file (default is the system temp directory)")
	rootCmd.Flags().Bool(config.KeyHostInfo, false, "Include host CPU and memory details in the report")

	rootCmd.AddCommand(newEncodingsCommand(&cfgFile))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// loadSettings merges flags, environment and config file into settings.
func loadSettings(cmd *cobra.Command, cfgFile string, args []string) (*config.Settings, error) {
	// A missing home directory only disables the default config file.
	home, _ := os.UserHomeDir()

	v, err := config.NewViper(cfgFile, home)
	if err != nil {
		return nil, err
	}

	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}

	return config.Load(v, args)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for _, key := range []string{
		config.KeyOutput,
		config.KeyVerbose,
		config.KeyLogFormat,
		config.KeyTempDir,
		config.KeyHostInfo,
	} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func newApp(cmd *cobra.Command, settings *config.Settings) (*app.App, error) {
	return app.NewApp(cmd.Context(),
		app.WithVerbose(settings.Verbose),
		app.WithLogFormat(logging.Format(settings.LogFormat)),
		app.WithLogOutput(cmd.ErrOrStderr()),
	)
}

func runRoundTrip(cmd *cobra.Command, cfgFile string, args []string) error {
	settings, err := loadSettings(cmd, cfgFile, args)
	if err != nil {
		return err
	}

	application, err := newApp(cmd, settings)
	if err != nil {
		return err
	}

	roundTrip := commands.NewRoundTripCommand(application.FileSystem, application.HostInfo, application.Logger)
	result, err := roundTrip.Execute(cmd.Context(), commands.RoundTripRequest{
		Encoding:        settings.Encoding,
		Repeat:          settings.Repeat,
		TempDir:         settings.TempDir,
		IncludeHostInfo: settings.HostInfo,
	})
	if err != nil {
		return err
	}

	return report.Render(cmd.OutOrStdout(), settings.Output, result)
}
