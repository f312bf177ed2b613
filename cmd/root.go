package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"file-shredder/internal/adapters/filesystem"
	"file-shredder/internal/app"
	"file-shredder/internal/commands"
	"file-shredder/internal/config"
)

const (
	binaryName = "file-shredder"
	author     = "mxrcode (https://github.com/mxrcode/)"
)

// errMissingArguments makes the process exit with status 1 after the help
// text has been shown for an empty argument list.
var errMissingArguments = errors.New("no files given")

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string
	verbose bool
	noPause bool

	application *app.App
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
	rootCmd.Version = v
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   binaryName + " <file1> <file2> ...",
	Short: "Overwrite files with zeros and optionally delete them",
	Long: `file-shredder overwrites every byte of the given files with zeros, keeping
their size, and then optionally deletes them. Each step is confirmed
interactively with a strict y/n answer.

Zero-filling is a single pass. It is not a cryptographically secure erase
and does not defeat wear-levelling or copy-on-write storage.`,
	Args:              cobra.ArbitraryArgs,
	Version:           versionInfo.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
	RunE:              runShred,
}

// Execute runs the root command and exits with status 1 on failure or when
// no files were given.
func Execute() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))

	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errMissingArguments) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/file-shredder/config.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		String(config.KeyLogLevel, "", "Log level: debug, info, warn, error (default warn)")
	rootCmd.PersistentFlags().
		String(config.KeyLogFormat, "", "Log format: text or json (default text)")
	rootCmd.PersistentFlags().
		BoolVar(&noPause, "no-pause", false, "Do not wait for Enter before exiting")

	rootCmd.SetVersionTemplate(binaryName + " version {{.Version}}\n")
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), helpText(cmd))
	})
}

// normalizeArgs treats -h, --help and --h as a help request only when one of
// them is the only argument. Among other arguments they are file paths, so a
// "--" is placed before the first of them.
func normalizeArgs(args []string) []string {
	if len(args) == 1 {
		if isHelpArg(args[0]) {
			return []string{"--help"}
		}
		return args
	}

	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !isHelpArg(arg) || (i > 0 && takesValue(args[i-1])) {
			continue
		}

		normalized := make([]string, 0, len(args)+1)
		normalized = append(normalized, args[:i]...)
		normalized = append(normalized, "--")
		for _, rest := range args[i:] {
			// A later separator would otherwise be read as a path.
			if rest != "--" {
				normalized = append(normalized, rest)
			}
		}
		return normalized
	}
	return args
}

func isHelpArg(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "--h"
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(arg string) bool {
	switch arg {
	case "--config", "--" + config.KeyLogLevel, "--" + config.KeyLogFormat:
		return true
	}
	return false
}

func helpText(cmd *cobra.Command) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Usage: %s <file1> <file2> <file3> ...\n", binaryName)
	b.WriteString("OR\n")
	b.WriteString("Drag and drop the file(s) onto the program icon to overwrite them with zeros.\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Version: %s\n", versionInfo.Version)
	fmt.Fprintf(&b, "Author: %s\n", author)
	b.WriteString("\n")
	b.WriteString("Flags:\n")
	b.WriteString(cmd.LocalFlags().FlagUsages())

	return b.String()
}

func initApp(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	application, err = app.NewApp(cmd.Context(),
		app.WithSettings(settings),
		app.WithVerbose(verbose),
		app.WithIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return nil
}

func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	fs := filesystem.New()

	configPath := cfgFile
	if configPath == "" {
		// Without a home directory the defaults apply.
		configPath, _ = config.NewProvider(fs).GetConfigPath()
	}

	v := config.NewViper()
	if err := bindFlags(cmd, v); err != nil {
		return nil, err
	}

	settings, err := config.Resolve(config.NewManager(fs, configPath), v)
	if err != nil {
		return nil, err
	}

	if noPause {
		settings.PauseOnExit = false
	}
	return settings, nil
}

// bindFlags binds every flag that shares its name with a settings key.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		switch f.Name {
		case config.KeyLogLevel, config.KeyLogFormat:
			if err := v.BindPFlag(f.Name, f); err != nil {
				errs = append(errs, err)
			}
		}
	})
	return errors.Join(errs...)
}

func runShred(cmd *cobra.Command, args []string) error {
	// Get the initialized app instance
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	ctx := cmd.Context()

	if len(args) == 0 {
		fmt.Fprint(cmd.OutOrStdout(), helpText(cmd))
		waitBeforeExit(cmd)
		return errMissingArguments
	}

	app.Logger.DebugContext(ctx, "Starting shred run", "files", len(args))

	shredCommand := app.ShredCommand()
	shredCommand.Execute(ctx, commands.ShredRequest{Paths: args})

	waitBeforeExit(cmd)
	return nil
}

// waitBeforeExit keeps a drag-and-drop console window open until Enter.
func waitBeforeExit(cmd *cobra.Command) {
	app := GetApp()
	if !app.ShouldPause() {
		return
	}

	if err := app.Confirmer.WaitForEnter(cmd.Context()); err != nil {
		app.Logger.WarnContext(cmd.Context(), "Failed to wait for Enter", "error", err)
	}
}
