// Package cli implements the cobra-based CLI commands for drills.
//
// Each subcommand (list, run, check) is defined in its own file within
// this package. This file defines the root command that serves as the
// parent for all subcommands and handles global flags, configuration,
// and logging.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shinji-kodama/drills/internal/model"
)

// envPrefix namespaces environment overrides: DRILLS_PARALLEL, DRILLS_JSON, ...
const envPrefix = "DRILLS"

// Global state shared across all subcommands. NewRootCommand resets it,
// so every root command starts from defaults.
var (
	// cfgFile is the explicit --config path, if any.
	cfgFile string

	// cfg layers flags over environment over config file over defaults.
	cfg = viper.New()

	// logger is built in PersistentPreRunE once --verbose is known.
	logger = zap.NewNop()
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action. It only provides
// help text and global flags; list, run and check do the work.
func NewRootCommand() *cobra.Command {
	cfgFile = ""
	cfg = viper.New()
	logger = zap.NewNop()

	rootCmd := &cobra.Command{
		Use:   "drills",
		Short: "Run and check small programming exercises",
		Long: `drills is a catalogue of small, self-contained programming exercises
(second-smallest element, digit sums in binary, right-triangle checks, ...)
with a runner that checks them against input/expected-output cases.

Use "drills list" to browse exercises, "drills run" to call one, and
"drills check" to grade a JSONC or YAML case file.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			initLogger(cmd.ErrOrStderr())
			if used := cfg.ConfigFileUsed(); used != "" {
				VerboseLog("Using config file %s", used)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is .drills.yaml, can also use DRILLS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	_ = cfg.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = cfg.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewCheckCommand())

	return rootCmd
}

// initConfig wires the configuration sources into cfg.
//
// Configuration file priority (highest to lowest):
//  1. --config flag
//  2. DRILLS_CONFIG_FILE environment variable
//  3. .drills.yaml in the current directory, if present
//
// Every key can also be overridden by a DRILLS_ variable, with dashes
// mapped to underscores. Flags set on the command line win over all of them.
func initConfig() error {
	explicit := cfgFile
	if explicit == "" {
		explicit = os.Getenv(envPrefix + "_CONFIG_FILE")
	}
	if explicit != "" {
		cfg.SetConfigFile(explicit)
	} else {
		cfg.AddConfigPath(".")
		cfg.SetConfigType("yaml")
		cfg.SetConfigName(".drills")
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		// A missing default file is fine; a missing or broken explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if explicit == "" && errors.As(err, &notFound) {
			return nil
		}
		return model.WrapCLIError(model.ExitGeneralError, "failed to read config file", err)
	}
	return nil
}

// initLogger builds the zap logger on w. Warnings and errors are always
// shown; --verbose lowers the level to debug.
func initLogger(w io.Writer) {
	level := zapcore.WarnLevel
	if cfg.GetBool("verbose") {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	logger = zap.New(core, zap.ErrorOutput(zapcore.AddSync(w)))
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, rootCmd, os.Stderr)
	stop()
	if code != model.ExitSuccess {
		os.Exit(int(code))
	}
}

// run executes rootCmd, flushes the logger, and translates the returned
// error into an exit code. CLIError types carry their own exit codes;
// other errors default to exit code 1.
func run(ctx context.Context, rootCmd *cobra.Command, stderr io.Writer) model.ExitCode {
	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Sync()
	if err == nil {
		return model.ExitSuccess
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(stderr, cliErr.Message, cliErr.Err)
		return cliErr.Code
	}

	// Generic error, exit with code 1.
	printError(stderr, err.Error(), nil)
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, message string, underlying error) {
	if IsJSONOutput() {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog emits a debug-level message, visible only with --verbose.
func VerboseLog(format string, args ...interface{}) {
	logger.Sugar().Debugf(format, args...)
}

// IsJSONOutput returns whether JSON output is enabled by flag, env, or config.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return cfg.GetBool("json")
}
