package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"smoke-env/internal/config"
	"smoke-env/internal/log"
)

// options carries state shared by every subcommand.
type options struct {
	configPath string
	dir        string
	envFile    string
	logLevel   string
	logFormat  string
	ignoreOS   bool

	cfg    *config.FileConfig
	logger *slog.Logger
}

// NewRootCmd builds the smoke-env command tree.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "smoke-env",
		Short: "Prepare the target URL for a browser smoke test",
		Long: `smoke-env loads the nearest .env file, builds the smoke test target URL
with its auth token, and prints redacted forms that are safe to log.

Example:
  smoke-env target
  smoke-env target --redacted
  smoke-env redact "http://localhost:5173/?token=secret&x=1"
  smoke-env fingerprint`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: nearest .smoke-env.yaml)")
	flags.StringVar(&opts.dir, "dir", "", "Directory to start the .env search from (default: current directory)")
	flags.StringVarP(&opts.envFile, "env-file", "f", "", "Path to .env file (default: nearest .env)")
	flags.String("log-level", "", "Set the log level (debug, info, warn, error)")
	flags.String("log-format", "", "Set the log format (text, logfmt, json)")
	flags.BoolVar(&opts.ignoreOS, "ignore-os-env", false, "Do not let exported variables override the .env file")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		var merr error

		logLevel, err := cc.Flags().GetString("log-level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		logFormat, err := cc.Flags().GetString("log-format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}
		opts.logLevel, opts.logFormat = logLevel, logFormat

		return opts.setup(stderr)
	}

	cmd.AddCommand(newTargetCmd(opts))
	cmd.AddCommand(newRedactCmd(opts))
	cmd.AddCommand(newFingerprintCmd(opts))
	cmd.AddCommand(newDumpCmd(opts))

	return cmd
}

// setup resolves the working directory, loads the config file and installs
// the logger.
func (o *options) setup(stderr io.Writer) error {
	if o.dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		o.dir = wd
	}

	cfg := &config.FileConfig{}
	path := o.configPath
	if path == "" {
		path = config.FindConfigFile(o.dir)
	}
	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		// env_file in the config is relative to the config, not to --dir
		if loaded.EnvFile != "" && !filepath.IsAbs(loaded.EnvFile) {
			configDir, err := filepath.Abs(filepath.Dir(path))
			if err != nil {
				return fmt.Errorf("resolve config directory: %w", err)
			}
			loaded.EnvFile = filepath.Join(configDir, loaded.EnvFile)
		}
		cfg = loaded
	}

	cfg = cfg.Merge(&config.FileConfig{
		EnvFile:   o.envFile,
		LogLevel:  o.logLevel,
		LogFormat: o.logFormat,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	h, err := log.CreateHandler(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed creating log handler: %w", err)
	}
	o.logger = slog.New(h)
	if path != "" {
		o.logger.Debug("loaded config", "path", path)
	}

	return nil
}
