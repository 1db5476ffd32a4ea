package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. LPSOLVE_TOLERANCE.
const envPrefix = "LPSOLVE"

// cli carries the state shared by every subcommand of one invocation.
type cli struct {
	vip     *viper.Viper
	cfgFile string
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{
		vip:    viper.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	rootCmd := &cobra.Command{
		Use:   "lpsolve",
		Short: "Solve linear programs with a two-phase simplex method",
		Long: `lpsolve reads linear programs from YAML or JSON problem files and solves
them with a pure Go two-phase tableau simplex engine. Results are reported
as text, JSON or YAML.

Every flag can also be set in a config file (--config) or through an
environment variable prefixed with LPSOLVE_, e.g. LPSOLVE_TOLERANCE=1e-10.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.initConfig(cmd); err != nil {
				return err
			}
			c.logger = newLogger(cmd.ErrOrStderr(), c.vip.GetString("log-level"))
			slog.SetDefault(c.logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "Config file (YAML, JSON or TOML)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newSolveCmd(c),
		newExamplesCmd(c),
		newVersionCmd(),
	)
	return rootCmd
}

// initConfig binds the parsed flags of cmd into viper. Precedence is flag,
// then environment, then config file, then flag default.
func (c *cli) initConfig(cmd *cobra.Command) error {
	c.vip.SetEnvPrefix(envPrefix)
	c.vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.vip.AutomaticEnv()

	if err := c.vip.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	if c.cfgFile == "" {
		return nil
	}
	c.vip.SetConfigFile(c.cfgFile)
	if err := c.vip.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config %s", c.cfgFile)
	}
	return nil
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}
