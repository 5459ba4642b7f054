package main

import (
	"context"
	"time"

	"github.com/aretw0/cmdline"
	"github.com/aretw0/cmdline/internal/cli"
	"github.com/aretw0/cmdline/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		applyFlags(cmd.Flags(), &cfg)

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		return cli.RunShell(sigCtx, cli.RunOptions{
			Config:  cfg,
			Version: cmdline.Version,
		})
	},
}

// applyFlags overrides cfg with the flags the user set explicitly.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("async") {
		cfg.Async, _ = flags.GetBool("async")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("ticker") {
		cfg.Ticker, _ = flags.GetBool("ticker")
	}
	if flags.Changed("key-codes") {
		cfg.KeyCodes, _ = flags.GetBool("key-codes")
	}
	if flags.Changed("multi-line") {
		cfg.MultiLine, _ = flags.GetBool("multi-line")
	}
	if flags.Changed("history") {
		cfg.History, _ = flags.GetString("history")
	}
	if flags.Changed("redis-addr") {
		cfg.Redis.Addr, _ = flags.GetString("redis-addr")
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr, _ = flags.GetString("metrics-addr")
	}
	if flags.Changed("debug") {
		if debug, _ := flags.GetBool("debug"); debug {
			cfg.Log.Level = "debug"
		}
	}
	if flags.Changed("quiet") {
		cfg.Log.Quiet, _ = flags.GetBool("quiet")
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd.Flags())
	addRunFlags(rootCmd.Flags())

	// 'run' is the default command.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Args = cobra.NoArgs
}

func addRunFlags(flags *pflag.FlagSet) {
	flags.BoolP("async", "a", false, "Poll for input without blocking")
	flags.Duration("timeout", time.Second, "Readiness wait of each poll in async mode")
	flags.Bool("ticker", false, "Print a counter on every idle poll (async mode)")
	flags.BoolP("key-codes", "k", false, "Print the code of each typed key, then exit")
	flags.BoolP("multi-line", "m", false, "Wrap long lines at the terminal edge")
	flags.String("history", config.DefaultHistoryPath, "History file (or Redis key); $"+config.EnvHistory+" also sets it")
	flags.String("redis-addr", "", "Share history through the Redis server at this address")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	flags.Bool("debug", false, "Enable debug logging")
	flags.BoolP("quiet", "q", false, "Disable logs and the banner")
}
