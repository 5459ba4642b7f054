package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cmdline",
	Short: "Sample interactive shell built on the cmdline library",
	Long: `cmdline reads commands from the terminal and dispatches them to registered handlers.
Type 'help' at the prompt to list the commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
}
