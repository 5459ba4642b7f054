package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/cmdline"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cmdline",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cmdline version %s\n", strings.TrimSpace(cmdline.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
