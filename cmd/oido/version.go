package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vsariola/oido/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version",
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, args []string) {
		v := version.VersionOrHash
		if v == "" {
			v = "unknown"
		}
		fmt.Fprintln(c.OutOrStdout(), "oido", v)
	},
}
