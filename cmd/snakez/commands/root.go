package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snakezio/snakez/version"
)

var rootCmd = &cobra.Command{
	Use:     "snakez",
	Short:   "snakez runs local multiplayer snake games in the terminal",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

// Execute runs the root command
func Execute() {
	rootCmd.AddCommand(playCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
