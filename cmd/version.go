package cmd

import (
	"github.com/joshyorko/aptcli/common"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show aptcli version.",
	Long:    "Show aptcli version.",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		common.Stdout("%s\n", common.BuildVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
