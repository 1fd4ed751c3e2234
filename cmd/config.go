package cmd

import (
	"github.com/joshyorko/aptcli/common"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"settings"},
	Short:   "Show effective settings as YAML.",
	Long: `Show effective settings after defaults, APTCLI_* environment variables,
the optional --config file and command line flags have been applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		text, err := config.AsYaml()
		if err != nil {
			return err
		}
		common.Stdout("%s", text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
