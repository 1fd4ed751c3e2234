package cmd

import (
	"strings"

	"github.com/joshyorko/aptcli/apt"
	"github.com/joshyorko/aptcli/common"
	"github.com/joshyorko/aptcli/pretty"

	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:     "actions",
	Aliases: []string{"list", "ls"},
	Short:   "List menu actions and natural-language triggers.",
	Long: `List every numbered menu action and every natural-language trigger phrase,
together with the apt command line each one runs. Nothing is executed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		bins := config.Binaries.WithDefaults()
		common.Stdout("%s\n\n", pretty.RenderTable(common.AptcliMode().Title(), []string{"Option", "Action", "Command"}, actionRows(apt.DefaultActions(bins))))
		common.Stdout("%s\n", pretty.RenderTable("Natural-language triggers", []string{"Trigger", "Command"}, intentRows(apt.DefaultIntents(bins))))
		return nil
	},
}

func actionRows(menu apt.Menu) [][]string {
	rows := make([][]string, 0, len(menu))
	for _, action := range menu {
		rows = append(rows, []string{string(action.ID), action.Description, action.Command.Template()})
	}
	return rows
}

func intentRows(rules []apt.IntentRule) [][]string {
	rows := make([][]string, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, []string{strings.ToUpper(rule.Trigger[:1]) + rule.Trigger[1:], rule.Command.Template()})
	}
	return rows
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
