package cmd

import (
	"io"
	"os"

	"github.com/joshyorko/aptcli/apt"
	"github.com/joshyorko/aptcli/common"
	"github.com/joshyorko/aptcli/operations"
	"github.com/joshyorko/aptcli/pretty"
	"github.com/joshyorko/aptcli/session"
	"github.com/joshyorko/aptcli/settings"
	"github.com/joshyorko/aptcli/wizard"

	"github.com/spf13/cobra"
)

var (
	aiFlag     bool
	dryFlag    bool
	silentFlag bool
	debugFlag  bool
	traceFlag  bool
	configFile string
	inputFlag  string
)

var rootCmd = &cobra.Command{
	Use:   common.APTCLI_NAME,
	Short: "Sleek REPL front-end for apt.",
	Long: `aptcli runs common apt operations from a numbered menu, or from a single
natural-language prompt when started with --ai.

Examples:
  aptcli
  aptcli --ai
  aptcli --dry-run --input "CLI Rainbow"`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
		pretty.Setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if common.DebugFlag() {
			defer common.Stopwatch("Session lasted").Report()
		}
		announce(config)
		err = buildSession(config, os.Stdin, os.Stdout).Run(aiFlag)
		if err != nil {
			return err
		}
		pretty.Ok()
		return nil
	},
}

// Execute runs the root command and turns any error into exit code 1.
func Execute() {
	defer common.WaitLogs()
	err := rootCmd.Execute()
	pretty.Guard(err == nil, 1, "Error: %v", err)
}

// announce notes session-wide modes on stderr before the first prompt.
func announce(config *settings.Settings) {
	if config.Run.DryRun {
		pretty.Note("Dry run: apt command lines are printed, not executed.")
	}
	method, _ := config.InputMethod()
	if method == wizard.InputRainbow && !pretty.Interactive {
		pretty.Warning("No terminal for the styled prompt; %q reads a plain line instead.", method)
	}
}

func loadSettings(cmd *cobra.Command) (*settings.Settings, error) {
	v := settings.New()
	if err := settings.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	return settings.Load(v, configFile)
}

func buildSession(config *settings.Settings, in io.Reader, out io.Writer) *session.Session {
	bins := config.Binaries.WithDefaults()
	method, _ := config.InputMethod()
	dialog, _ := config.DialogCommand()
	decorator, _ := config.DecoratorCommand()

	result := &session.Session{
		Console: wizard.NewConsole(in, out),
		Title:   common.AptcliMode().Title(),
		Actions: apt.DefaultActions(bins),
		Intents: apt.DefaultIntents(bins),
		Input:   wizard.NewCollector(method, dialog, decorator),
		Runner:  newRunner(config, out),
	}
	if config.Run.Preflight && !config.Run.DryRun {
		result.Preflight = operations.NewPreflight()
	}
	return result
}

func newRunner(config *settings.Settings, out io.Writer) operations.Runner {
	if config.Run.DryRun {
		return &operations.DryRunner{Out: out}
	}
	return operations.NewExecRunner()
}

func init() {
	rootCmd.Flags().BoolVarP(&aiFlag, "ai", "", false, "Describe what to do in plain words instead of using the menu.")
	rootCmd.PersistentFlags().BoolVarP(&dryFlag, "dry-run", "", false, "Show the apt command lines without running them.")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Read settings from this YAML file.")
	rootCmd.PersistentFlags().StringVarP(&inputFlag, "input", "", "", "Package input method: CLI, GUI or \"CLI Rainbow\" (default: ask every time).")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "Be less verbose on output.")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "Turn on debugging output.")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "Turn on tracing output.")
	rootCmd.PersistentFlags().BoolVarP(&pretty.Disabled, "no-color", "", false, "Do not use colors in output.")
	rootCmd.PersistentFlags().BoolVarP(&common.LogLinenumbers, "numbered", "", false, "Put line numbers on log output.")
}
