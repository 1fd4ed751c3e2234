package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshyorko/aptcli/apt"
	"github.com/joshyorko/aptcli/common"
	"github.com/joshyorko/aptcli/operations"
	"github.com/joshyorko/aptcli/pretty"
	"github.com/joshyorko/aptcli/settings"
	"github.com/joshyorko/aptcli/wizard"
)

func dryRunSettings(t *testing.T) *settings.Settings {
	t.Setenv("APTCLI_RUN_DRYRUN", "true")
	t.Setenv("APTCLI_INPUT_METHOD", "CLI")
	config, err := settings.Load(settings.New(), "")
	require.NoError(t, err)
	return config
}

func TestBuildSessionHonorsDryRun(t *testing.T) {
	config := dryRunSettings(t)
	var out bytes.Buffer

	sut := buildSession(config, strings.NewReader("1\ncurl wget\nno\n"), &out)

	assert.IsType(t, &operations.DryRunner{}, sut.Runner)
	assert.Nil(t, sut.Preflight)
	require.NoError(t, sut.Run(false))
	assert.Contains(t, out.String(), "Dry run, not executing: apt install -y curl wget")
	assert.NotContains(t, out.String(), "Choose input method")
}

func TestMenuSessionAsksInputMethodEachTime(t *testing.T) {
	t.Setenv("APTCLI_RUN_DRYRUN", "true")
	config, err := settings.Load(settings.New(), "")
	require.NoError(t, err)
	var out bytes.Buffer

	sut := buildSession(config, strings.NewReader("1\nCLI\ncurl\nyes\n3\nCLI\n   \n8\nno\n"), &out)

	require.NoError(t, sut.Run(false))
	text := out.String()
	assert.Contains(t, text, "Dry run, not executing: apt install -y curl")
	assert.Contains(t, text, "No input provided.")
	assert.Contains(t, text, "Dry run, not executing: apt update")
	assert.NotContains(t, text, "apt remove")
	assert.Equal(t, 2, strings.Count(text, "Choose input method"))
}

func TestBuildSessionNaturalLanguage(t *testing.T) {
	config := dryRunSettings(t)
	var out bytes.Buffer

	sut := buildSession(config, strings.NewReader("check dependencies of something\nlibc6\n"), &out)

	require.NoError(t, sut.Run(true))
	assert.Contains(t, out.String(), "Dry run, not executing: apt-cache depends libc6")
}

func TestBuildSessionUsesConfiguredBinaries(t *testing.T) {
	t.Setenv("APTCLI_BINARIES_APT", "/usr/bin/apt")
	config, err := settings.Load(settings.New(), "")
	require.NoError(t, err)

	sut := buildSession(config, strings.NewReader(""), &bytes.Buffer{})

	assert.IsType(t, &operations.ExecRunner{}, sut.Runner)
	assert.NotNil(t, sut.Preflight)
	action, ok := sut.Actions.Find("8")
	require.True(t, ok)
	argv, err := action.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, apt.Argv{"/usr/bin/apt", "update"}, argv)
	collector, ok := sut.Input.(*wizard.Collector)
	require.True(t, ok)
	assert.Equal(t, wizard.InputMethod(""), collector.Method)
}

func TestActionAndIntentRows(t *testing.T) {
	bins := apt.DefaultBinaries()

	actions := actionRows(apt.DefaultActions(bins))
	require.Len(t, actions, 17)
	assert.Equal(t, []string{"1", "Install a package", "apt install -y <packages>"}, actions[0])
	assert.Equal(t, []string{"8", "Update package list", "apt update"}, actions[7])

	intents := intentRows(apt.DefaultIntents(bins))
	require.Len(t, intents, 11)
	assert.Equal(t, []string{"Update packages", "apt update"}, intents[1])
}

func TestSubcommandsAreRegistered(t *testing.T) {
	for _, name := range []string{"version", "actions", "config"} {
		found, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, found.Name())
	}
}

func TestOutputFlags(t *testing.T) {
	defer func() {
		pretty.Disabled = false
		common.LogLinenumbers = false
	}()

	require.NoError(t, rootCmd.PersistentFlags().Parse([]string{"--no-color", "--numbered"}))

	assert.True(t, pretty.Disabled)
	assert.True(t, common.LogLinenumbers)
}
