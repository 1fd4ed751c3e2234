package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/joshyorko/aptcli/apt"
	"github.com/joshyorko/aptcli/common"
	"github.com/joshyorko/aptcli/wizard"
)

const (
	KeyApt       = `binaries.apt`
	KeyAptCache  = `binaries.aptcache`
	KeyMethod    = `input.method`
	KeyDialog    = `input.dialog`
	KeyDecorator = `input.decorator`
	KeyDryRun    = `run.dryrun`
	KeyPreflight = `run.preflight`

	defaultDialog    = `dialog --stdout --inputbox "Enter package names/versions" 10 50`
	defaultDecorator = `lolcat`
)

var (
	ErrInvalidSettings = errors.New("invalid settings")

	// flag name -> settings key
	flagKeys = map[string]string{
		"dry-run": KeyDryRun,
		"input":   KeyMethod,
	}
)

type Input struct {
	Method    string `yaml:"method" mapstructure:"method"`
	Dialog    string `yaml:"dialog" mapstructure:"dialog"`
	Decorator string `yaml:"decorator" mapstructure:"decorator"`
}

type Run struct {
	DryRun    bool `yaml:"dryrun" mapstructure:"dryrun"`
	Preflight bool `yaml:"preflight" mapstructure:"preflight"`
}

// Settings is the effective configuration of one aptcli process. It is built
// once at startup and handed to whoever needs it.
type Settings struct {
	Binaries apt.Binaries `yaml:"binaries" mapstructure:"binaries"`
	Input    Input        `yaml:"input" mapstructure:"input"`
	Run      Run          `yaml:"run" mapstructure:"run"`
}

// New returns a viper instance with aptcli defaults and environment lookup
// (APTCLI_BINARIES_APT and friends) already configured.
func New() *viper.Viper {
	v := viper.New()
	defaults := apt.DefaultBinaries()
	v.SetDefault(KeyApt, defaults.Apt)
	v.SetDefault(KeyAptCache, defaults.AptCache)
	v.SetDefault(KeyMethod, "")
	v.SetDefault(KeyDialog, defaultDialog)
	v.SetDefault(KeyDecorator, defaultDecorator)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyPreflight, true)

	v.SetEnvPrefix(common.AptcliMode().EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags connects the command line flags that override settings keys.
// Flags missing from the set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads the optional settings file and returns validated settings.
// Without a filename only defaults, environment and flags apply.
func Load(v *viper.Viper, filename string) (*Settings, error) {
	if len(filename) > 0 {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings %q: %w", filename, err)
		}
		common.Debug("settings read from %q", v.ConfigFileUsed())
	}
	result := &Settings{}
	if err := v.Unmarshal(result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

func (it *Settings) Validate() error {
	if _, err := it.InputMethod(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, KeyMethod, err)
	}
	if _, err := it.DialogCommand(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, KeyDialog, err)
	}
	if _, err := it.DecoratorCommand(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, KeyDecorator, err)
	}
	return nil
}

func (it *Settings) InputMethod() (wizard.InputMethod, error) {
	return wizard.ParseInputMethod(it.Input.Method)
}

func (it *Settings) DialogCommand() ([]string, error) {
	return shlex.Split(it.Input.Dialog)
}

func (it *Settings) DecoratorCommand() ([]string, error) {
	return shlex.Split(it.Input.Decorator)
}

func (it *Settings) AsYaml() (string, error) {
	content, err := yaml.Marshal(it)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
