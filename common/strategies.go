package common

import "os"

const (
	APTCLI_PRODUCT_NAME = `APTCLI_PRODUCT_NAME`
	APTCLI_NAME         = `aptcli`
	APTCLI_ENV_PREFIX   = `APTCLI`
)

type (
	ProductStrategy interface {
		Name() string
		Title() string
		EnvPrefix() string
	}

	aptcliStrategy struct{}
)

func AptcliMode() ProductStrategy {
	return &aptcliStrategy{}
}

func (it *aptcliStrategy) Name() string {
	if value := os.Getenv(APTCLI_PRODUCT_NAME); len(value) > 0 {
		return value
	}
	return APTCLI_NAME
}

// Title is the heading shown above the interactive menu.
func (it *aptcliStrategy) Title() string {
	return "apt-cli: Sleek REPL APT Tool"
}

func (it *aptcliStrategy) EnvPrefix() string {
	return APTCLI_ENV_PREFIX
}
