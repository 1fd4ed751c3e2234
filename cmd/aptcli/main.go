package main

import (
	"github.com/joshyorko/aptcli/cmd"
)

func main() {
	cmd.Execute()
}
