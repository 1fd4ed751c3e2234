package pretty

import (
	"fmt"
	"os"

	"github.com/joshyorko/aptcli/common"
)

func csi(value string) string {
	return fmt.Sprintf("\x1b[%s", value)
}

func csif(form string, details ...interface{}) string {
	return csi(fmt.Sprintf(form, details...))
}

func Ok() {
	common.Log("%sOK.%s", Green, Reset)
}

func Warning(form string, details ...interface{}) {
	message := fmt.Sprintf(form, details...)
	common.Log("%sWarning: %s%s", Yellow, message, Reset)
}

func Note(form string, details ...interface{}) {
	message := fmt.Sprintf(form, details...)
	common.Log("%sNote: %s%s", Cyan, message, Reset)
}

func Exit(code int, format string, rest ...interface{}) {
	var niceform string
	if code == 0 {
		niceform = fmt.Sprintf("%s%s%s", Green, format, Reset)
	} else {
		niceform = fmt.Sprintf("%s%s%s", Red, format, Reset)
	}
	common.Log(niceform, rest...)
	common.WaitLogs()
	os.Exit(code)
}

func Guard(truth bool, code int, format string, rest ...interface{}) {
	if !truth {
		Exit(code, format, rest...)
	}
}
