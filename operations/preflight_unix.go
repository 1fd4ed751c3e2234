//go:build unix

package operations

import "golang.org/x/sys/unix"

func effectiveUID() int {
	return unix.Geteuid()
}
