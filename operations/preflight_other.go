//go:build !unix

package operations

// Privilege cannot be checked here; negative means unknown.
func effectiveUID() int {
	return -1
}
