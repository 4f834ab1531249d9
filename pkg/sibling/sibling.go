// Package sibling computes the path of the real target binary installed
// next to the launcher under a fixed naming convention.
package sibling

import (
	"path/filepath"
	"strings"
)

// Infix inserted into the launcher file name to form the target name.
const Infix = "run-suid"

// Target derives the target path for a launcher named name inside dir.
// The name is split at its last dot: "tool.bin" becomes
// "tool.run-suid.bin", a name without an extension such as "tool" becomes
// "tool.run-suid". Pure computation, no filesystem access.
func Target(dir, name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[:i] + "." + Infix + name[i:]
	} else {
		name = name + "." + Infix
	}
	return filepath.Join(dir, name)
}
