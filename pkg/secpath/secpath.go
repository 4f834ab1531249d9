// Package secpath checks whether a filesystem object is safe to trust for
// privileged execution: owned by a single user and writable by nobody else.
package secpath

import (
	"os"

	"golang.org/x/sys/unix"
)

// Kind is the filesystem object kind relevant to the permission policy.
type Kind int

// Object kinds. Anything that is neither a regular file nor a directory is
// KindOther and never secure.
const (
	KindOther Kind = iota
	KindFile
	KindDir
)

var kindString = []string{"other", "file", "dir"}

func (k Kind) String() string {
	i := int(k)
	if i < 0 || i >= len(kindString) {
		i = 0
	}
	return kindString[i]
}

// Mode bit policy. A file must carry the setuid bit, be executable and
// readable by its owner, and grant no write or execute bit to group or
// other. A directory must be owner-writable only.
const (
	fileMask     = 0o4522
	fileExpected = 0o4500
	dirMask      = 0o522
	dirExpected  = 0o500
)

// Info is the result of a single check: who owns the object, what it is,
// and whether its mode bits satisfy the policy for its kind.
type Info struct {
	UID    uint32
	Kind   Kind
	Secure bool
}

// SecureMode reports whether raw stat mode bits satisfy the policy for the
// given kind. Exposed separately from Check so the policy itself is
// testable without touching the filesystem.
func SecureMode(kind Kind, mode uint32) bool {
	switch kind {
	case KindFile:
		return mode&fileMask == fileExpected
	case KindDir:
		return mode&dirMask == dirExpected
	default:
		return false
	}
}

// Check stats path and evaluates the permission policy against it. The
// result is always computed fresh: the filesystem is adversarial input and
// must never be cached across decisions. Returns an error satisfying
// os.ErrNotExist when the object is missing, which callers treat as a
// distinct condition from other stat failures.
func Check(path string) (Info, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Info{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	var kind Kind
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFREG:
		kind = KindFile
	case unix.S_IFDIR:
		kind = KindDir
	default:
		kind = KindOther
	}

	return Info{
		UID:    st.Uid,
		Kind:   kind,
		Secure: SecureMode(kind, uint32(st.Mode)),
	}, nil
}
