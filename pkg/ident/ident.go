// Package ident reads the process identity used for authorization decisions.
package ident

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Identity holds the credentials the authorization chain compares file
// owners against. It is read once at startup and never changes.
type Identity struct {
	RUID uint32 // real user id of the invoking user
	EUID uint32 // effective user id (differs from RUID under setuid)
	EGID uint32 // effective group id
}

// Current reads the calling process identity from the kernel.
func Current() Identity {
	return Identity{
		RUID: uint32(unix.Getuid()),
		EUID: uint32(unix.Geteuid()),
		EGID: uint32(unix.Getegid()),
	}
}

// Root reports whether the effective user is the privileged root identity.
func (id Identity) Root() bool {
	return id.EUID == 0
}

func (id Identity) String() string {
	return fmt.Sprintf("Identity[uid=%d euid=%d egid=%d]", id.RUID, id.EUID, id.EGID)
}
