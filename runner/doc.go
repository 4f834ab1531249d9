// Package runner supervises the authorized target as a child process with
// the target owner's credentials and relays captured signals to it.
//
// # Status
//
// Status defines the supervision result status including
//
//	Normal (child exited with a code)
//	Signalled (child terminated by a signal)
//	Runner Error (spawn failed or status unreadable)
//
// # Result
//
// Result carries the final Status, the raw exit status and a detailed
// error message for supervisor errors.
//
// # Signal relay
//
// Signals captured by the process are forwarded to the child. A signal
// arriving before the child pid is known is queued, and flushed in the
// same critical section that publishes the pid, so none are lost in the
// spawn window. Signals whose disposition was already "ignore" at startup
// are left ignored.
package runner
