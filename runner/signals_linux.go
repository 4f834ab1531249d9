package runner

import (
	"os"

	"golang.org/x/sys/unix"
)

// relayedSignals is the fixed set forwarded to the child. SIGCHLD, SIGKILL,
// SIGSEGV, SIGTRAP and the real-time range are deliberately absent and keep
// their default disposition. SIGSTOP cannot be caught; registering it is a
// no-op.
var relayedSignals = []os.Signal{
	unix.SIGABRT,
	unix.SIGALRM,
	unix.SIGCONT,
	unix.SIGFPE,
	unix.SIGHUP,
	unix.SIGILL,
	unix.SIGINT,
	unix.SIGPIPE,
	unix.SIGPOLL,
	unix.SIGQUIT,
	unix.SIGSTOP,
	unix.SIGSYS,
	unix.SIGTSTP,
	unix.SIGTTIN,
	unix.SIGTTOU,
	unix.SIGURG,
	unix.SIGUSR1,
	unix.SIGUSR2,
	unix.SIGXCPU,
	unix.SIGXFSZ,
}
