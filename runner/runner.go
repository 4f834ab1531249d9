package runner

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// Runner describes one supervised launch of the authorized target,
// including the credentials applied to the child. All fields are set
// before Run and never mutated afterwards.
type Runner struct {
	// target path and argv passed to the child process
	Path string
	Args []string

	// sanitized environment for the child
	Env []string

	// current working directory for the child
	WorkDir string

	// credentials applied atomically as part of process creation
	UID, GID uint32

	// optional debug logging; never used from the relay critical section
	Log *logrus.Entry
}

// Run spawns the target and supervises it until it terminates, relaying
// captured signals to it. The spawn happens on a worker goroutine; any
// signal received between dispatching the worker and the child pid
// becoming known is queued by the relay and flushed the moment the pid is
// published. Run blocks until the worker reports the final result.
func (r *Runner) Run() Result {
	done := make(chan Result, 1)
	rl := newRelay()

	go r.supervise(rl, done)

	ch := make(chan os.Signal, len(relayedSignals))
	notifyRelayed(ch)
	defer signal.Stop(ch)
	go rl.forward(ch)

	return <-done
}

// supervise is the worker: spawn, publish the pid, wait, report.
func (r *Runner) supervise(rl *relay, done chan<- Result) {
	cmd := exec.Command(r.Path, r.Args...)
	cmd.Dir = r.WorkDir
	cmd.Env = r.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// uid and gid are applied between fork and exec; the child never
	// exists with the launcher's elevated credentials. Supplementary
	// groups are inherited from the caller.
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Credential: &syscall.Credential{
			Uid:         r.UID,
			Gid:         r.GID,
			NoSetGroups: true,
		},
	}

	if err := cmd.Start(); err != nil {
		done <- Result{Status: StatusRunnerError, Error: err.Error()}
		return
	}
	rl.publish(cmd.Process.Pid)
	r.debugf("started %s pid=%d uid=%d gid=%d", r.Path, cmd.Process.Pid, r.UID, r.GID)

	done <- translate(cmd.Wait())
}

// translate maps the wait outcome onto a Result. The child's exit code is
// passed through raw; a signal-terminated or undeterminable status is
// reported as such for the caller to map onto its sentinel code.
func translate(err error) Result {
	if err == nil {
		return Result{Status: StatusNormal}
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ws, ok := ee.Sys().(syscall.WaitStatus); ok {
			switch {
			case ws.Exited():
				return Result{Status: StatusNormal, ExitStatus: ws.ExitStatus()}
			case ws.Signaled():
				return Result{Status: StatusSignalled, ExitStatus: int(ws.Signal())}
			}
		}
	}
	return Result{Status: StatusRunnerError, Error: err.Error()}
}

func (r *Runner) debugf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Debugf(format, args...)
	}
}
