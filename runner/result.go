package runner

import "fmt"

// Status is the supervision result status.
type Status int

// Result status for the supervised child.
const (
	StatusInvalid Status = iota // 0 not initialized
	// Normal
	StatusNormal // 1 child exited with a code
	// Runtime
	StatusSignalled // 2 child terminated by a signal
	// Supervisor error
	StatusRunnerError // 3 spawn failed or status unreadable
)

var statusString = []string{
	"Invalid",
	"",
	"Signalled",
	"Runner Error",
}

func (s Status) String() string {
	i := int(s)
	if i < 0 || i >= len(statusString) {
		i = 0
	}
	return statusString[i]
}

func (s Status) Error() string {
	return s.String()
}

// Result is the final outcome of one supervised run.
type Result struct {
	Status            // result status
	ExitStatus int    // exit code (signal number if signalled)
	Error      string // detailed error message for supervisor errors
}

func (r Result) String() string {
	switch r.Status {
	case StatusNormal:
		return fmt.Sprintf("Result[Exited(%d)]", r.ExitStatus)
	case StatusSignalled:
		return fmt.Sprintf("Result[Signalled(%d)]", r.ExitStatus)
	case StatusRunnerError:
		return fmt.Sprintf("Result[RunnerFailed(%s)]", r.Error)
	default:
		return fmt.Sprintf("Result[%v(%s %d)]", r.Status, r.Error, r.ExitStatus)
	}
}
