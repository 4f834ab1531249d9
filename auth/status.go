package auth

// Reason classifies a terminal authorization failure. The categories are
// deliberately broad so diagnostics do not disclose which exact check
// tripped beyond the affected subject.
type Reason int

// Denial reasons, one per distinct failure in the chain.
const (
	ReasonInvalid Reason = iota
	ReasonEnvironment
	ReasonNoTarget
	ReasonOwnerExec
	ReasonPermExec
	ReasonOwnerParent
	ReasonPermParent
	ReasonOwnerTarget
	ReasonPermTarget
)

// Process exit codes: category bit 32 plus a sub-code.
const (
	CodeGeneric     = 32 | 1
	CodeEnvironment = 32 | 2
	CodeNoTarget    = 32 | 3
	CodeOwnerExec   = 32 | 8 | 0
	CodePermExec    = 32 | 8 | 1
	CodeOwnerParent = 32 | 8 | 2
	CodePermParent  = 32 | 8 | 3
	// owner and permission failures on the target share one code
	CodeTarget = 32 | 6
)

var reasonString = []string{
	"invalid",
	"environment error",
	"unable to find the target executable",
	"you are not the owner of this executable",
	"the executable permissions must include the SUID bit as well as be writable by only the owning user",
	"the owner of the parent directory is not the same as the executable",
	"the parent directory permissions must be writable by only the owning user",
	"the owner of the target executable is not the same as the executable",
	"the target executable permissions must include the SUID bit as well as be writable by only the owning user",
}

func (r Reason) String() string {
	i := int(r)
	if i < 0 || i >= len(reasonString) {
		i = 0
	}
	return reasonString[i]
}

// ExitCode maps the reason to the process exit code reported to the caller.
func (r Reason) ExitCode() int {
	switch r {
	case ReasonEnvironment:
		return CodeEnvironment
	case ReasonNoTarget:
		return CodeNoTarget
	case ReasonOwnerExec:
		return CodeOwnerExec
	case ReasonPermExec:
		return CodePermExec
	case ReasonOwnerParent:
		return CodeOwnerParent
	case ReasonPermParent:
		return CodePermParent
	case ReasonOwnerTarget, ReasonPermTarget:
		return CodeTarget
	default:
		return CodeGeneric
	}
}

// DeniedError is a terminal authorization failure. Once produced, the
// launcher must not spawn anything.
type DeniedError struct {
	Reason Reason
	Path   string // offending filesystem subject, if any
	Err    error  // underlying cause, if any
}

func (e *DeniedError) Error() string {
	s := e.Reason.String()
	if e.Path != "" {
		s += ": " + e.Path
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *DeniedError) Unwrap() error {
	return e.Err
}
