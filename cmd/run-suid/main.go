// Command run-suid validates a strict ownership chain over its own
// executable, the executable's parent directory and the sibling target
// binary, then executes the target with the target owner's credentials,
// supervising it until it terminates and relaying captured signals to it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/TimLuq/run-suid/auth"
	"github.com/TimLuq/run-suid/pkg/ident"
	"github.com/TimLuq/run-suid/pkg/pathenv"
	"github.com/TimLuq/run-suid/runner"
)

// set with -ldflags "-X main.version=..."
var (
	name     = "run-suid"
	version  = "dev"
	author   = "TimLuq"
	homepage = "https://github.com/TimLuq/run-suid"
	license  = "MIT"
)

const description = `Executes the sibling "<name>.run-suid" binary with its owner's credentials
after validating that the launcher, its directory and the target are owned
by the invoking user and writable by nobody else.`

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	flagArgs, passArgs := splitArgs(argv[1:])

	var verbose, verboseLong, showVersion, dryRun bool
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.BoolVar(&verbose, "v", false, "Display verbose runtime information")
	fs.BoolVar(&verboseLong, "verbose", false, "Display verbose runtime information")
	fs.BoolVar(&showVersion, "version", false, "Display version information")
	fs.BoolVar(&dryRun, "dry-run", false, "Don't actually run the target executable")
	fs.Usage = func() { printUsage(fs.Output(), argv[0]) }

	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stdout)
			fmt.Fprintln(os.Stdout, description)
			fmt.Fprintln(os.Stdout)
			printVersion(os.Stdout)
			return 0
		}
		return auth.CodeGeneric
	}
	if rest := fs.Args(); len(rest) > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected argument: %q\n", rest[0])
		return auth.CodeGeneric
	}
	if showVersion {
		printVersion(os.Stdout)
		return 0
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose || verboseLong {
		log.SetLevel(logrus.DebugLevel)
	}
	ent := logrus.NewEntry(log)

	id := ident.Current()
	ent.Debug(id)

	cwd, err := getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to get the current directory: %v\n", err)
		return auth.CodeGeneric
	}

	exe, err := executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to find the name of the executable: %v\n", err)
		return auth.CodeEnvironment
	}

	chain := &auth.Chain{ID: id, Log: ent}
	a, err := chain.Authorize(exe)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		var denied *auth.DeniedError
		if errors.As(err, &denied) {
			return denied.Reason.ExitCode()
		}
		return auth.CodeGeneric
	}

	if dryRun {
		fmt.Println(dryRunLine(a.Target, passArgs))
		return 0
	}

	env := pathenv.Environ(os.Getenv("PATH"))
	ent.Debugf("environment: %v", env)

	r := &runner.Runner{
		Path:    a.Target,
		Args:    passArgs,
		Env:     env,
		WorkDir: cwd,
		UID:     a.UID,
		GID:     id.EGID,
		Log:     ent,
	}
	res := r.Run()
	ent.Debug(res)

	switch res.Status {
	case runner.StatusNormal:
		return res.ExitStatus
	case runner.StatusSignalled:
		return auth.CodeGeneric
	default:
		fmt.Fprintf(os.Stderr, "Unable to execute command: %s\n", res.Error)
		return auth.CodeGeneric
	}
}

// splitArgs separates the launcher's own flags from the arguments passed
// verbatim to the target after the "--" separator.
func splitArgs(args []string) (flags, pass []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// dryRunLine renders the fully resolved invocation, each token quoted.
func dryRunLine(target string, args []string) string {
	var sb strings.Builder
	sb.WriteString("Dry run: would have succeeded in starting the process: ")
	fmt.Fprintf(&sb, "%q", target)
	for _, a := range args {
		fmt.Fprintf(&sb, " %q", a)
	}
	return sb.String()
}

// getwd resolves the caller's canonical current directory.
func getwd() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(cwd)
}

// executable resolves the launcher's own canonical path.
func executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

func printUsage(w io.Writer, argv0 string) {
	fmt.Fprintf(w, "Usage: %s [OPTIONS] [-- EXE_ARGS..]\n", argv0)
	fmt.Fprintln(w, "  OPTIONS: ")
	fmt.Fprintln(w, "    -h    --help          Display this help text.")
	fmt.Fprintln(w, "    -v    --verbose       Display verbose runtime information.")
	fmt.Fprintln(w, "          --version       Display version information.")
	fmt.Fprintln(w, "          --dry-run       Don't actually run the target executable,")
	fmt.Fprintln(w, "                          only check that it would have run.")
	fmt.Fprintln(w, "  EXE_ARGS:")
	fmt.Fprintln(w, "    if specified, each argument will be passed to the executed subprocess.")
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", name, version)
	fmt.Fprintf(w, "Author:   %s\n", author)
	fmt.Fprintf(w, "Homepage: %s\n", homepage)
	fmt.Fprintf(w, "License:  %s\n", license)
}
