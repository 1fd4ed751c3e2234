package operations

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/joshyorko/aptcli/apt"
	"github.com/joshyorko/aptcli/common"
)

var (
	ErrEmptyCommand  = errors.New("empty command line")
	ErrCommandFailed = errors.New("command failed")
	ErrLaunchFailed  = errors.New("command could not be started")
)

// Result is the outcome of a single execution attempt.
type Result struct {
	Argv     apt.Argv
	Success  bool
	ExitCode int
	Err      error
	Elapsed  common.Duration
}

// Runner executes argument vectors one at a time.
type Runner interface {
	Run(argv apt.Argv) Result
}

// ExecRunner starts the program as a child process, wires the standard
// streams straight through and blocks until it exits.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (it *ExecRunner) Run(argv apt.Argv) Result {
	if len(argv) == 0 {
		return Result{ExitCode: -1, Err: ErrEmptyCommand}
	}
	stopwatch := common.Stopwatch("Command %q lasted", argv.String())
	common.Debug("about to run command - %v", argv)

	task := exec.Command(argv[0], argv[1:]...)
	task.Stdin = it.Stdin
	task.Stdout = it.Stdout
	task.Stderr = it.Stderr

	err := task.Run()
	result := Result{Argv: argv, Elapsed: stopwatch.Report()}
	if err == nil {
		result.Success = true
		return result
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		result.Err = fmt.Errorf("%w: %q returned non-zero exit status %d", ErrCommandFailed, argv.String(), result.ExitCode)
	} else {
		result.ExitCode = -1
		result.Err = fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}
	common.Debug("command %q failed: %v", argv.String(), result.Err)
	return result
}

// DryRunner only reports what would have been executed.
type DryRunner struct {
	Out io.Writer
}

func (it *DryRunner) Run(argv apt.Argv) Result {
	if len(argv) == 0 {
		return Result{ExitCode: -1, Err: ErrEmptyCommand}
	}
	fmt.Fprintf(it.Out, "Dry run, not executing: %s\n", argv.String())
	return Result{Argv: argv, Success: true}
}
