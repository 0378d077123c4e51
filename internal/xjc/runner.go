package xjc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/logging"
)

// Runner invokes the external XJC binding compiler with an argument
// vector and a classpath. A zero exit status denotes success.
type Runner interface {
	Run(ctx context.Context, args []string, classpath string) (int, error)
}

// ExecRunner runs the configured XJC command as a subprocess. The
// classpath is exported through the CLASSPATH environment variable in
// addition to any -classpath token already present in the argument vector.
type ExecRunner struct {
	command string
	log     *logrus.Entry
}

// NewExecRunner creates an ExecRunner for the given command name or path.
func NewExecRunner(command string) *ExecRunner {
	return &ExecRunner{command: command, log: logging.NewEntry("xjc")}
}

// Run executes the tool and returns its exit status. A non-zero status is
// not an error here; interpreting it is the orchestrator's job.
func (r *ExecRunner) Run(ctx context.Context, args []string, classpath string) (int, error) {
	cmd := exec.CommandContext(ctx, r.command, args...)
	cmd.Env = os.Environ()
	if classpath != "" {
		cmd.Env = append(cmd.Env, "CLASSPATH="+classpath)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.log.Debugf("running %s with %d arguments", r.command, len(args))
	err := cmd.Run()

	if stdout.Len() > 0 {
		r.log.Debugf("%s stdout: %s", r.command, stdout.String())
	}
	if stderr.Len() > 0 {
		r.log.Debugf("%s stderr: %s", r.command, stderr.String())
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("failed to run %s: %w", r.command, err)
	}
	return 0, nil
}
