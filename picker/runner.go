package picker

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes dialog scripts. The real implementation shells out; tests
// inject mocks.
type Runner interface {
	// Run executes the command and returns its stdout.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates the default runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s: %s", name, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}

// MockRunner is a scripted Runner for testing.
type MockRunner struct {
	RunFunc func(ctx context.Context, name string, args ...string) (string, error)

	// Calls records each invocation as "name arg0 arg1 ...".
	Calls []string
}

// Run implements Runner.
func (m *MockRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	m.Calls = append(m.Calls, strings.Join(append([]string{name}, args...), " "))
	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args...)
	}
	return "", nil
}
