package picker

import (
	"context"
	"runtime"
	"strings"

	"github.com/randalmurphal/ragforge/errors"
)

// Picker opens the host's native file and folder dialogs.
type Picker struct {
	goos   string
	runner Runner
}

// Option configures Picker.
type Option func(*Picker)

// WithGOOS overrides host-OS detection. This is primarily used for testing
// platform gating.
func WithGOOS(goos string) Option {
	return func(p *Picker) {
		p.goos = goos
	}
}

// WithRunner sets a custom command runner for dialog invocation.
// This is primarily used for testing to inject mock command execution.
func WithRunner(runner Runner) Option {
	return func(p *Picker) {
		p.runner = runner
	}
}

// New creates a native dialog picker for the current host.
func New(opts ...Option) *Picker {
	p := &Picker{
		goos:   runtime.GOOS,
		runner: NewExecRunner(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Supported reports whether the OS has native dialog support.
func Supported(goos string) bool {
	return goos == "windows" || goos == "darwin"
}

// PickFile opens the native file dialog and returns the chosen path.
func (p *Picker) PickFile(ctx context.Context) (string, error) {
	return p.pick(ctx, false)
}

// PickFolder opens the native folder dialog and returns the chosen path.
func (p *Picker) PickFolder(ctx context.Context) (string, error) {
	return p.pick(ctx, true)
}

func (p *Picker) pick(ctx context.Context, folder bool) (string, error) {
	var name string
	var args []string

	switch p.goos {
	case "darwin":
		name = "osascript"
		script := `POSIX path of (choose file with prompt "Select a data file:")`
		if folder {
			script = `POSIX path of (choose folder with prompt "Select a data folder:")`
		}
		args = []string{"-e", script}

	case "windows":
		name = "powershell"
		script := fileDialogPS
		if folder {
			script = folderDialogPS
		}
		args = []string{"-NoProfile", "-NonInteractive", "-Command", script}

	default:
		return "", errors.NewUnsupportedPlatformError(p.goos)
	}

	out, err := p.runner.Run(ctx, name, args...)
	if err != nil {
		return "", errors.NewPickerError(err)
	}

	path := strings.TrimSpace(out)
	if path == "" {
		// Closing the dialog without a selection cancels the whole run.
		return "", errors.NewAbortedError()
	}
	return path, nil
}

// Dialog scripts for Windows. Both print the chosen path, or nothing on
// cancel.
const (
	fileDialogPS = `Add-Type -AssemblyName System.Windows.Forms; ` +
		`$d = New-Object System.Windows.Forms.OpenFileDialog; ` +
		`if ($d.ShowDialog() -eq 'OK') { Write-Output $d.FileName }`

	folderDialogPS = `Add-Type -AssemblyName System.Windows.Forms; ` +
		`$d = New-Object System.Windows.Forms.FolderBrowserDialog; ` +
		`if ($d.ShowDialog() -eq 'OK') { Write-Output $d.SelectedPath }`
)
