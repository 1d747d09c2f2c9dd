package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/randalmurphal/ragforge/errors"
)

// showCursor is the ANSI sequence restoring the cursor after an abort.
const showCursor = "\x1b[?25h"

// Terminal is a Prompter over an input/output stream pair, normally
// stdin/stdout.
type Terminal struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewTerminal creates a terminal prompter.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// RestoreTerminal undoes any terminal state a prompt may have left behind.
// Called on the abort path before exiting.
func RestoreTerminal(out io.Writer) {
	fmt.Fprint(out, showCursor)
}

// readLine reads one answer line. EOF means the operator closed stdin,
// which counts as an abort. The read runs in a goroutine so an interrupt
// delivered mid-prompt unblocks immediately; the run is over either way.
func (t *Terminal) readLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		RestoreTerminal(t.out)
		return "", errors.NewAbortedError()
	}

	type answer struct {
		text string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				ch <- answer{err: fmt.Errorf("read answer: %w", err)}
				return
			}
			ch <- answer{err: errors.NewAbortedError()}
			return
		}
		ch <- answer{text: strings.TrimSpace(t.scanner.Text())}
	}()

	select {
	case <-ctx.Done():
		RestoreTerminal(t.out)
		return "", errors.NewAbortedError()
	case a := <-ch:
		if a.err != nil {
			RestoreTerminal(t.out)
			return "", a.err
		}
		return a.text, nil
	}
}

// Select implements Prompter. Choices are numbered; an empty answer takes
// the default. Unrecognized answers re-ask.
func (t *Terminal) Select(ctx context.Context, question string, choices []Choice, def string) (string, error) {
	fmt.Fprintf(t.out, "%s\n", question)
	defIdx := 1
	for i, c := range choices {
		marker := " "
		if c.Value == def {
			marker = "*"
			defIdx = i + 1
		}
		fmt.Fprintf(t.out, " %s %d) %s\n", marker, i+1, c.Label)
	}

	for {
		fmt.Fprintf(t.out, "Choice [%d]: ", defIdx)
		line, err := t.readLine(ctx)
		if err != nil {
			return "", err
		}
		if line == "" {
			return choices[defIdx-1].Value, nil
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1].Value, nil
		}
		// Answers may also name the value directly.
		for _, c := range choices {
			if strings.EqualFold(line, c.Value) {
				return c.Value, nil
			}
		}
		fmt.Fprintf(t.out, "Please answer 1-%d.\n", len(choices))
	}
}

// MultiSelect implements Prompter. Answers are comma-separated numbers; an
// empty answer takes the default set.
func (t *Terminal) MultiSelect(ctx context.Context, question string, choices []Choice, def []string) ([]string, error) {
	fmt.Fprintf(t.out, "%s\n", question)
	for i, c := range choices {
		fmt.Fprintf(t.out, "   %d) %s\n", i+1, c.Label)
	}

	for {
		fmt.Fprint(t.out, "Choices (comma-separated, empty for none): ")
		line, err := t.readLine(ctx)
		if err != nil {
			return nil, err
		}
		if line == "" {
			return def, nil
		}

		var picked []string
		ok := true
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil || n < 1 || n > len(choices) {
				ok = false
				break
			}
			picked = append(picked, choices[n-1].Value)
		}
		if ok {
			return picked, nil
		}
		fmt.Fprintf(t.out, "Please answer with numbers 1-%d.\n", len(choices))
	}
}

// Input implements Prompter.
func (t *Terminal) Input(ctx context.Context, question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(t.out, "%s: ", question)
	}

	line, err := t.readLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(t.out, "%s [%s]: ", question, hint)
		line, err := t.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(t.out, "Please answer y or n.")
	}
}
