package snippet

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// Sink places snippet bytes onto the system clipboard. A lenient sink must
// not fail the surrounding command when the clipboard is unavailable; a
// strict one surfaces spawn and write failures to the caller.
type Sink interface {
	Copy(text string) error
}

// CheckClipboard verifies that a usable clipboard utility is available on
// the system PATH. It runs once at startup, before any subcommand logic.
// Returns an error if no suitable utility is found for the current OS.
func CheckClipboard() error {
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("pbcopy"); err != nil {
			return fmt.Errorf("pbcopy binary not found: %w", err)
		}
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return nil
		}
		return fmt.Errorf("no clipboard utility found (xclip or xsel required)")
	case "windows":
		if _, err := exec.LookPath("clip"); err != nil {
			return fmt.Errorf("clip binary not found: %w", err)
		}
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
	return nil
}

// clipboardCommand builds the platform clipboard command:
// - macOS: pbcopy
// - Linux: xclip or xsel
// - Windows: clip
func clipboardCommand() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
		return nil, fmt.Errorf("no clipboard utility found (xclip or xsel required)")
	case "windows":
		return exec.Command("clip"), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// NewSink returns the exec-backed clipboard sink. The default lenient mode
// starts the child, writes the snippet to its stdin, and never waits on or
// inspects the child's exit status: a failed copy goes unreported. Strict
// mode runs the child to completion and returns any failure.
func NewSink(strict bool) Sink {
	return &execSink{strict: strict}
}

type execSink struct {
	strict bool
}

func (s *execSink) Copy(text string) error {
	cmd, err := clipboardCommand()
	if err != nil {
		if s.strict {
			return err
		}
		return nil
	}

	if s.strict {
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("clipboard copy failed: %w", err)
		}
		return nil
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil
	}
	if err := cmd.Start(); err != nil {
		return nil
	}
	_, _ = io.WriteString(stdin, text)
	_ = stdin.Close()
	return nil
}
