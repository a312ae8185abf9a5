package progress

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how progress should be rendered.
type Mode int

const (
	// ModePlain logs cumulative byte counts as plain lines. Used for CI/CD
	// pipelines, scripts, and redirected output.
	ModePlain Mode = iota
	// ModeInteractive renders a live progress bar on the terminal.
	ModeInteractive
)

// DetectMode determines whether a live progress bar can be rendered.
//
// Returns ModePlain if:
//   - stderr is not a terminal (redirected, CI/CD)
//   - HASHER_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//
// Returns ModeInteractive otherwise. Progress always renders to stderr so
// digests on stdout stay machine-readable.
func DetectMode() Mode {
	if os.Getenv("HASHER_NON_INTERACTIVE") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ModePlain
	}

	return ModeInteractive
}
