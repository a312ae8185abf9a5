package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/hasher/internal/digest"
)

// RequireAlgorithm validates that the <algorithm> argument is present.
// Returns a helpful error message with usage and examples if missing.
// The algorithm value itself is checked against the catalog before any I/O.
func RequireAlgorithm(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <algorithm>

Usage: %s

Example:
  %s sha256 file.txt

Supported algorithms: %s`, cmd.UseLine(), cmd.CommandPath(), strings.Join(digest.Names(), ", "))
	}
	return nil
}
