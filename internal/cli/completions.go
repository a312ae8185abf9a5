package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/hasher/internal/digest"
)

// completeAlgorithms provides shell completion for the <algorithm> argument.
// Later positional arguments are file paths, handled by the shell.
func completeAlgorithms(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	var matches []string
	for _, name := range digest.Names() {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}

	return matches, cobra.ShellCompDirectiveNoFileComp
}
