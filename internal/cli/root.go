package cli

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/hasher/internal/digest"
	"github.com/vvka-141/hasher/pkg/hasher"
)

const asciiLogo = `
  _               _
 | |__   __ _ ___| |__   ___ _ __
 | '_ \ / _` + "`" + ` / __| '_ \ / _ \ '__|
 | | | | (_| \__ \ | | |  __/ |
 |_| |_|\__,_|___/_| |_|\___|_|`

var rootCmd = &cobra.Command{
	Use:   "hasher <algorithm> [input ...]",
	Short: "Hash files with a selectable digest algorithm",
	Long: asciiLogo + `

hasher streams each input through the selected digest algorithm and prints
one "<hex-digest>  <name>" line per input, in input order. With
--checksum-file it verifies a manifest instead of printing digests.

Inputs are hashed on a bounded worker pool (--parallel); concurrency never
reorders output. Standard input is read when no inputs are given, or where
"-" appears in the input list (at most once).

Supported algorithms:
  ` + strings.Join(digest.Names(), ", ") + `

Exit Codes:
  0  - Success
  1  - Read error or verification mismatch
  2  - CLI usage error (unknown algorithm, invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or unparseable manifest`,
	Args:              RequireAlgorithm,
	ValidArgsFunction: completeAlgorithms,
	RunE:              runRoot,
	SilenceUsage:      true,
}

// Execute runs the root command
func Execute() error {
	if hasVersionFlag(os.Args[1:]) {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

type rootFlagValues struct {
	checksumFile string
	parallel     int
	bufferSize   int
	globInputs   bool
	progress     bool
}

var rootFlags rootFlagValues

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")

	flags := rootCmd.Flags()

	flags.StringVarP(&rootFlags.checksumFile, "checksum-file", "c", "",
		"Verify inputs against a checksum manifest instead of printing digests\n"+
			"Each manifest line is \"<hex-digest>  <path>\"\n"+
			"With no value, the default manifest name \""+hasher.DefaultManifestName+"\" is used")
	flags.Lookup("checksum-file").NoOptDefVal = hasher.DefaultManifestName

	flags.IntVarP(&rootFlags.parallel, "parallel", "p", 1,
		"Number of inputs hashed concurrently\n"+
			"With no value, one worker per CPU is used")
	flags.Lookup("parallel").NoOptDefVal = strconv.Itoa(runtime.NumCPU())

	flags.IntVarP(&rootFlags.bufferSize, "buffer-size", "b", hasher.DefaultBufferSize,
		fmt.Sprintf("Read chunk size in bytes (default %d)", hasher.DefaultBufferSize))

	flags.BoolVarP(&rootFlags.globInputs, "glob", "g", false,
		"Treat inputs as glob patterns (\"**\" crosses directories)\n"+
			"A pattern matching nothing contributes no inputs")

	flags.BoolVar(&rootFlags.progress, "progress", false,
		"Report cumulative progress on the diagnostic stream\n"+
			"Interactive terminals get a live bar, pipelines get plain lines")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
