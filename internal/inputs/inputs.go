// Package inputs resolves command-line arguments into the ordered list of
// sources to hash: file paths, glob patterns, or standard input.
package inputs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/vvka-141/hasher/pkg/hasher"
)

// globMeta are the characters that make an argument a pattern rather than
// a literal path.
const globMeta = "*?[{"

// Resolve turns CLI arguments into the ordered input list.
//
// Rules:
//   - no arguments: a single standard-input entry
//   - "-": the standard-input sentinel, allowed at most once
//   - with expandGlobs, each argument is treated as a glob pattern
//     (supporting "**" across directories) and expanded deterministically;
//     a pattern matching nothing contributes no inputs
//
// Requesting standard input more than once is a usage error detected here,
// before any file is opened.
func Resolve(args []string, expandGlobs bool) ([]hasher.Input, error) {
	if len(args) == 0 {
		return []hasher.Input{{Name: hasher.StdinName, Stdin: true}}, nil
	}

	var out []hasher.Input
	stdinSeen := false

	for _, arg := range args {
		if arg == hasher.StdinName {
			if stdinSeen {
				return nil, fmt.Errorf("%w: %q appears twice", hasher.ErrStdinConflict, hasher.StdinName)
			}
			stdinSeen = true
			out = append(out, hasher.Input{Name: hasher.StdinName, Stdin: true})
			continue
		}

		if expandGlobs && strings.ContainsAny(arg, globMeta) {
			matches, err := expandGlob(arg)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				out = append(out, hasher.Input{Name: m})
			}
			continue
		}

		out = append(out, hasher.Input{Name: arg})
	}

	return out, nil
}

// TotalBytes returns the expected byte total across inputs, or -1 when any
// size is unknown (standard input, or a path that cannot be stat'ed).
// Used only to scale progress display; hashing counts actual bytes read.
func TotalBytes(ins []hasher.Input) int64 {
	var total int64
	for _, in := range ins {
		if in.Stdin {
			return -1
		}
		info, err := os.Stat(in.Name)
		if err != nil || info.IsDir() {
			return -1
		}
		total += info.Size()
	}
	return total
}

// expandGlob walks the filesystem under the pattern's literal prefix and
// returns every regular file matching the pattern, sorted.
func expandGlob(pattern string) ([]string, error) {
	g, err := glob.Compile(filepath.ToSlash(pattern), '/')
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	base := literalPrefix(pattern)

	var matches []string
	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees just contribute no matches.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if g.Match(filepath.ToSlash(path)) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("expanding glob %q: %w", pattern, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// literalPrefix returns the longest directory prefix of pattern that
// contains no glob metacharacters, so the walk starts as deep as possible.
func literalPrefix(pattern string) string {
	dir := pattern
	for strings.ContainsAny(dir, globMeta) {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	if dir == pattern {
		// No metacharacters at all; walk the containing directory.
		dir = filepath.Dir(pattern)
	}
	return dir
}
