package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/hasher/pkg/hasher"
)

// Entry is one parsed manifest line: an expected digest for a path.
type Entry struct {
	// Digest is the expected digest, normalized to lowercase hex.
	Digest string

	// Path is the file path exactly as written in the manifest.
	Path string

	// Binary marks entries whose path carried the coreutils-style "*"
	// binary-mode prefix. Hashing is always binary; the marker is kept
	// so output can round-trip the manifest format.
	Binary bool
}

// Manifest is an ordered collection of checksum entries.
// Entry order is preserved for reporting; Expected resolves by path.
type Manifest struct {
	entries []Entry
	byPath  map[string]string
}

// Entries returns the manifest entries in file order.
// When a path occurs more than once, every occurrence is listed here but
// Expected resolves to the last one (last occurrence wins).
func (m *Manifest) Entries() []Entry {
	return m.entries
}

// Expected returns the expected digest for path.
func (m *Manifest) Expected(path string) (string, bool) {
	digest, ok := m.byPath[path]
	return digest, ok
}

// Len returns the number of manifest lines parsed.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Paths returns the distinct manifest paths in first-seen order.
func (m *Manifest) Paths() []string {
	seen := make(map[string]bool, len(m.entries))
	paths := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		if !seen[e.Path] {
			seen[e.Path] = true
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// Parse reads checksum manifest lines from r.
//
// Format rules:
//   - One entry per line: <hex-digest> <whitespace> <path>
//   - A "*" immediately before the path marks binary mode (coreutils style)
//   - Blank lines are ignored
//
// Any malformed line (missing fields, non-hex digest) fails the whole parse
// with the offending line number. A corrupted manifest is never partially
// trusted.
func Parse(r io.Reader) (*Manifest, error) {
	m := &Manifest{byPath: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", hasher.ErrManifestInvalid, lineNum, err)
		}

		m.entries = append(m.entries, entry)
		// Duplicate paths: last occurrence wins.
		m.byPath[entry.Path] = entry.Digest
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading manifest: %v", hasher.ErrManifestInvalid, err)
	}

	return m, nil
}

// Load parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening checksum file: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func parseLine(line string) (Entry, error) {
	digest, rest, ok := cutFields(line)
	if !ok {
		return Entry{}, fmt.Errorf("expected <digest> <path>, got %q", strings.TrimSpace(line))
	}

	if err := validateHex(digest); err != nil {
		return Entry{}, err
	}

	binary := false
	if strings.HasPrefix(rest, "*") {
		binary = true
		rest = rest[1:]
	}
	if rest == "" {
		return Entry{}, fmt.Errorf("expected <digest> <path>, got %q", strings.TrimSpace(line))
	}

	return Entry{Digest: strings.ToLower(digest), Path: rest, Binary: binary}, nil
}

// cutFields splits a manifest line into the digest field and the remainder.
// Only the first whitespace run separates fields; the path itself may
// contain spaces.
func cutFields(line string) (digest, rest string, ok bool) {
	line = strings.TrimLeft(line, " \t")
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return "", "", false
	}
	digest = line[:i]
	// GNU format uses two separator characters ("hex  path" or "hex *path");
	// tolerate any run of spaces/tabs.
	rest = strings.TrimLeft(line[i:], " \t")
	if digest == "" || rest == "" {
		return "", "", false
	}
	return digest, rest, true
}

func validateHex(s string) error {
	if len(s)%2 != 0 {
		return fmt.Errorf("digest %q has odd length", s)
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("digest %q is not hexadecimal", s)
		}
	}
	return nil
}
