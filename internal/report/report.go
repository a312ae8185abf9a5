// Package report formats hashing results for output.
//
// Digest lines go to stdout so they stay machine-readable; per-input errors
// and summaries go to the diagnostic stream. The overall error returned by
// each mode is the single machine-readable success/failure signal, mapped
// to an exit code in main.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/hasher/internal/manifest"
	"github.com/vvka-141/hasher/pkg/hasher"
)

// Reporter writes results in one of the two output modes.
type Reporter struct {
	out    io.Writer
	logger hasher.Logger
}

// New creates a reporter writing digest/verify lines to out.
func New(out io.Writer, logger hasher.Logger) *Reporter {
	return &Reporter{out: out, logger: logger}
}

// PrintDigests emits one `<hex>  <name>` line per result, in input order.
// Results carrying an error are reported to the diagnostic stream instead;
// any such result marks the whole run failed.
func (r *Reporter) PrintDigests(results []hasher.Result) error {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			r.logger.Error("%s: %v", res.Input.Name, res.Err)
			failed++
			continue
		}
		fmt.Fprintf(r.out, "%s  %s\n", res.Digest, res.Input.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed: %w", failed, len(results), hasher.ErrHashingFailed)
	}
	return nil
}

// Classify matches computed results against the manifest's expectations.
// Results must correspond to m.Paths() in order. Duplicate manifest paths
// are verified once, against the last expected digest (last occurrence wins).
func Classify(m *manifest.Manifest, results []hasher.Result) []hasher.Verification {
	byName := make(map[string]hasher.Result, len(results))
	for _, res := range results {
		byName[res.Input.Name] = res
	}

	paths := m.Paths()
	out := make([]hasher.Verification, 0, len(paths))

	for _, path := range paths {
		expected, _ := m.Expected(path)
		v := hasher.Verification{Path: path, Expected: expected}

		res, ok := byName[path]
		switch {
		case !ok:
			v.Outcome = hasher.OutcomeMissing
			v.Err = fmt.Errorf("no result computed for %s", path)
		case res.Err != nil:
			if os.IsNotExist(res.Err) {
				v.Outcome = hasher.OutcomeMissing
			} else {
				v.Outcome = hasher.OutcomeUnreadable
			}
			v.Err = res.Err
		case strings.EqualFold(res.Digest, expected):
			v.Outcome = hasher.OutcomeMatched
			v.Actual = res.Digest
		default:
			v.Outcome = hasher.OutcomeMismatched
			v.Actual = res.Digest
		}

		out = append(out, v)
	}

	return out
}

// PrintVerifications emits one `<path>: OK|FAILED...` line per manifest
// entry and a summary on the diagnostic stream. Returns
// hasher.ErrVerificationFailed if any entry is not Matched.
func (r *Reporter) PrintVerifications(verifications []hasher.Verification) error {
	var matched, mismatched, missing, unreadable int

	for _, v := range verifications {
		fmt.Fprintf(r.out, "%s: %s\n", v.Path, v.Outcome)

		switch v.Outcome {
		case hasher.OutcomeMatched:
			matched++
		case hasher.OutcomeMismatched:
			mismatched++
			r.logger.Verbose("%s: expected %s, got %s", v.Path, v.Expected, v.Actual)
		case hasher.OutcomeMissing:
			missing++
			r.logger.Error("%s: %v", v.Path, v.Err)
		case hasher.OutcomeUnreadable:
			unreadable++
			r.logger.Error("%s: %v", v.Path, v.Err)
		}
	}

	total := len(verifications)
	r.logger.Info("Total %d %s", total, plural(total, "file"))
	r.logger.Info("%d %s OK", matched, plural(matched, "file"))
	if mismatched > 0 {
		r.logger.Info("%d %s checksum mismatch", mismatched, plural(mismatched, "file"))
	}
	if missing > 0 {
		r.logger.Info("%d %s cannot be found", missing, plural(missing, "file"))
	}
	if unreadable > 0 {
		r.logger.Info("%d %s cannot be read", unreadable, plural(unreadable, "file"))
	}

	if failed := total - matched; failed > 0 {
		return fmt.Errorf("%d of %d entries failed: %w", failed, total, hasher.ErrVerificationFailed)
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
