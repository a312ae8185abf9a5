package cli

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vvka-141/hasher/internal/logging"
	"github.com/vvka-141/hasher/pkg/hasher"
)

func resetRootFlags() {
	rootFlags = rootFlagValues{
		parallel:   1,
		bufferSize: hasher.DefaultBufferSize,
	}
}

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	return &buf
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func TestRunRoot_DigestMode(t *testing.T) {
	resetRootFlags()
	out := captureOut(t)

	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("alpha"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("beta"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runRoot(rootCmd, []string{"sha256", a, b}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := sha256Hex([]byte("alpha")) + "  " + a + "\n" +
		sha256Hex([]byte("beta")) + "  " + b + "\n"
	if out.String() != want {
		t.Errorf("output mismatch:\ngot:  %q\nwant: %q", out.String(), want)
	}
}

func TestRunRoot_UnknownAlgorithm(t *testing.T) {
	resetRootFlags()
	captureOut(t)

	err := runRoot(rootCmd, []string{"sha257"})
	if err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
	if exitCode := hasher.ExitCodeForError(err); exitCode != hasher.ExitUsageError {
		t.Errorf("expected exit code %d (usage), got %d for: %v", hasher.ExitUsageError, exitCode, err)
	}
}

func TestRunRoot_MissingInputFailsRun(t *testing.T) {
	resetRootFlags()
	captureOut(t)

	err := runRoot(rootCmd, []string{"sha256", "/nonexistent/path/abc123"})
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !errors.Is(err, hasher.ErrHashingFailed) {
		t.Errorf("expected ErrHashingFailed, got: %v", err)
	}
}

func TestRunRoot_InvalidParallelism(t *testing.T) {
	resetRootFlags()
	captureOut(t)
	rootFlags.parallel = 0

	err := runRoot(rootCmd, []string{"sha256"})
	if err == nil {
		t.Fatal("expected error for zero workers")
	}
	if !errors.Is(err, hasher.ErrInvalidParallelism) {
		t.Errorf("expected ErrInvalidParallelism, got: %v", err)
	}
}

func TestRunRoot_VerifyOK(t *testing.T) {
	resetRootFlags()
	out := captureOut(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(file, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}
	manifestPath := filepath.Join(dir, "CHECKSUMS")
	line := sha256Hex([]byte("payload")) + "  " + file + "\n"
	if err := os.WriteFile(manifestPath, []byte(line), 0644); err != nil {
		t.Fatal(err)
	}
	rootFlags.checksumFile = manifestPath

	if err := runRoot(rootCmd, []string{"sha256"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), file+": OK\n") {
		t.Errorf("expected OK line, got: %q", out.String())
	}
}

func TestRunRoot_VerifyMismatch(t *testing.T) {
	resetRootFlags()
	out := captureOut(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(file, []byte("tampered"), 0644); err != nil {
		t.Fatal(err)
	}
	manifestPath := filepath.Join(dir, "CHECKSUMS")
	line := sha256Hex([]byte("payload")) + "  " + file + "\n"
	if err := os.WriteFile(manifestPath, []byte(line), 0644); err != nil {
		t.Fatal(err)
	}
	rootFlags.checksumFile = manifestPath

	err := runRoot(rootCmd, []string{"sha256"})
	if err == nil {
		t.Fatal("expected verification failure")
	}
	if !errors.Is(err, hasher.ErrVerificationFailed) {
		t.Errorf("expected ErrVerificationFailed, got: %v", err)
	}
	if !strings.Contains(out.String(), file+": FAILED\n") {
		t.Errorf("expected FAILED line, got: %q", out.String())
	}
}

func TestRunRoot_FlagErrorsWinOverManifestErrors(t *testing.T) {
	resetRootFlags()
	captureOut(t)

	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "CHECKSUMS")
	if err := os.WriteFile(manifestPath, []byte("not a manifest line\n"), 0644); err != nil {
		t.Fatal(err)
	}
	rootFlags.checksumFile = manifestPath
	rootFlags.parallel = 0

	// Bad flag values must fail before the manifest is even opened.
	err := runRoot(rootCmd, []string{"sha256"})
	if err == nil {
		t.Fatal("expected error for zero workers")
	}
	if !errors.Is(err, hasher.ErrInvalidParallelism) {
		t.Errorf("expected ErrInvalidParallelism, got: %v", err)
	}
	if exitCode := hasher.ExitCodeForError(err); exitCode != hasher.ExitUsageError {
		t.Errorf("expected exit code %d (usage), got %d for: %v", hasher.ExitUsageError, exitCode, err)
	}
}

func TestRunRoot_MalformedManifest(t *testing.T) {
	resetRootFlags()
	captureOut(t)

	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "CHECKSUMS")
	if err := os.WriteFile(manifestPath, []byte("not a manifest line\n"), 0644); err != nil {
		t.Fatal(err)
	}
	rootFlags.checksumFile = manifestPath

	err := runRoot(rootCmd, []string{"sha256"})
	if err == nil {
		t.Fatal("expected error for malformed manifest")
	}
	if exitCode := hasher.ExitCodeForError(err); exitCode != hasher.ExitConfigError {
		t.Errorf("expected exit code %d (config), got %d for: %v", hasher.ExitConfigError, exitCode, err)
	}
}

func TestApplyConfigDefaults(t *testing.T) {
	resetRootFlags()
	dir := t.TempDir()
	yaml := "parallel: 7\nbuffer_size: 1024\n"
	if err := os.WriteFile(filepath.Join(dir, "hasher.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	applyConfigDefaults(rootCmd, logging.NewNullLogger())

	if rootFlags.parallel != 7 {
		t.Errorf("expected parallel 7 from config, got %d", rootFlags.parallel)
	}
	if rootFlags.bufferSize != 1024 {
		t.Errorf("expected buffer size 1024 from config, got %d", rootFlags.bufferSize)
	}
}

func TestApplyConfigDefaults_NoConfig(t *testing.T) {
	resetRootFlags()
	t.Chdir(t.TempDir())

	applyConfigDefaults(rootCmd, logging.NewNullLogger())

	if rootFlags.parallel != 1 {
		t.Errorf("expected built-in default 1, got %d", rootFlags.parallel)
	}
}
