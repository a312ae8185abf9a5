package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/hasher/internal/digest"
	"github.com/vvka-141/hasher/internal/filehash"
	"github.com/vvka-141/hasher/internal/logging"
	"github.com/vvka-141/hasher/internal/progress"
	"github.com/vvka-141/hasher/pkg/hasher"
)

func writeFiles(t *testing.T, contents []string) []hasher.Input {
	t.Helper()
	dir := t.TempDir()
	inputs := make([]hasher.Input, len(contents))
	for i, content := range contents {
		path := filepath.Join(dir, fmt.Sprintf("file%d.txt", i))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		inputs[i] = hasher.Input{Name: path}
	}
	return inputs
}

func TestRun_OrderPreserved(t *testing.T) {
	// Sizes differ wildly so completion order differs from input order.
	contents := []string{
		strings.Repeat("a", 1<<20),
		"b",
		strings.Repeat("c", 1<<18),
		"d",
		strings.Repeat("e", 1<<19),
	}
	inputs := writeFiles(t, contents)

	for _, workers := range []int{1, 3, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			h := filehash.New(digest.SHA256, 4096, nil)
			d := New(h, workers, logging.NewNullLogger())

			results := d.Run(context.Background(), inputs)
			require.Len(t, results, len(inputs))

			for i, res := range results {
				require.NoError(t, res.Err)
				assert.Equal(t, inputs[i].Name, res.Input.Name, "result %d out of order", i)

				want, err := digest.Sum(digest.SHA256, []byte(contents[i]))
				require.NoError(t, err)
				assert.Equal(t, want, res.Digest)
			}
		})
	}
}

func TestRun_ErrorIsolation(t *testing.T) {
	inputs := writeFiles(t, []string{"first", "third"})
	// Insert a missing path in the middle.
	inputs = []hasher.Input{inputs[0], {Name: "/no/such/file"}, inputs[1]}

	h := filehash.New(digest.SHA256, 4096, nil)
	d := New(h, 3, logging.NewNullLogger())

	results := d.Run(context.Background(), inputs)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.NotEmpty(t, results[0].Digest)
	assert.NotEmpty(t, results[2].Digest)
}

func TestRun_ByteTotalAcrossWorkers(t *testing.T) {
	contents := []string{
		strings.Repeat("x", 1000),
		strings.Repeat("y", 2500),
		strings.Repeat("z", 47),
	}
	inputs := writeFiles(t, contents)

	var total int64
	for _, c := range contents {
		total += int64(len(c))
	}

	meter := progress.NewMeter(total, len(inputs))
	h := filehash.New(digest.SHA256, 128, meter)
	d := New(h, 3, logging.NewNullLogger())

	d.Run(context.Background(), inputs)

	assert.Equal(t, total, meter.Bytes(),
		"aggregate bytes across all workers must equal the sum of input sizes")
	assert.Equal(t, int64(len(inputs)), meter.Files())
}

func TestRun_ExcessWorkersUnused(t *testing.T) {
	inputs := writeFiles(t, []string{"only one"})

	h := filehash.New(digest.SHA256, 4096, nil)
	d := New(h, 16, logging.NewNullLogger())

	results := d.Run(context.Background(), inputs)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
}

func TestRun_Cancellation(t *testing.T) {
	inputs := writeFiles(t, []string{"a", "b", "c"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := filehash.New(digest.SHA256, 4096, nil)
	d := New(h, 2, logging.NewNullLogger())

	results := d.Run(ctx, inputs)
	require.Len(t, results, len(inputs))
	for _, res := range results {
		assert.True(t, errors.Is(res.Err, context.Canceled), "result err = %v", res.Err)
	}
}
