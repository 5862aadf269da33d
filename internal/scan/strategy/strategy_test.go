package strategy

import (
	"fmt"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAutoPicksSequentialBelowThreshold(t *testing.T) {
	parallel, workers := Auto(10, 50, 8)
	assert.False(t, parallel)
	assert.Equal(t, 1, workers)
}

func TestAutoPicksParallelAtThreshold(t *testing.T) {
	parallel, workers := Auto(50, 50, 8)
	assert.True(t, parallel)
	assert.Equal(t, 8, workers)
}

func TestAutoClampsWorkersToItemCount(t *testing.T) {
	parallel, workers := Auto(60, 50, 200)
	assert.True(t, parallel)
	assert.Equal(t, 60, workers)
}

func TestAutoNeverReturnsZeroWorkers(t *testing.T) {
	_, workers := Auto(60, 50, 0)
	assert.Equal(t, 1, workers)
}

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("file-%03d.txt", i)
	}
	return items
}

func TestRunSequentialPreservesOrderAndUsesWorkerZero(t *testing.T) {
	items := makeItems(20)
	seenWorker := int32(-1)
	process := func(workerID int, path string) any {
		atomic.CompareAndSwapInt32(&seenWorker, -1, int32(workerID))
		return path
	}
	results := RunSequential(items, process, NoopProgressReporter{})
	require.Len(t, results, len(items))
	for i, r := range results {
		assert.Equal(t, items[i], r.(string))
	}
	assert.EqualValues(t, 0, seenWorker)
}

// TestRunParallelVisitsEveryItemExactlyOnce is scenario S6: result order is
// irrelevant, but every input must be represented exactly once in the output
// regardless of how many workers raced to consume it.
func TestRunParallelVisitsEveryItemExactlyOnce(t *testing.T) {
	items := makeItems(200)
	process := func(workerID int, path string) any { return path }

	results, err := RunParallel(items, 8, process, NoopProgressReporter{})
	require.NoError(t, err)
	require.Len(t, results, len(items))

	seen := make([]string, len(results))
	for i, r := range results {
		seen[i] = r.(string)
	}
	sort.Strings(seen)
	expected := append([]string(nil), items...)
	sort.Strings(expected)
	assert.Equal(t, expected, seen)
}

func TestRunParallelSurfacesWorkerPanicAsError(t *testing.T) {
	items := makeItems(10)
	process := func(workerID int, path string) any {
		if path == items[5] {
			panic("boom")
		}
		return path
	}

	_, err := RunParallel(items, 4, process, NoopProgressReporter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRunParallelEmptyInputCompletesCleanly(t *testing.T) {
	results, err := RunParallel(nil, 4, func(int, string) any { return nil }, NoopProgressReporter{})
	require.NoError(t, err)
	assert.Empty(t, results)
}
