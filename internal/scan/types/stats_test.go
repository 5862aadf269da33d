package types

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsCollectorSnapshotReflectsIncrements(t *testing.T) {
	c := NewStatsCollector()
	c.IncDirectoriesTraversed()
	c.IncFilesDiscovered()
	c.IncFilesDiscovered()
	c.IncFilesScanned()
	c.IncSkippedByBinary()
	c.AddTotalMatches(3)
	c.AddBytes(1024)
	c.AddLines(10)

	snap := c.Snapshot(5 * time.Second)
	assert.EqualValues(t, 1, snap.DirectoriesTraversed)
	assert.EqualValues(t, 2, snap.FilesDiscovered)
	assert.EqualValues(t, 1, snap.FilesScanned)
	assert.EqualValues(t, 1, snap.SkippedByBinary)
	assert.EqualValues(t, 3, snap.TotalMatches)
	assert.EqualValues(t, 1024, snap.TotalBytes)
	assert.EqualValues(t, 10, snap.TotalLines)
	assert.Equal(t, 5*time.Second, snap.ScanDuration)
}

// TestStatsCollectorConcurrentIncrementsAreRaceFree checks an invariant: every
// counter is a relaxed atomic add, so concurrent increments from many
// goroutines must all land without loss.
func TestStatsCollectorConcurrentIncrementsAreRaceFree(t *testing.T) {
	c := NewStatsCollector()
	const goroutines = 50
	const perGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				c.IncFilesScanned()
				c.AddTotalMatches(1)
			}
		}()
	}
	wg.Wait()

	snap := c.Snapshot(0)
	assert.EqualValues(t, goroutines*perGoroutine, snap.FilesScanned)
	assert.EqualValues(t, goroutines*perGoroutine, snap.TotalMatches)
}

func TestScanStatsThroughputAndEfficiency(t *testing.T) {
	s := ScanStats{
		TotalBytes:      10 * 1024 * 1024,
		FilesScanned:    100,
		FilesDiscovered: 120,
		SkippedBySize:   10,
		SkippedByBinary: 5,
		SkippedByPath:   5,
		ScanDuration:    2 * time.Second,
	}
	assert.InDelta(t, 5.0, s.ThroughputMiBPerSec(), 0.01)
	assert.InDelta(t, 50.0, s.FilesPerSec(), 0.01)
	assert.InDelta(t, 20.0/120.0, s.FilterEfficiency(), 0.001)
}

func TestScanStatsZeroDurationGuards(t *testing.T) {
	s := ScanStats{}
	assert.Equal(t, 0.0, s.ThroughputMiBPerSec())
	assert.Equal(t, 0.0, s.FilesPerSec())
	assert.Equal(t, 0.0, s.FilterEfficiency())
}
