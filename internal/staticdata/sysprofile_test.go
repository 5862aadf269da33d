package staticdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateWorkersCeilsAndFloorsAtOne(t *testing.T) {
	p := SystemProfile{CPUCount: 4}
	assert.Equal(t, 3, p.CalculateWorkers(75))
	assert.Equal(t, 4, p.CalculateWorkers(100))
	assert.Equal(t, 1, p.CalculateWorkers(0), "zero percent still floors at one worker")
}

func TestCalculateWorkersClampsPercentageRange(t *testing.T) {
	p := SystemProfile{CPUCount: 4}
	assert.Equal(t, p.CalculateWorkers(100), p.CalculateWorkers(150))
	assert.Equal(t, p.CalculateWorkers(0), p.CalculateWorkers(-10))
}

func TestCalculateWorkersWithLimitCapsAtMaxThreads(t *testing.T) {
	p := SystemProfile{CPUCount: 16}
	assert.Equal(t, 16, p.CalculateWorkersWithLimit(100, 0), "zero means auto, no cap")
	assert.Equal(t, 4, p.CalculateWorkersWithLimit(100, 4))
}

func TestAdaptWorkersForWorkloadScalesByTier(t *testing.T) {
	assert.Equal(t, 2, AdaptWorkersForWorkload(5, 8))
	assert.Equal(t, 1, AdaptWorkersForWorkload(5, 1))
	assert.Equal(t, 4, AdaptWorkersForWorkload(30, 8))
	assert.Equal(t, 6, AdaptWorkersForWorkload(75, 8))
	assert.Equal(t, 8, AdaptWorkersForWorkload(500, 8))
}

func TestShouldUseParallelRequiresMultipleCPUsAndMemory(t *testing.T) {
	p := SystemProfile{CPUCount: 4, AvailMemoryBytes: 2 * 1024 * 1024 * 1024}
	assert.True(t, p.ShouldUseParallel(512))
	assert.False(t, p.ShouldUseParallel(4096))

	single := SystemProfile{CPUCount: 1, AvailMemoryBytes: 2 * 1024 * 1024 * 1024}
	assert.False(t, single.ShouldUseParallel(512))
}

func TestDefaultSystemProfileReportsAtLeastOneCPU(t *testing.T) {
	p := DefaultSystemProfile()
	assert.GreaterOrEqual(t, p.CPUCount, 1)
}
