package staticdata

import (
	"bufio"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// SystemProfile is the process-wide hardware snapshot used to derive worker
// counts. Computed once on first access and cached for the process
// lifetime.
type SystemProfile struct {
	CPUCount         int
	TotalMemoryBytes uint64
	AvailMemoryBytes uint64
}

// CalculateWorkers returns ceil(cpuCount * percentage/100), floored at 1.
func (p SystemProfile) CalculateWorkers(percentage int) int {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}
	workers := (p.CPUCount*percentage + 99) / 100
	if workers < 1 {
		workers = 1
	}
	return workers
}

// CalculateWorkersWithLimit caps CalculateWorkers at maxThreads when
// maxThreads > 0 (0 means auto, no cap).
func (p SystemProfile) CalculateWorkersWithLimit(percentage, maxThreads int) int {
	workers := p.CalculateWorkers(percentage)
	if maxThreads > 0 && workers > maxThreads {
		return maxThreads
	}
	return workers
}

// AdaptWorkersForWorkload scales maxWorkers down for small workloads: at
// most 1-2 workers for tiny jobs, half for moderate ones, three quarters for
// larger ones, and the full count once the job is big enough to saturate
// the pool.
func AdaptWorkersForWorkload(itemCount, maxWorkers int) int {
	switch {
	case itemCount <= 10:
		if maxWorkers < 2 {
			return max(maxWorkers, 1)
		}
		return 2
	case itemCount <= 50:
		return max(maxWorkers/2, 1)
	case itemCount <= 100:
		return max(maxWorkers*3/4, 1)
	default:
		return maxWorkers
	}
}

// ShouldUseParallel reports whether the system has more than one CPU and
// more than minMemoryMB of available memory. When available memory is
// unknown (0), only the CPU count is checked.
func (p SystemProfile) ShouldUseParallel(minMemoryMB uint64) bool {
	if p.AvailMemoryBytes == 0 {
		return p.CPUCount > 1
	}
	return p.CPUCount > 1 && p.AvailMemoryBytes > minMemoryMB*1024*1024
}

func detectSystemProfile() SystemProfile {
	total, avail := readProcMeminfo()
	return SystemProfile{
		CPUCount:         runtime.NumCPU(),
		TotalMemoryBytes: total,
		AvailMemoryBytes: avail,
	}
}

// readProcMeminfo parses /proc/meminfo for MemTotal/MemAvailable on Linux.
// On any other platform, or if the file can't be read, both values are 0 and
// ShouldUseParallel falls back to CPU count alone via the zero comparison.
func readProcMeminfo() (totalBytes, availBytes uint64) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "MemTotal:"):
			totalBytes = parseMeminfoKB(line)
		case strings.HasPrefix(line, "MemAvailable:"):
			availBytes = parseMeminfoKB(line)
		}
	}
	return totalBytes, availBytes
}

func parseMeminfoKB(line string) uint64 {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}
	kb, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return kb * 1024
}

var defaultProfile = sync.OnceValue(detectSystemProfile)

// DefaultSystemProfile returns the process-wide detected system profile.
func DefaultSystemProfile() SystemProfile {
	return defaultProfile()
}
