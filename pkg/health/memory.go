package health

import (
	"context"
	"fmt"
	"runtime"

	"github.com/prometheus/procfs"
)

// DefaultThreshold is 1 GiB.
const DefaultThreshold uint64 = 1 << 30

// Threshold builds a check that compares read() against limit. Usage above the
// limit is down; a read failure is degraded.
func Threshold(read func() (uint64, error), limit uint64) Check {
	return func(context.Context) Indicator {
		used, err := read()
		if err != nil {
			return Indicator{Status: StatusDegraded, Message: err.Error(), Threshold: limit}
		}
		if used > limit {
			return Indicator{
				Status:    StatusDown,
				Message:   fmt.Sprintf("used %d bytes exceeds threshold %d bytes", used, limit),
				Used:      used,
				Threshold: limit,
			}
		}
		return Indicator{Status: StatusUp, Used: used, Threshold: limit}
	}
}

// HeapCheck reports heap bytes in use.
func HeapCheck(limit uint64) Check {
	return Threshold(heapAlloc, limit)
}

// RSSCheck reports the process resident set size. Where procfs is not
// available the check is degraded.
func RSSCheck(limit uint64) Check {
	return Threshold(residentMemory, limit)
}

func heapAlloc() (uint64, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc, nil
}

func residentMemory() (uint64, error) {
	p, err := procfs.Self()
	if err != nil {
		return 0, fmt.Errorf("rss unavailable: %w", err)
	}
	stat, err := p.Stat()
	if err != nil {
		return 0, fmt.Errorf("rss unavailable: %w", err)
	}
	return uint64(stat.ResidentMemory()), nil
}
