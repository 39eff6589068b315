package utils

import (
	"sync"
	"time"
)

// Tracks request performance across the controller
type MetricsCollector struct {
	mu           sync.RWMutex
	requestCount uint64
	errorCount   uint64

	// Maps operation name to list of latencies in nanoseconds
	operationTimes map[string][]int64

	startTime time.Time
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		operationTimes: make(map[string][]int64),
		startTime:      time.Now(),
	}
}

func (mc *MetricsCollector) IncrementRequests() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.requestCount++
}

func (mc *MetricsCollector) IncrementErrors() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.errorCount++
}

func (mc *MetricsCollector) AddOperationLatency(operationName string, duration time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.operationTimes[operationName]; !exists {
		mc.operationTimes[operationName] = make([]int64, 0)
	}
	mc.operationTimes[operationName] = append(
		mc.operationTimes[operationName],
		duration.Nanoseconds(),
	)
}

// RequestCounts returns the total and failed request counts so far.
func (mc *MetricsCollector) RequestCounts() (total uint64, failed uint64) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.requestCount, mc.errorCount
}

// OperationCount returns how many latency samples were recorded for an
// operation. Tests use this to assert exactly how many calls reached the
// network layer.
func (mc *MetricsCollector) OperationCount(operationName string) int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.operationTimes[operationName])
}

// AverageLatency computes the mean latency for an operation, or zero when
// no samples exist.
func (mc *MetricsCollector) AverageLatency(operationName string) time.Duration {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	samples := mc.operationTimes[operationName]
	if len(samples) == 0 {
		return 0
	}
	var total int64
	for _, s := range samples {
		total += s
	}
	return time.Duration(total / int64(len(samples)))
}

func (mc *MetricsCollector) Uptime() time.Duration {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return time.Since(mc.startTime)
}
