// Package stats samples process and label index figures while a placement run is in progress.
package stats

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Sample is one observation of the running process.
type Sample struct {
	Elapsed    time.Duration `json:"elapsed_ns"`
	HeapAlloc  uint64        `json:"heap_alloc"`
	Sys        uint64        `json:"sys"`
	RSS        uint64        `json:"rss"`
	CPUPercent float64       `json:"cpu_percent"`
	Goroutines int           `json:"goroutines"`
	NumGC      uint32        `json:"num_gc"`
	// Labels and Keys are the index size last passed to ObserveIndex.
	Labels int64 `json:"labels"`
	Keys   int64 `json:"keys"`
}

type Summary struct {
	Samples        int           `json:"samples"`
	Interval       time.Duration `json:"interval_ns"`
	PeakHeapAlloc  uint64        `json:"peak_heap_alloc"`
	PeakSys        uint64        `json:"peak_sys"`
	PeakRSS        uint64        `json:"peak_rss"`
	PeakCPUPercent float64       `json:"peak_cpu_percent"`
	AvgCPUPercent  float64       `json:"avg_cpu_percent"`
	PeakGoroutines int           `json:"peak_goroutines"`
	GCCycles       uint32        `json:"gc_cycles"`
	PeakLabels     int64         `json:"peak_labels"`
	PeakKeys       int64         `json:"peak_keys"`
}

func (s *Summary) add(p Sample) {
	s.PeakHeapAlloc = max(s.PeakHeapAlloc, p.HeapAlloc)
	s.PeakSys = max(s.PeakSys, p.Sys)
	s.PeakRSS = max(s.PeakRSS, p.RSS)
	s.PeakCPUPercent = max(s.PeakCPUPercent, p.CPUPercent)
	s.PeakGoroutines = max(s.PeakGoroutines, p.Goroutines)
	s.GCCycles = max(s.GCCycles, p.NumGC)
	s.PeakLabels = max(s.PeakLabels, p.Labels)
	s.PeakKeys = max(s.PeakKeys, p.Keys)
	// running mean
	s.Samples++
	s.AvgCPUPercent += (p.CPUPercent - s.AvgCPUPercent) / float64(s.Samples)
}

// Run is what a Collector saw between Start and Stop.
type Run struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Samples []Sample  `json:"samples"`
	Summary Summary   `json:"summary"`
}

func (r Run) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Collector samples the process every interval until stopped.
type Collector struct {
	interval time.Duration
	proc     *process.Process
	start    time.Time
	stop     chan struct{}
	done     chan struct{}

	mu      sync.Mutex
	samples []Sample

	labels atomic.Int64
	keys   atomic.Int64
}

func NewCollector(interval time.Duration) (*Collector, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("invalid sample interval %s", interval)
	}
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to get process info: %w", err)
	}
	return &Collector{
		interval: interval,
		proc:     proc,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// ObserveIndex records the current size of the label index. It is safe to call while the
// collector is running.
func (c *Collector) ObserveIndex(labels, keys int) {
	c.labels.Store(int64(labels))
	c.keys.Store(int64(keys))
}

func (c *Collector) Start() {
	c.start = time.Now()
	go c.loop()
}

func (c *Collector) loop() {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.record()
	for {
		select {
		case <-c.stop:
			c.record()
			return
		case <-ticker.C:
			c.record()
		}
	}
}

func (c *Collector) record() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	p := Sample{
		Elapsed:    time.Since(c.start),
		HeapAlloc:  mem.HeapAlloc,
		Sys:        mem.Sys,
		Goroutines: runtime.NumGoroutine(),
		NumGC:      mem.NumGC,
		Labels:     c.labels.Load(),
		Keys:       c.keys.Load(),
	}
	if info, err := c.proc.MemoryInfo(); err == nil && info != nil {
		p.RSS = info.RSS
	}
	if pct, err := c.proc.CPUPercent(); err == nil {
		p.CPUPercent = pct
	}

	c.mu.Lock()
	c.samples = append(c.samples, p)
	c.mu.Unlock()
}

// Stop takes a final sample and returns the run. It must be called once, after Start.
func (c *Collector) Stop() Run {
	close(c.stop)
	<-c.done

	c.mu.Lock()
	defer c.mu.Unlock()

	run := Run{
		Start:   c.start,
		End:     time.Now(),
		Samples: c.samples,
		Summary: Summary{Interval: c.interval},
	}
	for _, p := range run.Samples {
		run.Summary.add(p)
	}
	return run
}
