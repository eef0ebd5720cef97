package statkit

import (
	"slices"
	"sync"
)

// Summary holds the descriptive statistics computed over one series.
// A summary is only produced for a series holding at least one sample,
// so every field is well-defined.
type Summary struct {
	Count  int       // number of recorded samples
	Values []float64 // sorted copy of the recorded samples
	Mean   float64   // arithmetic mean
	StdDev float64   // population standard deviation
	Median float64   // lower-biased median, see Median
	L2     float64   // Euclidean norm
}

// Collector records float64 samples into named series and computes the
// descriptive statistics over them on demand. It has a mutex mu to
// protect concurrent access to the series map; the statistics are
// recomputed from the stored samples at each call, each series is only
// read through a private snapshot, so recording and computing may run
// concurrently.
type Collector struct {
	mu       sync.RWMutex         // mutex to protect concurrent access to the series
	series   map[string][]float64 // recorded samples by series name
	registry *Registry            // statistics available to Compute
}

// NewCollector creates a new sample collector. By default the
// collector resolves statistic names through NewRegistry.
func NewCollector(options ...Option) *Collector {
	collector := &Collector{
		series:   make(map[string][]float64),
		registry: NewRegistry(),
	}

	// Apply options
	for _, option := range options {
		option(collector)
	}

	return collector
}

// Record appends a sample to the named series.
func (c *Collector) Record(series string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.series[series] = append(c.series[series], value)
}

// RecordBatch appends a batch of samples to the named series.
func (c *Collector) RecordBatch(series string, values ...float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.series[series] = append(c.series[series], values...)
}

// Values returns a copy of the samples recorded in the named series, in
// recording order. It returns nil for an unknown series.
func (c *Collector) Values(series string) []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.series[series])
}

// Compute applies the named statistic to the samples recorded in the
// named series. The ok flag is false when the statistic is undefined
// for the series, exactly as for the underlying StatFn; the error is
// non-nil only when the statistic name is not registered.
func (c *Collector) Compute(series, stat string) (float64, bool, error) {
	fn, err := c.registry.Lookup(stat)
	if err != nil {
		return 0, false, err
	}

	value, ok := fn(c.Values(series))

	return value, ok, nil
}

// Snapshot returns the statistics computed over every series holding at
// least one sample. It returns a map where the keys are the series
// names and the values are the computed summaries.
func (c *Collector) Snapshot() map[string]*Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summaries := make(map[string]*Summary, len(c.series))

	for name, values := range c.series {
		if len(values) == 0 {
			continue
		}

		mean, _ := Mean(values)
		stddev, _ := StdDev(values)
		median, _ := Median(values)
		l2, _ := L2(values)

		sorted := slices.Clone(values)
		slices.Sort(sorted)

		summaries[name] = &Summary{
			Count:  len(values),
			Values: sorted,
			Mean:   mean,
			StdDev: stddev,
			Median: median,
			L2:     l2,
		}
	}

	return summaries
}

// Reset drops all recorded series.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.series = make(map[string][]float64)
}
