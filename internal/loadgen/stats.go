// Package loadgen drives the catalog service with concurrent virtual users
// and verifies service-level thresholds over the aggregated results.
package loadgen

import (
	"sort"
	"sync"
	"time"
)

// Tag classifies traffic for failure accounting. Requests against the
// deliberate-failure endpoints carry TagExpectedError so their outcomes never
// count toward the real error rate.
type Tag string

const (
	TagDefault       Tag = "default"
	TagExpectedError Tag = "expected-error"
)

// Stats is the shared accumulator all virtual users append to. A single
// mutex is enough: appends are tiny compared to the network round trips
// between them.
type Stats struct {
	mu       sync.Mutex
	requests map[Tag]*tagStats
	checks   map[string]*checkCounts
	started  time.Time
	finished time.Time
}

type tagStats struct {
	count     int
	failures  int
	latencies []time.Duration
}

type checkCounts struct {
	passes int
	fails  int
}

func NewStats() *Stats {
	return &Stats{
		requests: make(map[Tag]*tagStats),
		checks:   make(map[string]*checkCounts),
	}
}

// Start marks the beginning of the run for rate calculations.
func (s *Stats) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = time.Now()
}

// Finish marks the end of the run, after in-flight requests drained.
func (s *Stats) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finished = time.Now()
}

// RecordRequest stores the outcome of one request. ok is false for
// connection errors and failed status/body checks.
func (s *Stats) RecordRequest(tag Tag, latency time.Duration, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, exists := s.requests[tag]
	if !exists {
		ts = &tagStats{}
		s.requests[tag] = ts
	}

	ts.count++
	ts.latencies = append(ts.latencies, latency)
	if !ok {
		ts.failures++
	}
}

// RecordCheck stores one named pass/fail observation.
func (s *Stats) RecordCheck(name string, pass bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.checks[name]
	if !exists {
		c = &checkCounts{}
		s.checks[name] = c
	}

	if pass {
		c.passes++
	} else {
		c.fails++
	}
}

// TagSummary is the aggregated view of one traffic group.
type TagSummary struct {
	Count     int
	Failures  int
	ErrorRate float64
	P50       time.Duration
	P95       time.Duration
	P99       time.Duration
	Max       time.Duration
}

// CheckSummary is the aggregated view of one named check.
type CheckSummary struct {
	Name   string
	Passes int
	Fails  int
}

// Summary is an immutable snapshot taken after the run.
type Summary struct {
	Tags     map[Tag]TagSummary
	Checks   []CheckSummary
	Duration time.Duration
	Requests int
}

// Snapshot aggregates everything recorded so far.
func (s *Stats) Snapshot() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{Tags: make(map[Tag]TagSummary, len(s.requests))}

	if !s.started.IsZero() {
		end := s.finished
		if end.IsZero() {
			end = time.Now()
		}
		sum.Duration = end.Sub(s.started)
	}

	for tag, ts := range s.requests {
		sorted := make([]time.Duration, len(ts.latencies))
		copy(sorted, ts.latencies)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		tagSum := TagSummary{
			Count:    ts.count,
			Failures: ts.failures,
			P50:      percentile(sorted, 0.50),
			P95:      percentile(sorted, 0.95),
			P99:      percentile(sorted, 0.99),
		}
		if len(sorted) > 0 {
			tagSum.Max = sorted[len(sorted)-1]
		}
		if ts.count > 0 {
			tagSum.ErrorRate = float64(ts.failures) / float64(ts.count)
		}

		sum.Tags[tag] = tagSum
		sum.Requests += ts.count
	}

	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := s.checks[name]
		sum.Checks = append(sum.Checks, CheckSummary{Name: name, Passes: c.passes, Fails: c.fails})
	}

	return sum
}

// percentile picks from an ascending-sorted slice using the nearest-rank
// method. Empty input yields zero.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(p*float64(len(sorted))+0.5) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}
