package loadgen

import (
	"fmt"
	"time"
)

// Metric names a threshold can be evaluated against.
const (
	MetricErrorRate    = "error_rate"     // unexpected failures / untagged requests
	MetricP95LatencyMs = "p95_latency_ms" // p95 latency of the selected tag group
)

// Threshold is a pass/fail rule evaluated once after the run. For
// p95_latency_ms an empty Tag means all traffic groups must satisfy the
// bound; error_rate always reads the untagged group only.
type Threshold struct {
	Metric string  `yaml:"metric"`
	Tag    Tag     `yaml:"tag,omitempty"`
	Max    float64 `yaml:"max"`
}

// ThresholdResult pairs a threshold with its observed value.
type ThresholdResult struct {
	Threshold Threshold
	Value     float64
	Passed    bool
}

// DefaultThresholds mirrors the usual service-level targets: under 1%
// unexpected errors and p95 under 500ms for every traffic group.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Metric: MetricErrorRate, Max: 0.01},
		{Metric: MetricP95LatencyMs, Max: 500},
	}
}

// Evaluate computes the threshold's value over the summary. The bound is a
// strict less-than.
func (t Threshold) Evaluate(sum Summary) (ThresholdResult, error) {
	res := ThresholdResult{Threshold: t}

	switch t.Metric {
	case MetricErrorRate:
		res.Value = sum.Tags[TagDefault].ErrorRate

	case MetricP95LatencyMs:
		if t.Tag != "" {
			res.Value = float64(sum.Tags[t.Tag].P95) / float64(time.Millisecond)
		} else {
			for _, tagSum := range sum.Tags {
				ms := float64(tagSum.P95) / float64(time.Millisecond)
				if ms > res.Value {
					res.Value = ms
				}
			}
		}

	default:
		return res, fmt.Errorf("unknown threshold metric %q", t.Metric)
	}

	res.Passed = res.Value < t.Max
	return res, nil
}

// String renders the rule the way it is reported, e.g. "error_rate < 0.01".
func (t Threshold) String() string {
	if t.Tag != "" {
		return fmt.Sprintf("%s{%s} < %g", t.Metric, t.Tag, t.Max)
	}
	return fmt.Sprintf("%s < %g", t.Metric, t.Max)
}
