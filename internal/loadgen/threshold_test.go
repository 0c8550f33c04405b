package loadgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThresholdErrorRate(t *testing.T) {
	sum := Summary{Tags: map[Tag]TagSummary{
		TagDefault:       {Count: 1000, Failures: 5, ErrorRate: 0.005},
		TagExpectedError: {Count: 100, Failures: 100, ErrorRate: 1.0},
	}}

	res, err := Threshold{Metric: MetricErrorRate, Max: 0.01}.Evaluate(sum)
	require.NoError(t, err)
	require.True(t, res.Passed, "expected-error traffic must not count toward the error rate")
	require.InDelta(t, 0.005, res.Value, 1e-9)

	sum.Tags[TagDefault] = TagSummary{Count: 1000, Failures: 20, ErrorRate: 0.02}
	res, err = Threshold{Metric: MetricErrorRate, Max: 0.01}.Evaluate(sum)
	require.NoError(t, err)
	require.False(t, res.Passed)
}

func TestThresholdP95(t *testing.T) {
	sum := Summary{Tags: map[Tag]TagSummary{
		TagDefault:       {P95: 120 * time.Millisecond},
		TagExpectedError: {P95: 700 * time.Millisecond},
	}}

	// Without a tag the worst group decides.
	res, err := Threshold{Metric: MetricP95LatencyMs, Max: 500}.Evaluate(sum)
	require.NoError(t, err)
	require.False(t, res.Passed)
	require.InDelta(t, 700, res.Value, 1e-9)

	res, err = Threshold{Metric: MetricP95LatencyMs, Tag: TagDefault, Max: 500}.Evaluate(sum)
	require.NoError(t, err)
	require.True(t, res.Passed)
}

func TestThresholdStrictBound(t *testing.T) {
	sum := Summary{Tags: map[Tag]TagSummary{
		TagDefault: {ErrorRate: 0.01},
	}}

	res, err := Threshold{Metric: MetricErrorRate, Max: 0.01}.Evaluate(sum)
	require.NoError(t, err)
	require.False(t, res.Passed, "bound is a strict less-than")
}

func TestThresholdUnknownMetric(t *testing.T) {
	_, err := Threshold{Metric: "p100_smiles", Max: 1}.Evaluate(Summary{})
	require.Error(t, err)
}

func TestThresholdString(t *testing.T) {
	require.Equal(t, "error_rate < 0.01", Threshold{Metric: MetricErrorRate, Max: 0.01}.String())
	require.Equal(t, "p95_latency_ms{expected-error} < 500",
		Threshold{Metric: MetricP95LatencyMs, Tag: TagExpectedError, Max: 500}.String())
}
