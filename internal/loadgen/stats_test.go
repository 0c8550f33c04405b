package loadgen

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStatsErrorRatePerTag(t *testing.T) {
	stats := NewStats()

	for i := 0; i < 98; i++ {
		stats.RecordRequest(TagDefault, time.Millisecond, true)
	}
	stats.RecordRequest(TagDefault, time.Millisecond, false)
	stats.RecordRequest(TagDefault, time.Millisecond, false)

	// Expected-error traffic, including its failures, stays in its own group.
	for i := 0; i < 50; i++ {
		stats.RecordRequest(TagExpectedError, time.Millisecond, false)
	}

	sum := stats.Snapshot()
	require.Equal(t, 100, sum.Tags[TagDefault].Count)
	require.Equal(t, 2, sum.Tags[TagDefault].Failures)
	require.InDelta(t, 0.02, sum.Tags[TagDefault].ErrorRate, 1e-9)
	require.Equal(t, 50, sum.Tags[TagExpectedError].Count)
	require.Equal(t, 150, sum.Requests)
}

func TestStatsPercentiles(t *testing.T) {
	stats := NewStats()
	for i := 1; i <= 100; i++ {
		stats.RecordRequest(TagDefault, time.Duration(i)*time.Millisecond, true)
	}

	sum := stats.Snapshot()
	tagSum := sum.Tags[TagDefault]
	require.Equal(t, 50*time.Millisecond, tagSum.P50)
	require.Equal(t, 95*time.Millisecond, tagSum.P95)
	require.Equal(t, 99*time.Millisecond, tagSum.P99)
	require.Equal(t, 100*time.Millisecond, tagSum.Max)
}

func TestStatsChecks(t *testing.T) {
	stats := NewStats()
	stats.RecordCheck("get_item", true)
	stats.RecordCheck("get_item", true)
	stats.RecordCheck("get_item", false)
	stats.RecordCheck("browse", true)

	sum := stats.Snapshot()
	require.Len(t, sum.Checks, 2)
	require.Equal(t, CheckSummary{Name: "browse", Passes: 1}, sum.Checks[0])
	require.Equal(t, CheckSummary{Name: "get_item", Passes: 2, Fails: 1}, sum.Checks[1])
}

func TestStatsConcurrentAppend(t *testing.T) {
	stats := NewStats()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				stats.RecordRequest(TagDefault, time.Millisecond, true)
				stats.RecordCheck("concurrent", true)
			}
		}()
	}
	wg.Wait()

	sum := stats.Snapshot()
	require.Equal(t, 4000, sum.Tags[TagDefault].Count)
	require.Equal(t, 4000, sum.Checks[0].Passes)
}

func TestPercentileEmpty(t *testing.T) {
	require.Equal(t, time.Duration(0), percentile(nil, 0.95))
}
