package loadgen

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/and161185/catalog-loadtest/internal/config"
)

// Report is the outcome of one load-test run.
type Report struct {
	Summary    Summary
	Thresholds []ThresholdResult
	Passed     bool
	Seed       int64
}

// Runner owns the virtual users for one run.
type Runner struct {
	config     *config.LoadConfig
	scenarios  []Scenario
	thresholds []Threshold
	client     *http.Client
}

// NewRunner builds a runner from the configuration, overlaying the scenario
// file when one is configured.
func NewRunner(cfg *config.LoadConfig) (*Runner, error) {
	scenarios := DefaultScenarios()
	thresholds := DefaultThresholds()

	if cfg.ScenarioFile != "" {
		var err error
		scenarios, thresholds, err = loadPlan(cfg.ScenarioFile, scenarios, thresholds)
		if err != nil {
			return nil, err
		}
	}

	return &Runner{
		config:     cfg,
		scenarios:  scenarios,
		thresholds: thresholds,
		// No client timeout: the transport's limits are the only ones,
		// so a slow response costs only the issuing virtual user.
		client: &http.Client{},
	}, nil
}

// Run drives the configured number of virtual users for the configured
// duration, then evaluates each threshold once over the drained statistics.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	selector, err := newChooser(r.scenarios)
	if err != nil {
		return nil, err
	}

	seed := r.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	duration := time.Duration(r.config.DurationSec) * time.Second
	thinkTime := time.Duration(r.config.ThinkTimeMs) * time.Millisecond

	runCtx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	stats := NewStats()
	stats.Start()

	r.config.Logger.Infof("starting load test: target=%s users=%d duration=%s seed=%d",
		r.config.TargetAddr, r.config.Users, duration, seed)

	var wg sync.WaitGroup
	for vu := 0; vu < r.config.Users; vu++ {
		wg.Add(1)
		go func(vu int) {
			defer wg.Done()
			r.runVirtualUser(runCtx, selector, stats, seed+int64(vu), thinkTime)
		}(vu)
	}
	wg.Wait()
	stats.Finish()

	summary := stats.Snapshot()

	report := &Report{Summary: summary, Passed: true, Seed: seed}
	for _, threshold := range r.thresholds {
		res, err := threshold.Evaluate(summary)
		if err != nil {
			return nil, fmt.Errorf("evaluate threshold %s: %w", threshold, err)
		}
		if !res.Passed {
			report.Passed = false
		}
		report.Thresholds = append(report.Thresholds, res)
	}

	return report, nil
}

// runVirtualUser is the Running → Stopped loop of one virtual user. The stop
// signal is observed only at iteration boundaries, so an in-flight request
// always completes.
func (r *Runner) runVirtualUser(ctx context.Context, selector *chooser, stats *Stats, seed int64, thinkTime time.Duration) {
	rng := rand.New(rand.NewSource(seed))
	rc := &RunContext{
		Client:  r.client,
		BaseURL: r.config.TargetAddr,
		Rand:    rng,
		Stats:   stats,
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		scenario := selector.pick(rng)
		scenario.Run(rc)

		time.Sleep(thinkTime)
	}
}
