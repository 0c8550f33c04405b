package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/and161185/catalog-loadtest/internal/buildinfo"
	"github.com/and161185/catalog-loadtest/internal/config"
	"github.com/and161185/catalog-loadtest/internal/loadgen"
)

func main() {
	buildinfo.PrintBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.NewLoadConfig()

	runner, err := loadgen.NewRunner(cfg)
	if err != nil {
		cfg.Logger.Fatal(err)
	}

	report, err := runner.Run(ctx)
	if err != nil {
		cfg.Logger.Fatal(err)
	}

	printReport(report)

	if !report.Passed {
		cfg.Logger.Error("load test failed: one or more thresholds not met")
		os.Exit(1)
	}
	cfg.Logger.Info("load test passed")
}

func printReport(report *loadgen.Report) {
	fmt.Printf("\nLoad test report (seed %d, %s, %d requests)\n",
		report.Seed, report.Summary.Duration.Round(time.Millisecond), report.Summary.Requests)

	tags := make([]loadgen.Tag, 0, len(report.Summary.Tags))
	for tag := range report.Summary.Tags {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	fmt.Println("\nTraffic:")
	for _, tag := range tags {
		ts := report.Summary.Tags[tag]
		fmt.Printf("  %-16s count=%-6d failures=%-5d error_rate=%.4f p50=%s p95=%s p99=%s max=%s\n",
			tag, ts.Count, ts.Failures, ts.ErrorRate, ts.P50, ts.P95, ts.P99, ts.Max)
	}

	fmt.Println("\nChecks:")
	for _, check := range report.Summary.Checks {
		fmt.Printf("  %-20s pass=%-6d fail=%d\n", check.Name, check.Passes, check.Fails)
	}

	fmt.Println("\nThresholds:")
	for _, res := range report.Thresholds {
		verdict := "PASS"
		if !res.Passed {
			verdict = "FAIL"
		}
		fmt.Printf("  %-40s value=%-10.4f %s\n", res.Threshold, res.Value, verdict)
	}
	fmt.Println()
}
