package config

import (
	"flag"
	"strings"

	"go.uber.org/zap"
)

// LoadConfig holds the configuration settings for the load generator.
type LoadConfig struct {
	TargetAddr   string // Base address of the service under test (must include http(s)://)
	Users        int    // Number of concurrent virtual users
	DurationSec  int    // Test duration in seconds
	ThinkTimeMs  int    // Fixed delay between iterations of one virtual user
	Seed         int64  // Random seed; 0 picks one from the clock
	ScenarioFile string // Optional YAML file with scenario weights and thresholds
	Logger       *zap.SugaredLogger
}

// NewLoadConfig creates and returns a new LoadConfig by parsing flags and
// environment variables. Environment variables win over flags.
func NewLoadConfig() *LoadConfig {
	cfg := &LoadConfig{}
	flag.StringVar(&cfg.TargetAddr, "a", "http://localhost:5060", "target base address (must include http(s)://)")
	flag.IntVar(&cfg.Users, "u", 10, "number of virtual users")
	flag.IntVar(&cfg.DurationSec, "d", 30, "test duration (seconds)")
	flag.IntVar(&cfg.ThinkTimeMs, "t", 100, "think time between iterations (milliseconds)")
	flag.Int64Var(&cfg.Seed, "s", 0, "random seed, 0 = derive from clock")
	flag.StringVar(&cfg.ScenarioFile, "c", "", "path to YAML scenario/threshold file")
	flag.Parse()

	readLoadEnvironment(cfg)

	if !strings.HasPrefix(cfg.TargetAddr, "http://") && !strings.HasPrefix(cfg.TargetAddr, "https://") {
		cfg.TargetAddr = "http://" + cfg.TargetAddr
	}

	cfg.Logger = newLogger()

	return cfg
}

func readLoadEnvironment(cfg *LoadConfig) {
	envString("TARGET_ADDRESS", &cfg.TargetAddr)
	envInt("USERS", &cfg.Users)
	envInt("DURATION", &cfg.DurationSec)
	envInt("THINK_TIME", &cfg.ThinkTimeMs)
	envInt64("SEED", &cfg.Seed)
	envString("SCENARIO_FILE", &cfg.ScenarioFile)
}
