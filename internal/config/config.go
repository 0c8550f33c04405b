// Package config provides application configuration structures and helpers.
package config

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"
)

// newLogger builds the zap logger shared by both binaries.
func newLogger(extraPaths ...string) *zap.SugaredLogger {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = append([]string{"stdout"}, extraPaths...)

	logger := zap.Must(logCfg.Build())
	return logger.Sugar()
}

func envString(name string, target *string) {
	if v := os.Getenv(name); v != "" {
		*target = v
	}
}

func envInt(name string, target *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s env var: %v", name, err)
		return
	}
	*target = n
}

func envInt64(name string, target *int64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid %s env var: %v", name, err)
		return
	}
	*target = n
}
