package loadgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// planFile is the YAML shape of the optional scenario/threshold file:
//
//	weights:
//	  get_item: 5
//	  error_500: 0
//	thresholds:
//	  - metric: error_rate
//	    max: 0.01
//	  - metric: p95_latency_ms
//	    tag: expected-error
//	    max: 500
type planFile struct {
	Weights    map[string]int `yaml:"weights"`
	Thresholds []Threshold    `yaml:"thresholds"`
}

// loadPlan overlays the file onto the defaults. Weights only adjust known
// scenarios; a weight of zero disables one. Thresholds, when present,
// replace the default set entirely.
func loadPlan(path string, scenarios []Scenario, thresholds []Threshold) ([]Scenario, []Threshold, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read scenario file: %w", err)
	}

	var plan planFile
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, nil, fmt.Errorf("parse scenario file: %w", err)
	}

	known := make(map[string]int, len(scenarios))
	for i, sc := range scenarios {
		known[sc.Name] = i
	}
	for name, weight := range plan.Weights {
		idx, ok := known[name]
		if !ok {
			return nil, nil, fmt.Errorf("scenario file references unknown scenario %q", name)
		}
		scenarios[idx].Weight = weight
	}

	if len(plan.Thresholds) > 0 {
		thresholds = plan.Thresholds
	}

	return scenarios, thresholds, nil
}
