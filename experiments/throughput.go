package experiments

import (
	"connectfour/experiments/metrics"
	"connectfour/meta"
)

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: meta.DepthHard, Heuristic: "symmetric", Goroutines: 1},
	{ID: 2, Depth: meta.DepthHard, Heuristic: "symmetric", Goroutines: 2},
	{ID: 3, Depth: meta.DepthHard, Heuristic: "symmetric", Goroutines: 4},
	{ID: 4, Depth: meta.DepthHard, Heuristic: "symmetric", Goroutines: 7},
}

// RunThroughputExperiment measures nodes per second of the root fan-out.
// Both sides share a config so every matchup replays the same game and only
// the search timings differ.
func RunThroughputExperiment(root string, games int) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment(root, "throughput", parallelConfigs, matchUps, games)
}
