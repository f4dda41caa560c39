package experiments

import (
	"fmt"

	"connectfour/agent"
	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/meta"
	"connectfour/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const BaseSeed = 20241009

// RunDepthExperiment pairs each search depth against the medium baseline.
func RunDepthExperiment(root string, games int) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Depth: meta.DefaultDepth, Heuristic: "symmetric", Seed: BaseSeed, Goroutines: 1}
	depthConfigs := []metrics.AgentConfig{}
	for depth := 1; depth <= meta.DepthHard; depth++ {
		depthConfigs = append(depthConfigs, metrics.AgentConfig{
			ID:         depth,
			Depth:      depth,
			Heuristic:  baseline.Heuristic,
			Seed:       baseline.Seed,
			Goroutines: baseline.Goroutines,
		})
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(root, "depth", append(depthConfigs, baseline), matchUps, games)
}

// RunHeuristicExperiment plays the symmetric evaluator against the legacy and
// the random one at each difficulty level.
func RunHeuristicExperiment(root string, games int) (string, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range []int{meta.DepthEasy, meta.DepthMedium, meta.DepthHard} {
		symmetric := metrics.AgentConfig{ID: 3 * i, Depth: depth, Heuristic: "symmetric", Seed: BaseSeed, Goroutines: 1}
		legacy := metrics.AgentConfig{ID: 3*i + 1, Depth: depth, Heuristic: "legacy", Seed: BaseSeed, Goroutines: 1}
		random := metrics.AgentConfig{ID: 3*i + 2, Depth: depth, Heuristic: "random", Seed: BaseSeed, Goroutines: 1}
		configs = append(configs, symmetric, legacy, random)
		matchUps = append(matchUps,
			[]metrics.AgentConfig{symmetric, legacy},
			[]metrics.AgentConfig{symmetric, random},
		)
	}

	return runExperiment(root, "heuristic", configs, matchUps, games)
}

// runExperiment plays games per matchup, alternating who starts, and writes
// the csv files. It returns the directory they were written to.
func runExperiment(root, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			first := game.PlayerA
			if i%2 == 1 {
				first = game.PlayerB
			}

			result, gameMetric, moveMetrics, err := runGame(config1, config2, first, i)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			id := uuid.New()
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d: %s", mi+1, len(matchUps), i+1, result)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())

	return writer.Dir(), nil
}

// runGame plays config1 as X against config2 as O.
func runGame(config1, config2 metrics.AgentConfig, first game.Player, index int) (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	minimax1, err := createMinimax(config1, index)
	if err != nil {
		return game.Result{}, metrics.GameMetric{}, nil, err
	}
	minimax2, err := createMinimax(config2, index)
	if err != nil {
		return game.Result{}, metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(
		agent.NewComputerAgent(minimax1),
		agent.NewComputerAgent(minimax2),
		engine.WithFirstPlayer(first),
	)
	return e.Run()
}

// createMinimax builds the searcher for config. A seeded config gets a
// different seed for every game so repeated games do not replay each other.
// The same seed drives the random evaluator.
func createMinimax(config metrics.AgentConfig, index int) (*searcher.Minimax, error) {
	seed := config.Seed + uint64(index)
	evaluate, err := game.EvaluatorByName(config.Heuristic, seed)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithEvaluationFn(evaluate),
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithShuffle(seed))
	}
	if config.Goroutines > 1 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMinimax(options...), nil
}
