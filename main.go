package main

import (
	"flag"
	"fmt"
	"os"

	"connectfour/agent"
	"connectfour/config"
	"connectfour/engine"
	"connectfour/experiments"
	"connectfour/game"
	"connectfour/gamemaster"
	"connectfour/player"
	"connectfour/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cfg, envErr := config.Load()

	mode := flag.String("mode", cfg.Mode, "pvp, pvc, cvc or experiment")
	depth := flag.Int("depth", cfg.Depth, "Search depth of the computer player, 0 for the default of the mode")
	computer := flag.String("computer", cfg.Computer, "Mark played by the computer in pvc mode (X or O)")
	seed := flag.Uint64("seed", cfg.Seed, "Seed for randomized move ordering, 0 for deterministic play")
	goroutines := flag.Int("goroutines", cfg.Goroutines, "Number of goroutines exploring the root moves")
	heuristic := flag.String("heuristic", cfg.Heuristic, "Evaluator: symmetric, legacy or random")
	experiment := flag.String("experiment", "depth", "Experiment to run: depth, heuristic or throughput")
	games := flag.Int("games", cfg.ExperimentGames, "Games per experiment matchup")
	dir := flag.String("dir", cfg.ExperimentDir, "Directory the experiment results are written to")
	flag.Parse()

	zerolog.SetGlobalLevel(cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msgf("no .env file loaded: %v", envErr)
	}
	cfg.Mode, cfg.Depth = *mode, *depth

	if *mode == config.ModeExperiment {
		if err := runExperiment(*experiment, *dir, *games); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	evaluate, err := game.EvaluatorByName(*heuristic, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid heuristic")
	}
	options := []searcher.Option{
		searcher.WithDepth(cfg.SearchDepth()),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithGoroutines(*goroutines),
	}
	if *seed > 0 {
		options = append(options, searcher.WithShuffle(*seed))
	}
	computerAgent := agent.NewComputerAgent(searcher.NewMinimax(options...))
	console := player.NewConsole(os.Stdin, os.Stdout)

	var agentA, agentB agent.Agent
	switch *mode {
	case config.ModeHumanVsHuman:
		agentA, agentB = console, console
	case config.ModeHumanVsComputer:
		mark, err := game.ParsePlayer(*computer)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid computer mark")
		}
		agentA, agentB = console, computerAgent
		if mark == game.PlayerA {
			agentA, agentB = computerAgent, console
		}
	case config.ModeSelfPlay:
		agentA, agentB = computerAgent, computerAgent
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}

	for {
		player.PrintBoard(os.Stdout, game.NewBoard())
		e := engine.LocalEngine(agentA, agentB, engine.WithObserver(func(u gamemaster.Update) {
			fmt.Printf("%s plays column %d\n", u.Player, u.Column+1)
			player.PrintBoard(os.Stdout, u.Board)
		}))
		if _, _, _, err := e.Run(); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}

		if *mode == config.ModeSelfPlay || !console.Confirm("Play again?") {
			return
		}
	}
}

func runExperiment(name, dir string, games int) error {
	var run func(string, int) (string, error)
	switch name {
	case "depth":
		run = experiments.RunDepthExperiment
	case "heuristic":
		run = experiments.RunHeuristicExperiment
	case "throughput":
		run = experiments.RunThroughputExperiment
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}

	out, err := run(dir, games)
	if err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", out)
	return nil
}
