package config

import (
	"os"
	"strconv"

	"connectfour/meta"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	ModeHumanVsHuman    = "pvp"
	ModeHumanVsComputer = "pvc"
	ModeSelfPlay        = "cvc"
	ModeExperiment      = "experiment"
)

type Config struct {
	Mode            string
	Depth           int    // 0 picks the depth of the mode, see SearchDepth
	Computer        string // mark played by the computer in pvc mode
	Seed            uint64 // 0 keeps the deterministic move order
	Goroutines      int
	Heuristic       string
	ExperimentDir   string
	ExperimentGames int
	LogLevel        zerolog.Level
}

// Load reads the optional .env files, then the environment. Variables already
// set in the environment win over the files. The config is always returned;
// the error only reports that no .env file could be read.
func Load(files ...string) (*Config, error) {
	err := godotenv.Load(files...)
	return LoadConfig(), err
}

func LoadConfig() *Config {
	return &Config{
		Mode:            GetEnv("CONNECTFOUR_MODE", ModeHumanVsComputer),
		Depth:           GetEnvAsInt("CONNECTFOUR_DEPTH", 0),
		Computer:        GetEnv("CONNECTFOUR_COMPUTER", "O"),
		Seed:            GetEnvAsUint64("CONNECTFOUR_SEED", 0),
		Goroutines:      GetEnvAsInt("CONNECTFOUR_GOROUTINES", meta.GO_ROUTINES),
		Heuristic:       GetEnv("CONNECTFOUR_HEURISTIC", "symmetric"),
		ExperimentDir:   GetEnv("CONNECTFOUR_EXPERIMENT_DIR", "experiments"),
		ExperimentGames: GetEnvAsInt("CONNECTFOUR_EXPERIMENT_GAMES", meta.EPISODES),
		LogLevel:        GetEnvAsLevel("LOG_LEVEL", zerolog.InfoLevel),
	}
}

// SearchDepth is the configured depth, or the default of the mode: self play
// searches DepthEasy on both sides, every other mode DefaultDepth.
func (c *Config) SearchDepth() int {
	if c.Depth > 0 {
		return c.Depth
	}
	if c.Mode == ModeSelfPlay {
		return meta.DepthEasy
	}
	return meta.DefaultDepth
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("invalid unsigned value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsLevel accepts the zerolog level names in any case.
func GetEnvAsLevel(key string, defaultValue zerolog.Level) zerolog.Level {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	level, err := zerolog.ParseLevel(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid log level for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return level
}
