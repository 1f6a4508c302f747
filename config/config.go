// Package config loads run settings for the redistrict command from YAML,
// with REDISTRICT_* environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/redistrict/energy"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "REDISTRICT_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every setting of a redistrict run.
type Config struct {
	Alpha      float64 `yaml:"alpha"`
	Beta       float64 `yaml:"beta"`
	Districts  int     `yaml:"districts"`
	Iterations int     `yaml:"iterations"`
	Seed       int64   `yaml:"seed"`
	Chains     int     `yaml:"chains"`
	Parallel   int     `yaml:"parallelism"`

	MaxSplitAttempts    int `yaml:"max_split_attempts"`
	MaxProposalAttempts int `yaml:"max_proposal_attempts"`

	Energy  Energy  `yaml:"energy"`
	Inputs  Inputs  `yaml:"inputs"`
	Grid    Grid    `yaml:"grid"`
	Output  string  `yaml:"output"`
	Metrics Metrics `yaml:"metrics"`
	Log     Log     `yaml:"log"`
}

// Energy names the compactness and population strategies, as accepted by
// energy.CompactnessByName and energy.PopulationByName.
type Energy struct {
	Compactness string `yaml:"compactness"`
	Population  string `yaml:"population"`
}

// Inputs name the data files. When Adjacency is empty a synthetic grid is
// used instead.
type Inputs struct {
	Adjacency  string `yaml:"adjacency"`
	Population string `yaml:"population"`
	Boundary   string `yaml:"boundary"`
	Initial    string `yaml:"initial"`
}

// Grid describes the synthetic rows×cols precinct grid and its population range.
type Grid struct {
	Rows   int   `yaml:"rows"`
	Cols   int   `yaml:"cols"`
	MinPop int64 `yaml:"min_population"`
	MaxPop int64 `yaml:"max_population"`
}

// Metrics configures the Prometheus endpoint; an empty Addr disables it.
type Metrics struct {
	Addr string `yaml:"addr"`
}

// Log selects the slog level and handler format (text or json).
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Alpha:      1,
		Beta:       1,
		Districts:  2,
		Iterations: 1000,
		Chains:     1,
		Energy: Energy{
			Compactness: energy.NameCutEdges,
			Population:  energy.NameDeviation,
		},
		Grid: Grid{Rows: 10, Cols: 10, MinPop: 1, MaxPop: 1},
		Log:  Log{Level: "info", Format: "text"},
	}
}

// LoadConfig reads configPath over the defaults, applies environment
// overrides, then each override in turn (command-line flags), and validates
// the result. An empty configPath skips the file.
func LoadConfig(configPath string, overrides ...func(*Config)) (*Config, error) {
	config := Default()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}
	config.ApplyEnv()
	for _, override := range overrides {
		override(config)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides fields from REDISTRICT_* variables. Unparsable values
// are ignored.
func (c *Config) ApplyEnv() {
	c.Alpha = getEnvFloat("ALPHA", c.Alpha)
	c.Beta = getEnvFloat("BETA", c.Beta)
	c.Districts = getEnvInt("DISTRICTS", c.Districts)
	c.Iterations = getEnvInt("ITERATIONS", c.Iterations)
	c.Seed = int64(getEnvInt("SEED", int(c.Seed)))
	c.Chains = getEnvInt("CHAINS", c.Chains)
	c.Parallel = getEnvInt("PARALLELISM", c.Parallel)
	c.MaxSplitAttempts = getEnvInt("MAX_SPLIT_ATTEMPTS", c.MaxSplitAttempts)
	c.MaxProposalAttempts = getEnvInt("MAX_PROPOSAL_ATTEMPTS", c.MaxProposalAttempts)
	c.Energy.Compactness = getEnv("COMPACTNESS", c.Energy.Compactness)
	c.Energy.Population = getEnv("POPULATION_ENERGY", c.Energy.Population)
	c.Inputs.Adjacency = getEnv("ADJACENCY", c.Inputs.Adjacency)
	c.Inputs.Population = getEnv("POPULATION", c.Inputs.Population)
	c.Inputs.Boundary = getEnv("BOUNDARY", c.Inputs.Boundary)
	c.Inputs.Initial = getEnv("INITIAL", c.Inputs.Initial)
	c.Output = getEnv("OUTPUT", c.Output)
	c.Metrics.Addr = getEnv("METRICS_ADDR", c.Metrics.Addr)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
}

// Validate checks ranges and cross-field requirements.
func (c *Config) Validate() error {
	switch {
	case c.Districts < 1:
		return fmt.Errorf("districts must be at least 1, got %d: %w", c.Districts, ErrInvalid)
	case c.Iterations < 0:
		return fmt.Errorf("iterations must be non-negative, got %d: %w", c.Iterations, ErrInvalid)
	case c.Chains < 1:
		return fmt.Errorf("chains must be at least 1, got %d: %w", c.Chains, ErrInvalid)
	case c.Chains > 1 && c.Output == "":
		return fmt.Errorf("%d chains need an output path: %w", c.Chains, ErrInvalid)
	case c.Parallel < 0 || c.MaxSplitAttempts < 0 || c.MaxProposalAttempts < 0:
		return fmt.Errorf("parallelism and attempt limits must be non-negative: %w", ErrInvalid)
	case c.Inputs.Adjacency == "" && (c.Grid.Rows < 1 || c.Grid.Cols < 1):
		return fmt.Errorf("grid needs positive rows and cols without an adjacency file: %w", ErrInvalid)
	case c.Inputs.Adjacency == "" && (c.Grid.MinPop < 0 || c.Grid.MaxPop < c.Grid.MinPop):
		return fmt.Errorf("grid population range [%d, %d] is invalid: %w", c.Grid.MinPop, c.Grid.MaxPop, ErrInvalid)
	case c.Energy.Compactness == energy.NamePerimeter && c.Inputs.Boundary == "":
		return fmt.Errorf("perimeter energy needs inputs.boundary: %w", ErrInvalid)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if f := strings.ToLower(c.Log.Format); f != "" && f != "text" && f != "json" {
		return fmt.Errorf("log format %q is not text or json: %w", c.Log.Format, ErrInvalid)
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.Log.Level, ErrInvalid)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
