package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/beka-birhanu/starmaze/game"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// MaxFPS bounds the tick rate so the frame interval stays positive.
const MaxFPS = 1000

// Config holds the application's configuration values.
type Config struct {
	MinSize       int           // Smallest maze dimension rolled per session
	MaxSize       int           // Largest maze dimension rolled per session
	CellSize      float64       // Preferred cell size in display units
	MinCellSize   float64       // Smallest cell size after fitting to the display
	ScreenUsage   float64       // Fraction of the display the maze may cover
	DisplayWidth  float64       // Display width in units
	DisplayHeight float64       // Display height in units
	StarCount     int           // Stars per session
	PlayerSpeed   float64       // Player displacement per tick
	FPS           int           // Simulation ticks per second
	ResetDelay    time.Duration // Pause between a win and the next session
	Seed          int64         // RNG seed, 0 picks one from the clock
	LogLevel      string        // logrus level name
	LogFile       string        // Log destination, empty for stderr
}

// Load initializes and returns the application configuration.
// It loads environment variables from a .env file when present and falls back
// to defaults for anything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug(".env file not found or could not be loaded")
	}

	return Config{
		MinSize:       getEnvAsIntWithDefault("MAZE_MIN_SIZE", 10),
		MaxSize:       getEnvAsIntWithDefault("MAZE_MAX_SIZE", 20),
		CellSize:      getEnvAsFloatWithDefault("CELL_SIZE", 40),
		MinCellSize:   getEnvAsFloatWithDefault("MIN_CELL_SIZE", 10),
		ScreenUsage:   getEnvAsFloatWithDefault("SCREEN_USAGE", 0.9),
		DisplayWidth:  getEnvAsFloatWithDefault("DISPLAY_WIDTH", 1280),
		DisplayHeight: getEnvAsFloatWithDefault("DISPLAY_HEIGHT", 720),
		StarCount:     getEnvAsIntWithDefault("STAR_COUNT", 3),
		PlayerSpeed:   getEnvAsFloatWithDefault("PLAYER_SPEED", 3.5),
		FPS:           getEnvAsIntWithDefault("FPS", 60),
		ResetDelay:    time.Duration(getEnvAsIntWithDefault("RESET_DELAY_MS", 2000)) * time.Millisecond,
		Seed:          int64(getEnvAsIntWithDefault("SEED", 0)),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
		LogFile:       getEnvWithDefault("LOG_FILE", ""),
	}
}

// Validate rejects configurations no session can be built from.
func (c Config) Validate() error {
	switch {
	case c.MinSize <= 0:
		return fmt.Errorf("%w: MAZE_MIN_SIZE must be positive, got %d", ErrInvalidConfig, c.MinSize)
	case c.MaxSize < c.MinSize:
		return fmt.Errorf("%w: MAZE_MAX_SIZE %d is below MAZE_MIN_SIZE %d", ErrInvalidConfig, c.MaxSize, c.MinSize)
	case c.CellSize <= 0 || c.MinCellSize <= 0:
		return fmt.Errorf("%w: cell sizes must be positive", ErrInvalidConfig)
	case c.ScreenUsage <= 0 || c.ScreenUsage > 1:
		return fmt.Errorf("%w: SCREEN_USAGE must be in (0,1], got %v", ErrInvalidConfig, c.ScreenUsage)
	case c.DisplayWidth <= 0 || c.DisplayHeight <= 0:
		return fmt.Errorf("%w: display size must be positive", ErrInvalidConfig)
	case c.StarCount < 0:
		return fmt.Errorf("%w: STAR_COUNT must not be negative", ErrInvalidConfig)
	case c.PlayerSpeed < 0:
		return fmt.Errorf("%w: PLAYER_SPEED must not be negative", ErrInvalidConfig)
	case c.FPS <= 0 || c.FPS > MaxFPS:
		return fmt.Errorf("%w: FPS must be in [1,%d], got %d", ErrInvalidConfig, MaxFPS, c.FPS)
	case c.ResetDelay < 0:
		return fmt.Errorf("%w: RESET_DELAY_MS must not be negative", ErrInvalidConfig)
	}

	// the fitted cell size never drops below the smaller of the two sizes
	smallest := min(c.CellSize, c.MinCellSize)
	if limit := game.MaxPlayerSpeed(smallest, game.DefaultPlayerRadiusRatio); c.PlayerSpeed >= limit {
		return fmt.Errorf("%w: PLAYER_SPEED %v must stay below %v for %v-unit cells", ErrInvalidConfig, c.PlayerSpeed, limit, smallest)
	}

	// player start + stars + gate on the smallest grid
	if need := c.StarCount + 2; c.MinSize*c.MinSize < need {
		return fmt.Errorf("%w: a %dx%d maze cannot hold %d stars and a gate", ErrInvalidConfig, c.MinSize, c.MinSize, c.StarCount)
	}
	return nil
}

// FrameInterval is the time between two ticks.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable. Unset or
// malformed values yield the default.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.WithField("key", key).WithError(err).Warnf("environment variable must be an integer, using %d", defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsFloatWithDefault retrieves a float environment variable. Unset or
// malformed values yield the default.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.WithField("key", key).WithError(err).Warnf("environment variable must be a number, using %v", defaultValue)
		return defaultValue
	}
	return value
}
