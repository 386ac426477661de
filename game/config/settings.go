package config

import (
	"errors"
	"fmt"

	"github.com/wricardo/mcp-training/toyrobot/game/commander"
	"github.com/wricardo/mcp-training/toyrobot/game/engine"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrConfigExists   = errors.New("configuration file already exists")
)

// Settings is the full runtime configuration
type Settings struct {
	Commander  CommanderSettings  `koanf:"commander" yaml:"commander"`
	Playground PlaygroundSettings `koanf:"playground" yaml:"playground"`
	Robot      RobotSettings      `koanf:"robot" yaml:"robot"`
	Log        LogSettings        `koanf:"log" yaml:"log"`
}

// CommanderSettings holds fleet-wide policy
type CommanderSettings struct {
	MaxRobots          int  `koanf:"max_robots" yaml:"max_robots"`
	AllowBoundaries    bool `koanf:"allow_boundaries" yaml:"allow_boundaries"`
	CollisionsDetected bool `koanf:"collisions_detected" yaml:"collisions_detected"`
}

// PlaygroundSettings holds the playground dimensions
type PlaygroundSettings struct {
	Width  int `koanf:"width" yaml:"width"`
	Height int `koanf:"height" yaml:"height"`
}

// RobotSettings holds per-robot movement parameters
type RobotSettings struct {
	StepSize int `koanf:"step_size" yaml:"step_size"`
}

// LogSettings selects the logger level and encoder
type LogSettings struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// Default returns the settings used when nothing overrides them
func Default() *Settings {
	return &Settings{
		Commander:  CommanderSettings{MaxRobots: 10},
		Playground: PlaygroundSettings{Width: 5, Height: 5},
		Robot:      RobotSettings{StepSize: 1},
		Log:        LogSettings{Level: "info", Format: "console"},
	}
}

var (
	logLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	logFormats = map[string]bool{"console": true, "json": true}
)

// Validate checks every field and wraps the first failure in ErrInvalidConfig
func (s *Settings) Validate() error {
	if s.Commander.MaxRobots <= 0 {
		return fmt.Errorf("%w: commander.max_robots must be positive, got %d", ErrInvalidConfig, s.Commander.MaxRobots)
	}
	if s.Playground.Width <= 0 {
		return fmt.Errorf("%w: playground.width must be positive, got %d", ErrInvalidConfig, s.Playground.Width)
	}
	if s.Playground.Height <= 0 {
		return fmt.Errorf("%w: playground.height must be positive, got %d", ErrInvalidConfig, s.Playground.Height)
	}
	if s.Robot.StepSize <= 0 {
		return fmt.Errorf("%w: robot.step_size must be positive, got %d", ErrInvalidConfig, s.Robot.StepSize)
	}
	if !logLevels[s.Log.Level] {
		return fmt.Errorf("%w: log.level must be one of debug, info, warn, error, got %q", ErrInvalidConfig, s.Log.Level)
	}
	if !logFormats[s.Log.Format] {
		return fmt.Errorf("%w: log.format must be console or json, got %q", ErrInvalidConfig, s.Log.Format)
	}
	return nil
}

// EnginePlayground converts the settings into the engine's playground value
func (s *Settings) EnginePlayground() engine.Playground {
	return engine.Playground{
		Width:              s.Playground.Width,
		Height:             s.Playground.Height,
		AllowBoundaries:    s.Commander.AllowBoundaries,
		CollisionsDetected: s.Commander.CollisionsDetected,
	}
}

// CommanderOptions converts the settings into commander options
func (s *Settings) CommanderOptions() commander.Options {
	return commander.Options{
		MaxRobots:  s.Commander.MaxRobots,
		StepSize:   s.Robot.StepSize,
		Playground: s.EnginePlayground(),
	}
}
