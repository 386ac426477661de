// Command toyrobot runs the toy robot simulator.
//
// It supports three modes:
//  1. "shell" (default): an interactive console reading commands from stdin
//  2. "mcp": an MCP stdio server exposing the same fleet as tools
//  3. "config init": writes a starter settings file
//
// Flags select the settings file, debug logging and an optional
// Prometheus textfile written when the session ends.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/toyrobot/game/commander"
	"github.com/wricardo/mcp-training/toyrobot/game/config"
	"github.com/wricardo/mcp-training/toyrobot/game/console"
	"github.com/wricardo/mcp-training/toyrobot/logging"
	"github.com/wricardo/mcp-training/toyrobot/metrics"
	"github.com/wricardo/mcp-training/toyrobot/transport/mcp"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Toy Robot Simulator"
)

const defaultConfigPath = "toyrobot.yaml"

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "toyrobot",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   defaultConfigPath,
				Usage:   "settings file (YAML or JSON); missing means defaults",
				Sources: cli.EnvVars("TOYROBOT_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "write Prometheus metrics to this file on exit",
			},
		},
		Action: runShell,
		Commands: []*cli.Command{
			{
				Name:   "shell",
				Usage:  "run the interactive console (default)",
				Action: runShell,
			},
			{
				Name:   "mcp",
				Usage:  "serve the fleet as MCP tools over stdio",
				Action: runMCP,
			},
			{
				Name:  "config",
				Usage: "manage the settings file",
				Commands: []*cli.Command{
					{
						Name:  "init",
						Usage: "write a settings file with the default values",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "force",
								Usage: "overwrite an existing file",
							},
						},
						Action: runConfigInit,
					},
				},
			},
		},
	}
}

// services is everything a session needs, built from flags and settings
type services struct {
	settings  *config.Settings
	logger    *zap.Logger
	commander *commander.Commander
	recorder  *metrics.Recorder
}

func initializeServices(cmd *cli.Command) (*services, error) {
	manager, err := config.NewManager(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	settings := manager.Settings()

	logCfg := logging.Config{Level: settings.Log.Level, Format: settings.Log.Format}
	if cmd.Bool("debug") {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	fleet, err := commander.New(settings.CommanderOptions(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create commander: %w", err)
	}

	logger.Debug("services initialized",
		zap.String("app", AppName),
		zap.String("version", Version),
		zap.String("config", manager.Path()),
	)
	return &services{
		settings:  settings,
		logger:    logger,
		commander: fleet,
		recorder:  metrics.NewRecorder(),
	}, nil
}

// finish flushes metrics and logs once a session ends
func (s *services) finish(cmd *cli.Command) error {
	defer s.logger.Sync() //nolint:errcheck

	path := cmd.String("metrics-file")
	if path == "" {
		return nil
	}
	if err := s.recorder.WriteTextfile(path); err != nil {
		return err
	}
	s.logger.Debug("metrics written", zap.String("path", path))
	return nil
}

func runShell(ctx context.Context, cmd *cli.Command) error {
	svc, err := initializeServices(cmd)
	if err != nil {
		return err
	}

	root := cmd.Root()
	con := console.New(svc.commander, root.Reader, root.Writer,
		console.WithLogger(svc.logger),
		console.WithMetrics(svc.recorder),
		console.WithVersion(Version),
	)
	if err := con.Run(ctx); err != nil {
		return err
	}
	return svc.finish(cmd)
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	svc, err := initializeServices(cmd)
	if err != nil {
		return err
	}

	svc.logger.Info("serving MCP over stdio", zap.String("version", Version))
	root := cmd.Root()
	srv := mcp.NewServer(svc.commander, Version, svc.logger, svc.recorder)
	if err := srv.Listen(ctx, root.Reader, root.Writer); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return svc.finish(cmd)
}

func runConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := config.Write(path, config.Default(), cmd.Bool("force")); err != nil {
		return err
	}
	fmt.Fprintf(cmd.Root().Writer, "Wrote default settings to %s\n", path)
	return nil
}
