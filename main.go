// Command shipgame runs the two-player Ship Game.
//
// Commands:
//   - play: replay a scripted match from a JSON file and print every result
//   - validate: check fleet setup files in the config directory
//   - configs: list available fleet setups
//   - mcp: serve the game as MCP tools over stdio
//
// The config directory, log file and debug logging are set with flags or the
// CONFIG_DIR and LOG_FILE environment variables, optionally from a .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/wricardo/ship-game/game/config"
	"github.com/wricardo/ship-game/game/service"
	"github.com/wricardo/ship-game/game/session"
	"github.com/wricardo/ship-game/logging"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "shipgame"
)

// Session retention for long-running modes
const (
	sessionMaxAge   = 24 * time.Hour
	cleanupInterval = time.Hour
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command tree
func newApp() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "two-player ship battle on 10x10 boards",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing fleet setups",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs to a rolling file instead of stderr",
				Sources: cli.EnvVars("LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			playCommand(),
			validateCommand(),
			configsCommand(),
			mcpCommand(),
		},
	}
}

// newLogger builds the logger from the global flags
func newLogger(cmd *cli.Command) (*zap.Logger, error) {
	return logging.New(logging.Options{
		File:  cmd.String("log-file"),
		Debug: cmd.Bool("debug"),
	})
}

// initializeServices wires the config and session managers into the game service
func initializeServices(configDir string, logger *zap.Logger) (service.GameService, *session.Manager, *config.Manager, error) {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	sessionManager := session.NewManager()
	gameService := service.NewGameService(sessionManager, configManager, logger)

	logger.Debug("services initialized",
		zap.String("config_dir", configDir),
		zap.String("default_setup", configManager.GetDefault().Name),
	)
	return gameService, sessionManager, configManager, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within maxAge, until ctx is done
func sessionCleanupRoutine(ctx context.Context, manager *session.Manager, interval, maxAge time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := manager.CleanupExpiredSessions(maxAge); removed > 0 {
				logger.Info("cleaned up expired sessions", zap.Int("removed", removed))
			}
		}
	}
}
