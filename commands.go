package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/wricardo/ship-game/game/engine"
	"github.com/wricardo/ship-game/game/service"
	"github.com/wricardo/ship-game/logging"
	"github.com/wricardo/ship-game/transport/mcp"
)

// Script is a scripted match for the play command
type Script struct {
	Setup string       `json:"setup"`
	Steps []ScriptStep `json:"steps"`
}

// ScriptStep is a single place or fire action
type ScriptStep struct {
	Action      string `json:"action"` // "place" or "fire"
	Player      string `json:"player"`
	Length      int    `json:"length,omitempty"`
	Start       string `json:"start,omitempty"`
	Orientation string `json:"orientation,omitempty"`
	Target      string `json:"target,omitempty"`
}

// LoadScript reads a play script from disk
func LoadScript(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var script Script
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &script, nil
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "play a scripted match",
		ArgsUsage: "<script.json>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "stop at the first rejected step",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one script file")
			}
			script, err := LoadScript(cmd.Args().First())
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer logging.Sync(logger)

			svc, _, _, err := initializeServices(cmd.String("config-dir"), logger)
			if err != nil {
				return err
			}

			return runScript(ctx, svc, script, cmd.Bool("strict"), cmd.Root().Writer)
		},
	}
}

// runScript plays every step of script in a new session and prints one line per step
func runScript(ctx context.Context, svc service.GameService, script *Script, strict bool, out io.Writer) error {
	info, err := svc.CreateSession(ctx, script.Setup)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Session %s (setup: %s)\n", info.ID, info.SetupName)

	for i, step := range script.Steps {
		n := i + 1
		var ok bool
		var message string

		switch strings.ToLower(step.Action) {
		case "place":
			result, err := svc.PlaceShip(ctx, info.ID, service.PlaceRequest{
				Player:      step.Player,
				Length:      step.Length,
				Start:       step.Start,
				Orientation: step.Orientation,
			})
			if err != nil {
				return fmt.Errorf("step %d: %w", n, err)
			}
			ok, message = result.Success, result.Message
		case "fire":
			result, err := svc.Fire(ctx, info.ID, step.Player, step.Target)
			if err != nil {
				return fmt.Errorf("step %d: %w", n, err)
			}
			ok, message = result.Success, result.Message
		default:
			return fmt.Errorf("step %d: unknown action %q", n, step.Action)
		}

		if !ok {
			fmt.Fprintf(out, "%d. rejected: %s\n", n, message)
			if strict {
				return fmt.Errorf("step %d rejected: %s", n, message)
			}
			continue
		}
		fmt.Fprintf(out, "%d. %s\n", n, message)
	}

	status, err := svc.GetGameState(ctx, info.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Final state: %s (ships afloat: first %d, second %d)\n",
		status.State, status.RemainingShips[engine.First], status.RemainingShips[engine.Second])
	return nil
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "validate fleet setups (all of them when no names are given)",
		ArgsUsage: "[names...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer logging.Sync(logger)

			_, _, configs, err := initializeServices(cmd.String("config-dir"), logger)
			if err != nil {
				return err
			}

			results := make(map[string]error)
			if names := cmd.Args().Slice(); len(names) > 0 {
				for _, name := range names {
					_, results[name] = configs.LoadSetup(name)
				}
			} else if results, err = configs.ValidateAll(); err != nil {
				return err
			}

			names := make([]string, 0, len(results))
			for name := range results {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.Root().Writer
			invalid := 0
			for _, name := range names {
				if err := results[name]; err != nil {
					invalid++
					logger.Warn("invalid setup", zap.String("setup", name), zap.Error(err))
					fmt.Fprintf(out, "✗ %s: %v\n", name, err)
					continue
				}
				fmt.Fprintf(out, "✓ %s\n", name)
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d setup(s) invalid", invalid, len(names))
			}
			fmt.Fprintf(out, "All %d setup(s) valid\n", len(names))
			return nil
		},
	}
}

func configsCommand() *cli.Command {
	return &cli.Command{
		Name:  "configs",
		Usage: "list available fleet setups",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer logging.Sync(logger)

			svc, _, _, err := initializeServices(cmd.String("config-dir"), logger)
			if err != nil {
				return err
			}

			setups, err := svc.ListSetups(ctx)
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			fmt.Fprintf(out, "%-16s %-20s %6s %6s  %s\n", "ID", "NAME", "FIRST", "SECOND", "DESCRIPTION")
			for _, info := range setups {
				fmt.Fprintf(out, "%-16s %-20s %6d %6d  %s\n",
					info.SetupID, info.Name, info.FirstShips, info.SecondShips, info.Description)
			}
			return nil
		},
	}
}

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "serve the game as MCP tools over stdio",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer logging.Sync(logger)

			svc, sessions, _, err := initializeServices(cmd.String("config-dir"), logger)
			if err != nil {
				return err
			}

			go sessionCleanupRoutine(ctx, sessions, cleanupInterval, sessionMaxAge, logger)

			logger.Info("starting MCP stdio server", zap.String("version", Version))
			return mcp.NewServer(svc, logger).ServeStdio()
		},
	}
}
