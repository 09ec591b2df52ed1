package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/wricardo/ship-game/game/service"
)

// arguments returns the tool arguments, or an empty map when none were sent
func arguments(request mcp.CallToolRequest) map[string]interface{} {
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		return args
	}
	return map[string]interface{}{}
}

// intArg reads a JSON number argument
func intArg(args map[string]interface{}, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	s.logger.Warn("tool failed", zap.String("tool", tool), zap.Error(err))
	return mcp.NewToolResultError(err.Error())
}

// Tool handlers

func (s *Server) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	setupName, _ := args["setup_name"].(string)

	info, err := s.svc.CreateSession(ctx, setupName)
	if err != nil {
		return s.toolError("create_session", err), nil
	}

	result := fmt.Sprintf("Created session: %s\nSetup: %s\n\n%s", info.ID, info.SetupName, formatStatus(info.Status))
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := s.svc.ListSessions(ctx)
	if err != nil {
		return s.toolError("list_sessions", err), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", len(sessions))
	for _, info := range sessions {
		result += fmt.Sprintf("- %s (Setup: %s, State: %s, Created: %s)\n",
			info.ID, info.SetupName, info.Status.State, info.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handlePlaceShip(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	player, _ := args["player"].(string)
	start, _ := args["start"].(string)
	orientation, _ := args["orientation"].(string)
	length, ok := intArg(args, "length")
	if !ok {
		return mcp.NewToolResultError("length must be a number"), nil
	}

	result, err := s.svc.PlaceShip(ctx, sessionID, service.PlaceRequest{
		Player:      player,
		Length:      length,
		Start:       start,
		Orientation: orientation,
	})
	if err != nil {
		return s.toolError("place_ship", err), nil
	}
	if !result.Success {
		return mcp.NewToolResultError("Placement rejected: " + result.Message), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", result.Message, formatStatus(result.Status))), nil
}

func (s *Server) handleFireTorpedo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	player, _ := args["player"].(string)
	target, _ := args["target"].(string)

	result, err := s.svc.Fire(ctx, sessionID, player, target)
	if err != nil {
		return s.toolError("fire_torpedo", err), nil
	}
	if !result.Success {
		return mcp.NewToolResultError("Shot rejected: " + result.Message), nil
	}

	return mcp.NewToolResultText(formatFireResult(result)), nil
}

func (s *Server) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	status, err := s.svc.GetGameState(ctx, sessionID)
	if err != nil {
		return s.toolError("game_state", err), nil
	}

	result := formatStatus(status) + formatFleets(status)
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleShotHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	opts := service.HistoryOptions{}
	opts.Page, _ = intArg(args, "page")
	opts.Limit, _ = intArg(args, "limit")
	opts.Order, _ = args["order"].(string)

	history, err := s.svc.GetShotHistory(ctx, sessionID, opts)
	if err != nil {
		return s.toolError("shot_history", err), nil
	}

	return mcp.NewToolResultText(formatHistory(history)), nil
}

func (s *Server) handleListSetups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	setups, err := s.svc.ListSetups(ctx)
	if err != nil {
		return s.toolError("list_setups", err), nil
	}

	var b strings.Builder
	b.WriteString("Available Fleet Setups:\n\n")
	for _, info := range setups {
		fmt.Fprintf(&b, "• %s (%s)\n  %s\n  Ships: first %d, second %d\n\n",
			info.SetupID, info.Name, info.Description, info.FirstShips, info.SecondShips)
	}
	if len(setups) == 0 {
		b.WriteString("(none) - create_session without a setup starts with empty fleets\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(gameInstructions), nil
}

const gameInstructions = `Ship Game - Complete Instructions

BOARD:
Each player has a 10x10 board. Rows are letters A-J (top to bottom), columns
are numbers 1-10 (left to right). Cells are written row then column with no
separator: A1, C7, J10. Letters must be uppercase and there are no leading
zeros.

PLACING SHIPS:
• A ship is at least 2 cells long and lies in a straight line.
• "start" is the top or left end of the ship.
• Orientation R extends the ship along its row: A1 length 3 R covers A1 A2 A3.
• Orientation C extends it down its column: A1 length 3 C covers A1 B1 C1.
• Every cell must be on the board and a player's ships may not overlap.
• Ships can be placed at any time, even after shooting has begun.

FIRING:
• Players alternate shots and "first" fires first.
• A shot at the opponent's board hits if it lands on an intact ship cell.
• A ship sinks when its last intact cell is hit.
• Firing at a cell that was already hit, or at a malformed cell, is a miss.
• Every accepted shot passes the turn to the other player, hit or miss.
• Firing out of turn or after the game is over is rejected and changes nothing.

WINNING:
The player whose shot sinks the opponent's last ship wins. Once a winner is
decided no further shots are accepted.`
