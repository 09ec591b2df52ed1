package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/wricardo/ship-game/game/engine"
	"github.com/wricardo/ship-game/game/service"
)

const (
	ServerName    = "Ship Game"
	ServerVersion = "1.0.0"
)

// Server exposes the game service as MCP tools
type Server struct {
	svc       service.GameService
	logger    *zap.Logger
	mcpServer *server.MCPServer
	tools     []string
}

// NewServer creates an MCP server backed directly by the game service
func NewServer(svc service.GameService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		svc:    svc,
		logger: logger.Named("mcp"),
	}

	s.mcpServer = server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Ship Game - MCP Interface

Two players, "first" and "second", each hide ships on their own 10x10 board
(rows A-J, columns 1-10) and take turns firing torpedoes at the other's board.
The first player to sink every enemy ship wins.

AVAILABLE TOOLS:
- create_session: Start a new game, optionally from a fleet setup
- list_sessions: List active games
- place_ship: Add a ship to a player's fleet
- fire_torpedo: Fire at the opponent's board (players alternate, first starts)
- game_state: Show turn, remaining ships and intact cells of each fleet
- shot_history: Past shots with pagination
- list_setups: Available fleet setups
- game_instructions: Full rules`),
	)

	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Tools returns the names of the registered tools in registration order
func (s *Server) Tools() []string {
	return append([]string(nil), s.tools...)
}

// ServeStdio serves MCP over stdin/stdout until the input is closed
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio", zap.Strings("tools", s.tools))
	return server.ServeStdio(s.mcpServer)
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

func playerProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{string(engine.First), string(engine.Second)},
		"description": description,
	}
}

func (s *Server) addTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcpServer.AddTool(tool, handler)
	s.tools = append(s.tools, tool.Name)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	// Session management
	s.addTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session, optionally pre-placing fleets from a setup",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"setup_name": map[string]interface{}{
					"type":        "string",
					"description": "Fleet setup to use (optional, see list_setups)",
				},
			},
		},
	}, s.handleCreateSession)

	s.addTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListSessions)

	// Game operations
	s.addTool(mcp.Tool{
		Name:        "place_ship",
		Description: "Place a ship on a player's board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"player":     playerProperty("Owner of the ship"),
				"length": map[string]interface{}{
					"type":        "integer",
					"minimum":     engine.MinShipLength,
					"maximum":     engine.MaxShipLength,
					"description": "Number of cells the ship covers",
				},
				"start": map[string]interface{}{
					"type":        "string",
					"description": "Top or left end of the ship, e.g. A1 or J10",
				},
				"orientation": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"R", "C"},
					"description": "R extends along the row (rightwards), C down the column",
				},
			},
			Required: []string{"session_id", "player", "length", "start", "orientation"},
		},
	}, s.handlePlaceShip)

	s.addTool(mcp.Tool{
		Name:        "fire_torpedo",
		Description: "Fire a torpedo at the opponent's board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"player":     playerProperty("Player taking the shot"),
				"target": map[string]interface{}{
					"type":        "string",
					"description": "Cell to hit, e.g. B7",
				},
			},
			Required: []string{"session_id", "player", "target"},
		},
	}, s.handleFireTorpedo)

	s.addTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state with each fleet's intact cells",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, s.handleGameState)

	s.addTool(mcp.Tool{
		Name:        "shot_history",
		Description: "Get paginated shot history",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number (default 1)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Shots per page (default 20, max 100)",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "asc for oldest first, desc for newest first (default)",
				},
			},
			Required: []string{"session_id"},
		},
	}, s.handleShotHistory)

	// Info
	s.addTool(mcp.Tool{
		Name:        "list_setups",
		Description: "List available fleet setups",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListSetups)

	s.addTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the complete game rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameInstructions)
}
