package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/ship-game/game/engine"
	"github.com/wricardo/ship-game/game/service"
)

func formatStatus(status *service.GameStatus) string {
	if status == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "State: %s\n", status.State)
	if status.State == engine.Unfinished {
		fmt.Fprintf(&b, "Turn: %s\n", status.Turn)
	} else {
		fmt.Fprintf(&b, "Winner: %s\n", status.Winner)
	}
	fmt.Fprintf(&b, "Ships afloat: first %d, second %d\n",
		status.RemainingShips[engine.First], status.RemainingShips[engine.Second])
	fmt.Fprintf(&b, "Shots fired: %d\n", status.ShotsFired)
	if last := status.LastShot; last != nil {
		outcome := "miss"
		if last.Hit {
			outcome = "hit"
		}
		fmt.Fprintf(&b, "Last shot: %s at %s (%s)\n", last.Player, last.Target, outcome)
	}
	return b.String()
}

func formatFireResult(result *service.FireResult) string {
	var b strings.Builder
	for _, ev := range result.Events {
		fmt.Fprintf(&b, "• %s\n", ev.Message)
	}
	if shot := result.Shot; shot != nil && shot.Ship != nil && !shot.Sunk {
		fmt.Fprintf(&b, "Ship has %d intact cell(s) left\n", len(shot.Ship.Intact))
	}
	b.WriteString("\n")
	b.WriteString(formatStatus(result.Status))
	return b.String()
}

// formatFleets lists each player's ships with their intact cells
func formatFleets(status *service.GameStatus) string {
	var b strings.Builder
	for _, owner := range []engine.Player{engine.First, engine.Second} {
		fleet := status.Fleets[owner]
		fmt.Fprintf(&b, "\n%s fleet (%d afloat):\n", owner, len(fleet))
		for _, ship := range fleet {
			fmt.Fprintf(&b, "- length %d %s, intact: %s\n", ship.Length, ship.Orientation, strings.Join(ship.Intact, " "))
		}
	}
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shot History (Page %d/%d, Total: %d shots):\n\n",
		history.Page, history.TotalPages, history.TotalShots)

	for _, shot := range history.Shots {
		outcome := "miss"
		switch {
		case shot.Won:
			outcome = "hit, sunk, won"
		case shot.Sunk:
			outcome = "hit, sunk"
		case shot.Hit:
			outcome = "hit"
		}
		fmt.Fprintf(&b, "%d. %s → %s: %s\n", shot.Number, shot.Player, shot.Target, outcome)
	}

	if history.HasPrevious || history.HasNext {
		b.WriteString("\n")
		if history.HasPrevious {
			fmt.Fprintf(&b, "Previous page: %d\n", history.Page-1)
		}
		if history.HasNext {
			fmt.Fprintf(&b, "Next page: %d\n", history.Page+1)
		}
	}
	return b.String()
}
