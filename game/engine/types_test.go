package engine

import (
	"errors"
	"testing"
)

func TestPlayerConstants(t *testing.T) {
	if First.Opponent() != Second {
		t.Errorf("Expected opponent of first to be second, got %s", First.Opponent())
	}
	if Second.Opponent() != First {
		t.Errorf("Expected opponent of second to be first, got %s", Second.Opponent())
	}
	if Player("third").Valid() {
		t.Error("Expected third to be invalid")
	}
	if Player("third").Opponent() != "" {
		t.Error("Expected invalid player to have no opponent")
	}
}

func TestParsePlayer(t *testing.T) {
	tests := []struct {
		input    string
		expected Player
		wantErr  bool
	}{
		{"first", First, false},
		{"Second", Second, false},
		{" FIRST ", First, false},
		{"third", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		got, err := ParsePlayer(test.input)
		if test.wantErr {
			if !errors.Is(err, ErrInvalidPlayer) {
				t.Errorf("ParsePlayer(%q): expected ErrInvalidPlayer, got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePlayer(%q): unexpected error %v", test.input, err)
		}
		if got != test.expected {
			t.Errorf("ParsePlayer(%q): expected %s, got %s", test.input, test.expected, got)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		input    string
		expected Orientation
		wantErr  bool
	}{
		{"C", Vertical, false},
		{"c", Vertical, false},
		{"vertical", Vertical, false},
		{"R", Horizontal, false},
		{"horizontal", Horizontal, false},
		{"diagonal", 0, true},
		{"", 0, true},
	}

	for _, test := range tests {
		got, err := ParseOrientation(test.input)
		if test.wantErr {
			if !errors.Is(err, ErrInvalidOrientation) {
				t.Errorf("ParseOrientation(%q): expected ErrInvalidOrientation, got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOrientation(%q): unexpected error %v", test.input, err)
		}
		if got != test.expected {
			t.Errorf("ParseOrientation(%q): expected %s, got %s", test.input, test.expected, got)
		}
	}
}

func TestGameStateValues(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{Unfinished, "UNFINISHED"},
		{FirstWon, "FIRST_WON"},
		{SecondWon, "SECOND_WON"},
	}

	for _, test := range tests {
		if test.state.String() != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, test.state)
		}
	}

	if winStateFor(First) != FirstWon || winStateFor(Second) != SecondWon {
		t.Error("winStateFor returned the wrong state")
	}
}
