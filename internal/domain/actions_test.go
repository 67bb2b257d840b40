package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"PLACE_ARROW", ActionPlaceArrow},
		{"place_arrow", ActionPlaceArrow},
		{"Build_Wall", ActionBuildWall},
		{"TOGGLE_PAUSE", ActionTogglePause},
		{"CONTINUE", ActionContinue},
		{"MOVE", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionRemoveArrow, "REMOVE_ARROW"},
		{ActionAdvanceLevel, "ADVANCE_LEVEL"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestParseEvent_RoundTrip(t *testing.T) {
	for ev := EventRewardCollected; ev <= EventLevelStarted; ev++ {
		if got := ParseEvent(ev.String()); got != ev {
			t.Errorf("ParseEvent(%q) = %v, want %v", ev.String(), got, ev)
		}
	}
	if ParseEvent("nope") != EventUnknown {
		t.Error("unknown event name must map to EventUnknown")
	}
}
