package core

import "testing"

func TestIntentFromKeys(t *testing.T) {
	tests := []struct {
		name     string
		keys     map[string]bool
		expected Intent
	}{
		{"nil map", nil, Intent{}},
		{"empty map", map[string]bool{}, Intent{}},
		{"partial", map[string]bool{"right": true}, Intent{Right: true}},
		{"all held", map[string]bool{"left": true, "right": true, "jump": true}, Intent{Left: true, Right: true, Jump: true}},
		{"unknown keys ignored", map[string]bool{"shoot": true, "LEFT": true}, Intent{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IntentFromKeys(tc.keys); got != tc.expected {
				t.Errorf("IntentFromKeys() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestIntentFromActions(t *testing.T) {
	held := map[Action]bool{ActionJump: true, ActionShoot: true}
	got := IntentFromActions(held)
	if got != (Intent{Jump: true}) {
		t.Errorf("IntentFromActions() = %+v, expected only jump", got)
	}
}

func TestActionIsHeld(t *testing.T) {
	for _, a := range []Action{ActionLeft, ActionRight, ActionJump} {
		if !a.IsHeld() {
			t.Errorf("%s should be a held action", a)
		}
	}
	for _, a := range []Action{ActionShoot, ActionPause, ActionQuit} {
		if a.IsHeld() {
			t.Errorf("%s should not be a held action", a)
		}
	}
}
