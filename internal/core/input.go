package core

import (
	"sort"
	"strings"
)

// Action is an abstract intent produced by an input source.
// Drivers translate physical keys into actions through a KeyMap.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionQuit         // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseAction converts an action name back to an Action.
func ParseAction(name string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return ActionUp, true
	case "down":
		return ActionDown, true
	case "left":
		return ActionLeft, true
	case "right":
		return ActionRight, true
	case "quit":
		return ActionQuit, true
	}
	return ActionNone, false
}

// KeyMap maps key names (as Bubble Tea spells them: "up", "w", "ctrl+c")
// to actions. Every driver normalizes its own key events to these names.
type KeyMap map[string]Action

// DefaultKeyMap returns arrow keys, WASD and q/Ctrl+C.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"up":     ActionUp,
		"w":      ActionUp,
		"down":   ActionDown,
		"s":      ActionDown,
		"left":   ActionLeft,
		"a":      ActionLeft,
		"right":  ActionRight,
		"d":      ActionRight,
		"q":      ActionQuit,
		"ctrl+c": ActionQuit,
	}
}

// Lookup returns the action bound to key, or ActionNone.
func (k KeyMap) Lookup(key string) Action {
	if a, ok := k[key]; ok {
		return a
	}
	return ActionNone
}

// Keys returns every key bound to the given action, sorted.
func (k KeyMap) Keys(a Action) []string {
	var keys []string
	for key, bound := range k {
		if bound == a {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// ctrl+c must stay bound so the player can always leave a raw terminal.
func (k KeyMap) ensureQuit() {
	if _, ok := k["ctrl+c"]; !ok {
		k["ctrl+c"] = ActionQuit
	}
}

// NewKeyMap builds a KeyMap from action name -> key names, as stored in config.
// Unknown action names are reported back so callers can reject them.
func NewKeyMap(bindings map[string][]string) (KeyMap, []string) {
	km := make(KeyMap)
	var unknown []string
	for name, keys := range bindings {
		a, ok := ParseAction(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		for _, key := range keys {
			km[strings.ToLower(key)] = a
		}
	}
	km.ensureQuit()
	sort.Strings(unknown)
	return km, unknown
}
