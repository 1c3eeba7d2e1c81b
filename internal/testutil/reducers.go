package testutil

import "github.com/hupe1980/godux"

// Action types the canonical test reducers understand.
const (
	ActionIncrement = "INCREMENT"
	ActionDecrement = "DECREMENT"
	ActionToggle    = "TOGGLE"
)

// Counter returns a reducer over an int slice starting at 0, incremented and
// decremented by the canonical counter actions. Unknown actions return the
// previous state untouched.
func Counter() godux.Reducer {
	return func(state, action any) any {
		n, _ := state.(int)
		t, _ := godux.TypeOf(action)
		switch t {
		case ActionIncrement:
			return n + 1
		case ActionDecrement:
			return n - 1
		default:
			if state == nil {
				return 0
			}
			return state
		}
	}
}

// Toggle returns a reducer over a bool slice starting at false, flipped by
// the toggle action.
func Toggle() godux.Reducer {
	return func(state, action any) any {
		b, _ := state.(bool)
		t, _ := godux.TypeOf(action)
		switch t {
		case ActionToggle:
			return !b
		default:
			if state == nil {
				return false
			}
			return state
		}
	}
}
