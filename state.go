package canopy

import "fmt"

// StateHandler drives a small state machine of actions keyed by K. Every
// tick it advances the action bound to the current state. When a
// non-default state's action completes the handler falls back to the
// default state; when the default state's action completes it is restarted,
// so the default loops.
//
// The default state may be bound to nil, which idles. Every other state
// must be bound to an action: entering an unbound state panics.
type StateHandler[K comparable] struct {
	action  *Action
	def     K
	current K
	states  map[K]*Action
}

// NewStateHandler creates a handler starting in def. The map is used
// directly; Bind may extend it later.
func NewStateHandler[K comparable](def K, states map[K]*Action) *StateHandler[K] {
	if states == nil {
		states = make(map[K]*Action)
	}
	h := &StateHandler[K]{def: def, current: def, states: states}
	h.action = NewAction(Forever, h)
	return h
}

// Action returns the action to attach to an actor. It never completes by
// itself; cancel it to stop the handler.
func (h *StateHandler[K]) Action() *Action {
	return h.action
}

// State returns the current state.
func (h *StateHandler[K]) State() K {
	return h.current
}

// Default returns the default state.
func (h *StateHandler[K]) Default() K {
	return h.def
}

// Bind maps state to action, replacing any previous binding.
func (h *StateHandler[K]) Bind(state K, action *Action) {
	h.states[state] = action
}

// SetState switches to state and restarts its action from the beginning.
// Switching to the current state is a no-op.
func (h *StateHandler[K]) SetState(state K) {
	if state == h.current {
		return
	}
	act := h.mustAction(state)
	h.current = state
	if act != nil {
		act.Restart(false)
	}
}

// Step advances the current state's action.
func (h *StateHandler[K]) Step(a *Action) bool {
	act := h.mustAction(h.current)
	if act == nil {
		return false
	}
	if !act.Advance(a.Actor(), a.DeltaTime()) {
		return false
	}
	if h.current == h.def {
		act.Restart(true)
	} else {
		h.SetState(h.def)
	}
	return false
}

// Restart returns to the default state and rewinds its action.
func (h *StateHandler[K]) Restart(smooth bool) {
	h.current = h.def
	if act := h.states[h.def]; act != nil {
		act.Restart(smooth)
	}
}

// mustAction returns the action bound to state; only the default state may
// be unbound.
func (h *StateHandler[K]) mustAction(state K) *Action {
	act := h.states[state]
	if act == nil && state != h.def {
		panic(fmt.Sprintf("canopy: state %v has no bound action", state))
	}
	return act
}
