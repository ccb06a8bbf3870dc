package state

import (
	"fmt"

	"github.com/younwookim/lionheart/internal/domain/entity"
)

// Listener is notified after every state switch
type Listener func(from, to ID)

// Handler owns the current state of one entity and switches between states.
//
// Exactly one state is current at any time. A switch calls Exit on the old
// state, releases the listeners it registered, then calls Enter on the new
// one; nothing observes the entity in between. Switches requested while a
// switch is running are queued and applied right after it.
type Handler struct {
	model     *entity.Model
	states    map[ID]State
	current   State
	listeners []Listener

	switching bool
	pending   []ID
}

// NewHandler validates the state graph and enters the initial state.
// Every transition target must be registered.
func NewHandler(model *entity.Model, states map[ID]State, initial ID) (*Handler, error) {
	if _, ok := states[initial]; !ok {
		return nil, fmt.Errorf("%w: initial %s", ErrUnknownState, initial)
	}
	for id, s := range states {
		if s.ID() != id {
			return nil, fmt.Errorf("%w: %s registered as %s", ErrUnknownState, s.ID(), id)
		}
		for _, t := range s.Transitions() {
			if _, ok := states[t.Target]; !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownState, id, t.Target)
			}
		}
	}

	h := &Handler{
		model:  model,
		states: states,
	}
	h.current = states[initial]
	h.current.Enter()
	return h, nil
}

// Current returns the id of the current state
func (h *Handler) Current() ID {
	return h.current.ID()
}

// Is reports whether id is the current state
func (h *Handler) Is(id ID) bool {
	return h.current.ID() == id
}

// State returns the registered state for id
func (h *Handler) State(id ID) (State, bool) {
	s, ok := h.states[id]
	return s, ok
}

// Model returns the entity model the states act on
func (h *Handler) Model() *entity.Model {
	return h.model
}

// AddListener registers a switch listener
func (h *Handler) AddListener(l Listener) {
	h.listeners = append(h.listeners, l)
}

// Update runs the current state's per-frame logic before physics
func (h *Handler) Update(extrp float64) {
	h.current.Update(extrp)
}

// PostUpdate runs the current state's post-physics hook, then switches to
// the first transition target whose guard holds
func (h *Handler) PostUpdate() {
	h.current.PostUpdate()
	if next, ok := h.CheckTransitions(); ok {
		h.change(next)
	}
}

// CheckTransitions evaluates the current state's guards in order without
// side effects
func (h *Handler) CheckTransitions() (ID, bool) {
	return firstMatch(h.current.Transitions())
}

// ChangeState switches to id regardless of guards.
// Switching to the current state exits and re-enters it.
func (h *Handler) ChangeState(id ID) error {
	if _, ok := h.states[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownState, id)
	}
	h.change(id)
	return nil
}

// Stop exits the current state and releases its listeners, for entity
// destruction. The handler must be restarted before further use.
func (h *Handler) Stop() {
	h.current.Exit()
	h.current.activation().Release()
}

// Restart enters initial after Stop, for recycled entities
func (h *Handler) Restart(initial ID) error {
	s, ok := h.states[initial]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownState, initial)
	}
	h.pending = h.pending[:0]
	h.current = s
	h.current.Enter()
	return nil
}

func (h *Handler) change(next ID) {
	if h.switching {
		h.pending = append(h.pending, next)
		return
	}
	h.switching = true
	from := h.current
	from.Exit()
	from.activation().Release()
	h.current = h.states[next]
	h.current.Enter()
	h.switching = false

	for _, l := range h.listeners {
		l(from.ID(), next)
	}

	if len(h.pending) > 0 {
		queued := h.pending[0]
		h.pending = h.pending[1:]
		h.change(queued)
	}
}
