// Package state implements the locomotion state machine: the states an
// entity moves through, their ordered transition guards and the handler
// that switches between them.
package state

import (
	"errors"
	"fmt"

	"github.com/younwookim/lionheart/internal/domain/collision"
)

// ErrUnknownState is returned when a state id has no registered state
var ErrUnknownState = errors.New("unknown state")

// ID identifies a locomotion state
type ID int

const (
	Idle ID = iota
	Walk
	Crouch
	Jump
	Fall
	Slide
	Land
	Border
	Patrol
	Die
	AttackPrepare
	AttackUnprepare
	AttackJump
	AttackFall
	AttackCrouchHorizontal
	AttackCrouchPrepared
)

var idNames = [...]string{
	Idle:                   "Idle",
	Walk:                   "Walk",
	Crouch:                 "Crouch",
	Jump:                   "Jump",
	Fall:                   "Fall",
	Slide:                  "Slide",
	Land:                   "Land",
	Border:                 "Border",
	Patrol:                 "Patrol",
	Die:                    "Die",
	AttackPrepare:          "AttackPrepare",
	AttackUnprepare:        "AttackUnprepare",
	AttackJump:             "AttackJump",
	AttackFall:             "AttackFall",
	AttackCrouchHorizontal: "AttackCrouchHorizontal",
	AttackCrouchPrepared:   "AttackCrouchPrepared",
}

// IDs lists every state id in declaration order
func IDs() []ID {
	ids := make([]ID, len(idNames))
	for i := range idNames {
		ids[i] = ID(i)
	}
	return ids
}

// String returns the string representation of the state id
func (id ID) String() string {
	if id < 0 || int(id) >= len(idNames) {
		return "Unknown"
	}
	return idNames[id]
}

// ParseID returns the id whose name is name
func ParseID(name string) (ID, error) {
	for i, n := range idNames {
		if n == name {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// State is one node of the locomotion graph.
//
// Enter runs when the state becomes current, Update once per frame before
// physics, PostUpdate once per frame after collisions were delivered, and
// Exit when the handler switches away. Transitions returns the guards in
// evaluation order.
type State interface {
	ID() ID
	Enter()
	Update(extrp float64)
	PostUpdate()
	Exit()
	Transitions() []Transition

	activation() *collision.Scope
}
