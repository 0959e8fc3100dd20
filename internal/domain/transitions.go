package domain

// InventoryEffect describes what a status transition does to inventory
type InventoryEffect int

const (
	// EffectNone - the transition does not touch inventory
	EffectNone InventoryEffect = iota

	// EffectRelease - the transition releases the rooms held by the booking
	// (restore the aggregate counter or free the room instance)
	EffectRelease
)

// transitionTable encodes the legal status transitions and their inventory
// side effects as data. Adding a state or a rule is a table change, not a new
// conditional scattered across call sites.
var transitionTable = map[BookingStatus]map[BookingStatus]InventoryEffect{
	StatusPending: {
		StatusConfirmed: EffectNone,
		StatusCancelled: EffectRelease,
	},
	StatusConfirmed: {
		StatusCheckedIn: EffectNone, // check-in date rule is enforced by the caller
		StatusCancelled: EffectRelease,
	},
	StatusCheckedIn: {
		StatusCompleted: EffectRelease, // checkout releases the rooms
	},
	// StatusCompleted and StatusCancelled are terminal: no outgoing edges
}

// Transition validates a status transition and returns its inventory effect.
// Any edge absent from the table is rejected with ErrIllegalTransition.
func Transition(from, to BookingStatus) (InventoryEffect, error) {
	targets, ok := transitionTable[from]
	if !ok {
		return EffectNone, ErrIllegalTransition
	}
	effect, ok := targets[to]
	if !ok {
		return EffectNone, ErrIllegalTransition
	}
	return effect, nil
}

// CanTransition reports whether the transition from -> to is legal
func CanTransition(from, to BookingStatus) bool {
	_, err := Transition(from, to)
	return err == nil
}
