package resource

import "strconv"

// Handle is an opaque reference to a boundary-owned object.
// Handle 0 is reserved and always invalid.
type Handle uint32

// TypeID tags a handle with the opaque type it was created for.
type TypeID uint32

const (
	TypeDataProvider TypeID = iota + 1
	TypeLocale
	TypeCalendar
)

var typeNames = map[TypeID]string{
	TypeDataProvider: "DataProvider",
	TypeLocale:       "Locale",
	TypeCalendar:     "Calendar",
}

func (t TypeID) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "type(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// Event types for resource lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

// Event represents a resource lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	TypeID TypeID
	Type   EventType
}

// Observer receives notifications about resource lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Dropper is optionally implemented by resource values that need cleanup.
type Dropper interface {
	Drop()
}
