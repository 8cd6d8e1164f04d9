package booking

// ===============================
// Half-day slots
// ===============================

// Slot is one of the two half-day windows of a bookable day.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
)

func (s Slot) Valid() bool {
	return s == SlotMorning || s == SlotAfternoon
}

// Window is the display label of the slot's service window.
func (s Slot) Window() string {
	if s == SlotAfternoon {
		return "13:30 - 18:00"
	}
	return "08:00 - 12:30"
}

// ===============================
// Block scopes
// ===============================

// BlockScope targets a whole day or a single slot of it. ScopeDay maps to
// the empty slot value on the Block record.
type BlockScope string

const (
	ScopeDay       BlockScope = "day"
	ScopeMorning   BlockScope = BlockScope(SlotMorning)
	ScopeAfternoon BlockScope = BlockScope(SlotAfternoon)
)

func (sc BlockScope) Valid() bool {
	return sc == ScopeDay || sc == ScopeMorning || sc == ScopeAfternoon
}

// SlotValue is the Block.Slot column value for the scope ("" = whole day).
func (sc BlockScope) SlotValue() string {
	if sc == ScopeDay {
		return ""
	}
	return string(sc)
}
