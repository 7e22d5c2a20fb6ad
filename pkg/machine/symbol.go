package machine

// Symbol is a tape symbol read or written by a transition.
type Symbol string

// Tape alphabet.
const (
	Zero  Symbol = "0"
	One   Symbol = "1"
	Blank Symbol = " "
)

// Valid reports whether s belongs to the tape alphabet.
func (s Symbol) Valid() bool {
	switch s {
	case Zero, One, Blank:
		return true
	}
	return false
}

// Move is the direction the head travels after writing.
type Move string

// Head directions.
const (
	Left  Move = "left"
	Right Move = "right"
)

// Valid reports whether m is a known head direction.
func (m Move) Valid() bool {
	return m == Left || m == Right
}

// Reserved state names.
const (
	// StartState is the conventional entry state.
	// Its presence in a Description also shifts every encoded state number by one.
	StartState = "q0"

	// HaltState is the sentinel next state meaning "no outgoing transition".
	HaltState = "qdone"
)
