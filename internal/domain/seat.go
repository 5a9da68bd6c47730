package domain

// Seat identifies one of the two fixed player slots in a room.
type Seat string

const (
	SeatP1 Seat = "P1"
	SeatP2 Seat = "P2"
)

// Seats lists both seats in assignment order.
func Seats() [2]Seat {
	return [2]Seat{SeatP1, SeatP2}
}

// Other returns the opposing seat.
func (s Seat) Other() Seat {
	if s == SeatP1 {
		return SeatP2
	}
	return SeatP1
}

// Valid reports whether s is one of the two known seats.
func (s Seat) Valid() bool {
	return s == SeatP1 || s == SeatP2
}
