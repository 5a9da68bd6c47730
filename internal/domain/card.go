package domain

// StatName identifies one of the fixed numeric attributes carried by every card.
type StatName string

const (
	StatSpeed        StatName = "speed"
	StatStrength     StatName = "strength"
	StatSize         StatName = "size"
	StatIntelligence StatName = "intelligence"
)

// StatNames returns the closed set of attribute names in display order.
func StatNames() []StatName {
	return []StatName{StatSpeed, StatStrength, StatSize, StatIntelligence}
}

// IsStat reports whether name is a recognized attribute.
func IsStat(name string) bool {
	switch StatName(name) {
	case StatSpeed, StatStrength, StatSize, StatIntelligence:
		return true
	}
	return false
}

// Card is an immutable catalog entry. Every card carries a value for
// every stat name.
type Card struct {
	ID     string           `json:"id"`
	Animal string           `json:"animal"`
	Stats  map[StatName]int `json:"stats"`
}
