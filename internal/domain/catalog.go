package domain

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog is the fixed card list dealt at match start. Consumed read-only.
type Catalog []Card

// DefaultCatalog returns the built-in eight-animal catalog used when no
// external catalog file is configured.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "cheetah", Animal: "Cheetah", Stats: map[StatName]int{StatSpeed: 98, StatStrength: 45, StatSize: 30, StatIntelligence: 55}},
		{ID: "elephant", Animal: "Elephant", Stats: map[StatName]int{StatSpeed: 25, StatStrength: 95, StatSize: 99, StatIntelligence: 75}},
		{ID: "dolphin", Animal: "Dolphin", Stats: map[StatName]int{StatSpeed: 60, StatStrength: 40, StatSize: 45, StatIntelligence: 92}},
		{ID: "gorilla", Animal: "Gorilla", Stats: map[StatName]int{StatSpeed: 35, StatStrength: 88, StatSize: 60, StatIntelligence: 85}},
		{ID: "falcon", Animal: "Peregrine Falcon", Stats: map[StatName]int{StatSpeed: 99, StatStrength: 20, StatSize: 10, StatIntelligence: 50}},
		{ID: "crocodile", Animal: "Crocodile", Stats: map[StatName]int{StatSpeed: 30, StatStrength: 80, StatSize: 70, StatIntelligence: 35}},
		{ID: "wolf", Animal: "Grey Wolf", Stats: map[StatName]int{StatSpeed: 65, StatStrength: 55, StatSize: 40, StatIntelligence: 80}},
		{ID: "octopus", Animal: "Octopus", Stats: map[StatName]int{StatSpeed: 40, StatStrength: 35, StatSize: 25, StatIntelligence: 90}},
	}
}

// LoadCatalog reads a catalog from a JSON file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Validate checks that the catalog is dealable: at least two cards,
// unique IDs, and a value for every stat name on every card.
func (c Catalog) Validate() error {
	if len(c) < 2 {
		return fmt.Errorf("catalog needs at least 2 cards, got %d", len(c))
	}

	seen := make(map[string]bool, len(c))
	for _, card := range c {
		if card.ID == "" {
			return fmt.Errorf("catalog card %q missing id", card.Animal)
		}
		if seen[card.ID] {
			return fmt.Errorf("duplicate catalog card id %q", card.ID)
		}
		seen[card.ID] = true

		for _, stat := range StatNames() {
			if _, ok := card.Stats[stat]; !ok {
				return fmt.Errorf("catalog card %q missing stat %q", card.ID, stat)
			}
		}
	}
	return nil
}
