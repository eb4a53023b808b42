package engine

import (
	"fmt"
	"strings"
)

type ItemKind string

const (
	KindPet      ItemKind = "pet"
	KindPlant    ItemKind = "plant"
	KindCosmetic ItemKind = "cosmetic"
)

func (k ItemKind) IsValid() bool {
	switch k {
	case KindPet, KindPlant, KindCosmetic:
		return true
	default:
		return false
	}
}

func ParseItemKind(input string) (ItemKind, error) {
	k := ItemKind(strings.TrimSpace(strings.ToLower(input)))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid item kind: %q", input)
	}
	return k, nil
}

// KindOfItem infers the kind from an item id prefix (e.g. "pet_cat" -> pet).
// Legacy save files store bare inventory ids without a kind.
func KindOfItem(itemID string) ItemKind {
	switch {
	case strings.HasPrefix(itemID, "pet_"):
		return KindPet
	case strings.HasPrefix(itemID, "plant_"):
		return KindPlant
	default:
		return KindCosmetic
	}
}
