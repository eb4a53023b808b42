package engine

import "strings"

// Static task and item tables. The catalog is fixed at compile time: task
// claims are honor-system, so there is nothing to validate beyond the id.

type TaskDef struct {
	ID     string
	Label  string
	Reward int
}

// Tasks is the fixed reward table, ordered cheapest first.
var Tasks = []TaskDef{
	{ID: "went_to_class", Label: "Went to a class", Reward: 5},
	{ID: "ate_a_meal", Label: "Ate a meal", Reward: 10},
	{ID: "drank_water", Label: "Drank one bottle of water", Reward: 10},
	{ID: "cooked_a_meal", Label: "Cooked a meal", Reward: 20},
	{ID: "did_laundry", Label: "Did laundry", Reward: 30},
	{ID: "studied_30min", Label: "Studied/Worked 30 minutes", Reward: 50},
	{ID: "slept_8hours", Label: "Slept for 8 or more hours", Reward: 100},
	{ID: "submitted_homework", Label: "Submitted a homework assignment", Reward: 100},
	{ID: "took_a_test", Label: "Took a test", Reward: 200},
}

func TaskByID(id string) (TaskDef, bool) {
	for _, t := range Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return TaskDef{}, false
}

type ItemDef struct {
	ID   string
	Name string
	Kind ItemKind
	Cost int
}

// DefaultPlantID is owned from the very first session; it never appears in
// the shop and costs nothing.
const DefaultPlantID = "plant_shrub"

// ShopItems lists everything purchasable, plants then pets.
var ShopItems = []ItemDef{
	{ID: "plant_baby_cactus", Name: "Baby Cactus", Kind: KindPlant, Cost: 100},
	{ID: "plant_clover", Name: "Clover", Kind: KindPlant, Cost: 200},
	{ID: "plant_rose", Name: "Rose", Kind: KindPlant, Cost: 300},
	{ID: "plant_cherry_blossom", Name: "Cherry Blossom", Kind: KindPlant, Cost: 500},
	{ID: "plant_strawberry", Name: "Strawberry", Kind: KindPlant, Cost: 1000},

	{ID: "pet_person", Name: "Person", Kind: KindPet, Cost: 250},
	{ID: "pet_mushroom", Name: "Mushroom", Kind: KindPet, Cost: 500},
	{ID: "pet_cat", Name: "Cat", Kind: KindPet, Cost: 750},
	{ID: "pet_slime", Name: "Slime", Kind: KindPet, Cost: 1000},
}

func ItemByID(id string) (ItemDef, bool) {
	if id == DefaultPlantID {
		return ItemDef{ID: DefaultPlantID, Name: "Shrub", Kind: KindPlant, Cost: 0}, true
	}
	for _, it := range ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return ItemDef{}, false
}

func ShopItemsByKind(kind ItemKind) []ItemDef {
	var out []ItemDef
	for _, it := range ShopItems {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

// DisplayName returns the catalog name for an item id, falling back to a
// title-cased version of the id for anything not in the catalog.
func DisplayName(itemID string) string {
	if it, ok := ItemByID(itemID); ok {
		return it.Name
	}
	s := strings.TrimPrefix(strings.TrimPrefix(itemID, "plant_"), "pet_")
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
