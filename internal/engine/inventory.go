package engine

import "sprout/internal/storage"

// Inventory owns the set of owned items inside a snapshot. Entries are
// unique by item id and are never deleted (there are no refunds).
type Inventory struct {
	snap *storage.Snapshot
}

func NewInventory(snap *storage.Snapshot) Inventory {
	return Inventory{snap: snap}
}

func (inv Inventory) IsOwned(itemID string) bool {
	_, ok := inv.entry(itemID)
	return ok
}

// Own records ownership of an item. Owning an item twice is rejected.
func (inv Inventory) Own(itemID string, kind ItemKind) error {
	if inv.IsOwned(itemID) {
		return ErrAlreadyOwned
	}
	inv.snap.Inventory = append(inv.snap.Inventory, storage.InventoryEntry{
		ItemID: itemID,
		Kind:   string(kind),
	})
	return nil
}

// Rename sets the custom display name of an owned item. The item id never
// changes; an empty name clears the custom name.
func (inv Inventory) Rename(itemID, name string) error {
	e, ok := inv.entry(itemID)
	if !ok {
		return ErrNotOwned
	}
	e.CustomName = name
	return nil
}

func (inv Inventory) CustomName(itemID string) string {
	if e, ok := inv.entry(itemID); ok {
		return e.CustomName
	}
	return ""
}

// ListByKind returns owned entries of one kind in ownership order.
func (inv Inventory) ListByKind(kind ItemKind) []storage.InventoryEntry {
	var out []storage.InventoryEntry
	for _, e := range inv.snap.Inventory {
		if e.Kind == string(kind) {
			out = append(out, e)
		}
	}
	return out
}

// disown removes an entry. Only the purchase rollback path uses this;
// ownership is otherwise permanent.
func (inv Inventory) disown(itemID string) {
	for i, e := range inv.snap.Inventory {
		if e.ItemID == itemID {
			inv.snap.Inventory = append(inv.snap.Inventory[:i], inv.snap.Inventory[i+1:]...)
			return
		}
	}
}

func (inv Inventory) entry(itemID string) (*storage.InventoryEntry, bool) {
	for i := range inv.snap.Inventory {
		if inv.snap.Inventory[i].ItemID == itemID {
			return &inv.snap.Inventory[i], true
		}
	}
	return nil, false
}
