package pets

import "math/rand"

// Herd owns one Controller per owned pet. It never mutates ownership; the
// caller re-syncs it against the inventory whenever pets are purchased.
type Herd struct {
	bounds Bounds
	sprite Sprite
	rng    *rand.Rand

	controllers map[string]*Controller
	order       []string
}

func NewHerd(bounds Bounds, sprite Sprite, rng *rand.Rand) *Herd {
	return &Herd{
		bounds:      bounds,
		sprite:      sprite,
		rng:         rng,
		controllers: make(map[string]*Controller),
	}
}

// Sync adds controllers for newly owned pets. Controllers are never
// removed: ownership is permanent.
func (h *Herd) Sync(ownedPetIDs []string) {
	for _, id := range ownedPetIDs {
		if _, ok := h.controllers[id]; ok {
			continue
		}
		h.controllers[id] = NewController(id, h.bounds, h.sprite, h.rng)
		h.order = append(h.order, id)
	}
}

// TickAll advances every controller by one tick.
func (h *Herd) TickAll() {
	for _, id := range h.order {
		h.controllers[id].Tick()
	}
}

// SetBounds propagates an area resize to every controller.
func (h *Herd) SetBounds(b Bounds) {
	h.bounds = b
	for _, c := range h.controllers {
		c.SetBounds(b)
	}
}

// At returns the topmost pet whose hit region contains the pointer, or nil.
// Later-acquired pets draw on top, so iterate newest first.
func (h *Herd) At(p Point) *Controller {
	for i := len(h.order) - 1; i >= 0; i-- {
		c := h.controllers[h.order[i]]
		if c.Hit(p) {
			return c
		}
	}
	return nil
}

// Get returns the controller for a pet id, or nil.
func (h *Herd) Get(petID string) *Controller {
	return h.controllers[petID]
}

// All returns controllers in acquisition order.
func (h *Herd) All() []*Controller {
	out := make([]*Controller, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, h.controllers[id])
	}
	return out
}

// Dragging returns the controller currently being dragged, or nil. At most
// one pet can be under the pointer grip at a time.
func (h *Herd) Dragging() *Controller {
	for _, c := range h.controllers {
		if c.Behavior() == Dragged {
			return c
		}
	}
	return nil
}
