package pets

import (
	"math/rand"
	"testing"
)

var (
	testBounds = Bounds{Width: 60, Height: 20}
	testSprite = Sprite{W: 2, H: 1}
)

func newTestController(t *testing.T, seed int64) *Controller {
	t.Helper()
	return NewController("pet_cat", testBounds, testSprite, rand.New(rand.NewSource(seed)))
}

func inBounds(p Point, b Bounds, s Sprite) bool {
	return p.X >= 0 && p.X <= b.Width-s.W && p.Y >= 0 && p.Y <= b.Height-s.H
}

func TestSpawnIsIdleAndInBounds(t *testing.T) {
	c := newTestController(t, 1)
	if c.Behavior() != Idle {
		t.Fatalf("behavior=%s, want idle", c.Behavior())
	}
	if c.Target() != nil {
		t.Fatalf("target=%v, want nil at spawn", c.Target())
	}
	if !inBounds(c.Position(), testBounds, testSprite) {
		t.Fatalf("spawn position %v out of bounds", c.Position())
	}
}

// tickUntilWander advances until the controller starts wandering.
func tickUntilWander(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; i <= DwellMaxTicks; i++ {
		c.Tick()
		if c.Behavior() == Wander {
			return
		}
	}
	t.Fatalf("pet never started wandering within the max dwell")
}

func TestIdleEventuallyWanders(t *testing.T) {
	c := newTestController(t, 2)
	tickUntilWander(t, c)
	if c.Target() == nil {
		t.Fatalf("wander must have a target")
	}
	if !inBounds(*c.Target(), testBounds, testSprite) {
		t.Fatalf("target %v out of bounds", *c.Target())
	}
}

func TestWanderArrivesAndStaysInBounds(t *testing.T) {
	c := newTestController(t, 3)

	// Long horizon: several wander cycles. Position must hold the bounds
	// invariant on every single tick.
	arrived := false
	for i := 0; i < 2000; i++ {
		before := c.Behavior()
		c.Tick()
		if !inBounds(c.Position(), testBounds, testSprite) {
			t.Fatalf("tick %d: position %v out of bounds", i, c.Position())
		}
		if before == Wander && c.Behavior() != Wander {
			arrived = true
			if c.Behavior() != Idle && c.Behavior() != Sit {
				t.Fatalf("arrival behavior=%s, want idle or sit", c.Behavior())
			}
			if c.Target() != nil {
				t.Fatalf("target not cleared on arrival")
			}
		}
	}
	if !arrived {
		t.Fatalf("pet never completed a wander in 2000 ticks")
	}
}

func TestDragClampsEveryTick(t *testing.T) {
	c := newTestController(t, 4)

	c.StartDrag(c.Position())
	if c.Behavior() != Dragged {
		t.Fatalf("behavior=%s, want dragged", c.Behavior())
	}
	if c.Target() != nil {
		t.Fatalf("drag must clear the target")
	}

	pointers := []Point{
		{X: -50, Y: -50},
		{X: 1e6, Y: 1e6},
		{X: testBounds.Width + 3, Y: 5},
		{X: 10, Y: -3},
		{X: 30, Y: 10},
	}
	for _, p := range pointers {
		c.DragTo(p)
		c.Tick() // dragged pets ignore ticks; position must not drift
		if !inBounds(c.Position(), testBounds, testSprite) {
			t.Fatalf("dragged to %v: position %v out of bounds", p, c.Position())
		}
	}
}

func TestEndDragReturnsToIdleWithNoTarget(t *testing.T) {
	c := newTestController(t, 5)

	c.StartDrag(Point{X: 10, Y: 10})
	c.DragTo(Point{X: 20, Y: 5})
	c.EndDrag()

	if c.Behavior() != Idle {
		t.Fatalf("behavior=%s after release, want idle", c.Behavior())
	}
	if c.Target() != nil {
		t.Fatalf("target=%v after release, want nil", c.Target())
	}

	// Release without a drag in progress is a no-op.
	c.EndDrag()
	if c.Behavior() != Idle {
		t.Fatalf("behavior=%s, want idle", c.Behavior())
	}
}

func TestDragOverridesAnyState(t *testing.T) {
	c := newTestController(t, 6)
	tickUntilWander(t, c)

	c.StartDrag(c.Position())
	if c.Behavior() != Dragged || c.Target() != nil {
		t.Fatalf("drag from wander: behavior=%s target=%v", c.Behavior(), c.Target())
	}
}

func TestSetBoundsReclamps(t *testing.T) {
	c := newTestController(t, 7)
	c.StartDrag(Point{X: testBounds.Width, Y: testBounds.Height})
	c.EndDrag()

	small := Bounds{Width: 8, Height: 4}
	c.SetBounds(small)
	if !inBounds(c.Position(), small, testSprite) {
		t.Fatalf("position %v out of shrunken bounds", c.Position())
	}
}

func TestFacingFollowsHorizontalMovement(t *testing.T) {
	c := newTestController(t, 8)

	c.StartDrag(Point{X: 30, Y: 10})
	c.DragTo(Point{X: 50, Y: 10})
	if c.Facing() != FacingRight {
		t.Fatalf("facing=%d after moving right, want FacingRight", c.Facing())
	}
	c.DragTo(Point{X: 5, Y: 10})
	if c.Facing() != FacingLeft {
		t.Fatalf("facing=%d after moving left, want FacingLeft", c.Facing())
	}
}

func TestHerdSyncAndHitOrder(t *testing.T) {
	h := NewHerd(testBounds, testSprite, rand.New(rand.NewSource(9)))

	h.Sync([]string{"pet_cat", "pet_slime"})
	h.Sync([]string{"pet_cat", "pet_slime"}) // idempotent
	if got := len(h.All()); got != 2 {
		t.Fatalf("controllers=%d, want 2", got)
	}

	cat := h.Get("pet_cat")
	slime := h.Get("pet_slime")
	if cat == nil || slime == nil {
		t.Fatalf("expected controllers for both pets")
	}

	// Stack both pets on the same spot: the later-acquired one is on top.
	cat.StartDrag(Point{X: 10, Y: 5})
	cat.EndDrag()
	slime.StartDrag(Point{X: 10, Y: 5})
	slime.EndDrag()

	hit := h.At(Point{X: cat.Position().X, Y: cat.Position().Y})
	if hit != slime {
		t.Fatalf("hit=%v, want the topmost pet (slime)", hit)
	}

	if h.Dragging() != nil {
		t.Fatalf("no pet should be dragging")
	}
	slime.StartDrag(Point{X: 10, Y: 5})
	if h.Dragging() != slime {
		t.Fatalf("Dragging()=%v, want slime", h.Dragging())
	}
}
