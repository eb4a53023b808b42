package pets

import "math/rand"

type Behavior string

const (
	Idle    Behavior = "idle"
	Wander  Behavior = "wander"
	Sit     Behavior = "sit"
	Dragged Behavior = "dragged"
)

type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

type Point struct {
	X, Y float64
}

// Bounds is the visible plant-area rectangle pets live in.
type Bounds struct {
	Width, Height float64
}

// Sprite is the pet's footprint; positions are the sprite's top-left corner,
// so the reachable area is [0, Width-SpriteW] x [0, Height-SpriteH].
type Sprite struct {
	W, H float64
}

const (
	// Speed is the fixed per-tick step while wandering, in area units.
	Speed = 1.0
	// ArriveEpsilon is the arrival distance below which a wander target
	// counts as reached.
	ArriveEpsilon = 0.75

	// Dwell durations between behavior changes, in ticks (2-5 s at the
	// default tick interval).
	DwellMinTicks = 13
	DwellMaxTicks = 33

	// sitChance is the probability of sitting instead of idling on arrival.
	// Biased toward Idle.
	sitChance = 0.35
)

// Controller runs one pet's wandering state machine. Controllers are
// mutually independent and never touch ledger or inventory state; the tick
// loop is the single mutation point, except for the drag calls which the
// pointer drives directly.
type Controller struct {
	petID  string
	bounds Bounds
	sprite Sprite
	rng    *rand.Rand

	pos      Point
	facing   Facing
	behavior Behavior
	target   *Point
	dwell    int
}

// NewController spawns a pet at a random in-bounds position, idling.
func NewController(petID string, bounds Bounds, sprite Sprite, rng *rand.Rand) *Controller {
	c := &Controller{
		petID:    petID,
		bounds:   bounds,
		sprite:   sprite,
		rng:      rng,
		facing:   FacingRight,
		behavior: Idle,
	}
	c.pos = c.randomPoint()
	c.dwell = c.randomDwell()
	return c
}

func (c *Controller) PetID() string      { return c.petID }
func (c *Controller) Position() Point    { return c.pos }
func (c *Controller) Facing() Facing     { return c.facing }
func (c *Controller) Behavior() Behavior { return c.behavior }

// Target returns the current wander target, or nil outside Wander.
func (c *Controller) Target() *Point {
	if c.target == nil {
		return nil
	}
	t := *c.target
	return &t
}

// SetBounds resizes the area, re-clamping the position and any target so a
// shrinking window cannot strand a pet out of bounds.
func (c *Controller) SetBounds(b Bounds) {
	c.bounds = b
	c.pos = c.clamp(c.pos)
	if c.target != nil {
		t := c.clamp(*c.target)
		c.target = &t
	}
}

// Tick advances the state machine one step. Dragged pets hold still; the
// pointer moves them through DragTo instead.
func (c *Controller) Tick() {
	switch c.behavior {
	case Dragged:
		return
	case Idle, Sit:
		c.dwell--
		if c.dwell <= 0 {
			t := c.randomPoint()
			c.target = &t
			c.behavior = Wander
		}
	case Wander:
		c.stepTowardTarget()
	}
}

func (c *Controller) stepTowardTarget() {
	if c.target == nil {
		c.behavior = Idle
		c.dwell = c.randomDwell()
		return
	}

	dx := c.target.X - c.pos.X
	dy := c.target.Y - c.pos.Y
	if dx*dx+dy*dy <= ArriveEpsilon*ArriveEpsilon {
		c.pos = c.clamp(*c.target)
		c.target = nil
		if c.rng.Float64() < sitChance {
			c.behavior = Sit
		} else {
			c.behavior = Idle
		}
		c.dwell = c.randomDwell()
		return
	}

	step := Point{X: c.pos.X, Y: c.pos.Y}
	switch {
	case dx > Speed:
		step.X += Speed
	case dx < -Speed:
		step.X -= Speed
	default:
		step.X = c.target.X
	}
	switch {
	case dy > Speed:
		step.Y += Speed
	case dy < -Speed:
		step.Y -= Speed
	default:
		step.Y = c.target.Y
	}

	if step.X > c.pos.X {
		c.facing = FacingRight
	} else if step.X < c.pos.X {
		c.facing = FacingLeft
	}

	// Defensive clamp: targets are chosen in-bounds, but the area may have
	// shrunk since.
	c.pos = c.clamp(step)
}

// Hit reports whether a pointer position falls inside the pet's hit region.
func (c *Controller) Hit(p Point) bool {
	return p.X >= c.pos.X && p.X < c.pos.X+c.sprite.W &&
		p.Y >= c.pos.Y && p.Y < c.pos.Y+c.sprite.H
}

// StartDrag switches to Dragged from any state and clears the target.
func (c *Controller) StartDrag(pointer Point) {
	c.behavior = Dragged
	c.target = nil
	c.DragTo(pointer)
}

// DragTo drives the position directly from the pointer, clamped to bounds.
func (c *Controller) DragTo(pointer Point) {
	if c.behavior != Dragged {
		return
	}
	next := Point{X: pointer.X - c.sprite.W/2, Y: pointer.Y - c.sprite.H/2}
	if next.X > c.pos.X {
		c.facing = FacingRight
	} else if next.X < c.pos.X {
		c.facing = FacingLeft
	}
	c.pos = c.clamp(next)
}

// EndDrag releases the pet back to Idle with a fresh dwell.
func (c *Controller) EndDrag() {
	if c.behavior != Dragged {
		return
	}
	c.behavior = Idle
	c.target = nil
	c.dwell = c.randomDwell()
}

func (c *Controller) clamp(p Point) Point {
	maxX := c.bounds.Width - c.sprite.W
	maxY := c.bounds.Height - c.sprite.H
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if p.X < 0 {
		p.X = 0
	} else if p.X > maxX {
		p.X = maxX
	}
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > maxY {
		p.Y = maxY
	}
	return p
}

func (c *Controller) randomPoint() Point {
	maxX := c.bounds.Width - c.sprite.W
	maxY := c.bounds.Height - c.sprite.H
	if maxX <= 0 || maxY <= 0 {
		return Point{}
	}
	return Point{
		X: c.rng.Float64() * maxX,
		Y: c.rng.Float64() * maxY,
	}
}

func (c *Controller) randomDwell() int {
	return DwellMinTicks + c.rng.Intn(DwellMaxTicks-DwellMinTicks+1)
}
