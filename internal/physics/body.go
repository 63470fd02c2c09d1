// Package physics is a small 2D rigid-body world: gravity for dynamic bodies,
// resting collision against static bodies, and begin-contact reporting keyed
// by body category. World coordinates are y-up.
package physics

import (
	"math"
	"strings"
)

// Category identifies what kind of object a body is.
type Category uint8

const (
	CategoryBird Category = iota
	CategoryWorld
	CategoryPipe
	CategoryScore
	CategoryItem
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryBird:
		return "bird"
	case CategoryWorld:
		return "world"
	case CategoryPipe:
		return "pipe"
	case CategoryScore:
		return "score"
	case CategoryItem:
		return "item"
	default:
		return "unknown"
	}
}

// CategorySet is a set of categories.
type CategorySet uint32

// NewCategorySet builds a set from the given categories.
func NewCategorySet(cats ...Category) CategorySet {
	var s CategorySet
	for _, c := range cats {
		s = s.With(c)
	}
	return s
}

// With returns the set with c added.
func (s CategorySet) With(c Category) CategorySet {
	return s | 1<<c
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	return s&(1<<c) != 0
}

// String lists the members, e.g. "{world,pipe}".
func (s CategorySet) String() string {
	var names []string
	for c := CategoryBird; c <= CategoryItem; c++ {
		if s.Has(c) {
			names = append(names, c.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Shape is the collision shape of a body.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// Body is a physical object in the world. X and Y are the shape's centre.
type Body struct {
	Category    Category
	ContactWith CategorySet // categories this body reports contacts with
	CollideWith CategorySet // static categories this dynamic body rests against
	Dynamic     bool

	Shape  Shape
	W, H   float64 // rect size
	Radius float64 // circle radius

	X, Y   float64
	VX, VY float64

	// Owner lets game code map a body back to the object that created it.
	Owner any

	id    uint64
	world *World
}

// NewRect creates a static rectangular body centred at (x, y).
func NewRect(cat Category, x, y, w, h float64) *Body {
	return &Body{Category: cat, Shape: ShapeRect, X: x, Y: y, W: w, H: h}
}

// NewCircle creates a static circular body centred at (x, y).
func NewCircle(cat Category, x, y, r float64) *Body {
	return &Body{Category: cat, Shape: ShapeCircle, X: x, Y: y, Radius: r}
}

// InWorld reports whether the body is currently part of a world.
func (b *Body) InWorld() bool {
	return b.world != nil
}

// Bounds returns the axis-aligned bounding box of the body.
func (b *Body) Bounds() (minX, minY, maxX, maxY float64) {
	if b.Shape == ShapeCircle {
		return b.X - b.Radius, b.Y - b.Radius, b.X + b.Radius, b.Y + b.Radius
	}
	return b.X - b.W/2, b.Y - b.H/2, b.X + b.W/2, b.Y + b.H/2
}

// halfHeight is the vertical extent used for resting collision.
func (b *Body) halfHeight() float64 {
	if b.Shape == ShapeCircle {
		return b.Radius
	}
	return b.H / 2
}

// Overlaps reports whether the two shapes intersect. Touching edges do not count.
func (b *Body) Overlaps(o *Body) bool {
	switch {
	case b.Shape == ShapeCircle && o.Shape == ShapeCircle:
		dx, dy := b.X-o.X, b.Y-o.Y
		r := b.Radius + o.Radius
		return dx*dx+dy*dy < r*r
	case b.Shape == ShapeCircle:
		return circleRect(b, o)
	case o.Shape == ShapeCircle:
		return circleRect(o, b)
	default:
		aMinX, aMinY, aMaxX, aMaxY := b.Bounds()
		bMinX, bMinY, bMaxX, bMaxY := o.Bounds()
		return aMinX < bMaxX && bMinX < aMaxX && aMinY < bMaxY && bMinY < aMaxY
	}
}

func circleRect(c, r *Body) bool {
	minX, minY, maxX, maxY := r.Bounds()
	nx := math.Max(minX, math.Min(c.X, maxX))
	ny := math.Max(minY, math.Min(c.Y, maxY))
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// reportsWith reports whether a contact between a and b should be emitted.
func reportsWith(a, b *Body) bool {
	return a.ContactWith.Has(b.Category) || b.ContactWith.Has(a.Category)
}
