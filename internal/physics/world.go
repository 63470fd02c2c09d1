package physics

// Contact is a begin-contact event between two bodies.
type Contact struct {
	A, B *Body
}

// Involves reports whether either body has the given category.
func (c Contact) Involves(cat Category) bool {
	return c.A.Category == cat || c.B.Category == cat
}

// Body returns the body with the given category, preferring A, or nil.
func (c Contact) Body(cat Category) *Body {
	if c.A.Category == cat {
		return c.A
	}
	if c.B.Category == cat {
		return c.B
	}
	return nil
}

type pairKey [2]uint64

func keyOf(a, b *Body) pairKey {
	if a.id < b.id {
		return pairKey{a.id, b.id}
	}
	return pairKey{b.id, a.id}
}

// World integrates dynamic bodies and reports contacts.
type World struct {
	Gravity float64 // vertical acceleration, negative pulls down

	// OnContact is called for each begin contact during Step, before
	// overlapping bodies are pushed apart. Handlers may change collision sets.
	OnContact func(Contact)

	bodies   []*Body
	touching map[pairKey]struct{}
	nextID   uint64
}

// NewWorld creates an empty world with the given gravity.
func NewWorld(gravity float64) *World {
	return &World{
		Gravity:  gravity,
		touching: make(map[pairKey]struct{}),
	}
}

// Add inserts a body and returns it. Adding a body twice is a no-op.
func (w *World) Add(b *Body) *Body {
	if b.world == w {
		return b
	}
	w.nextID++
	b.id = w.nextID
	b.world = w
	w.bodies = append(w.bodies, b)
	return b
}

// Remove deletes a body and forgets its contacts.
func (w *World) Remove(b *Body) {
	if b.world != w {
		return
	}
	for i, o := range w.bodies {
		if o == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	for k := range w.touching {
		if k[0] == b.id || k[1] == b.id {
			delete(w.touching, k)
		}
	}
	b.world = nil
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Step advances dynamic bodies by dt seconds, reports the contacts that began
// during this step, then resolves collisions. Static bodies are only moved by
// their owners.
func (w *World) Step(dt float64) []Contact {
	for _, b := range w.bodies {
		if !b.Dynamic {
			continue
		}
		b.VY += w.Gravity * dt
		b.X += b.VX * dt
		b.Y += b.VY * dt
	}

	contacts := w.detect()
	if w.OnContact != nil {
		for _, c := range contacts {
			w.OnContact(c)
		}
	}
	w.resolve()
	return contacts
}

// detect finds overlapping pairs and emits the ones that were not touching
// in the previous step.
func (w *World) detect() []Contact {
	var contacts []Contact
	current := make(map[pairKey]struct{}, len(w.touching))

	for i, a := range w.bodies {
		for _, b := range w.bodies[i+1:] {
			if !a.Dynamic && !b.Dynamic {
				continue
			}
			if !reportsWith(a, b) || !a.Overlaps(b) {
				continue
			}
			k := keyOf(a, b)
			current[k] = struct{}{}
			if _, was := w.touching[k]; !was {
				contacts = append(contacts, Contact{A: a, B: b})
			}
		}
	}

	w.touching = current
	return contacts
}

// resolve pushes dynamic bodies out of static bodies they collide with,
// vertically, and cancels the velocity component that drove them in.
func (w *World) resolve() {
	for _, d := range w.bodies {
		if !d.Dynamic || d.CollideWith == 0 {
			continue
		}
		for _, s := range w.bodies {
			if s.Dynamic || !d.CollideWith.Has(s.Category) || !d.Overlaps(s) {
				continue
			}
			_, sMinY, _, sMaxY := s.Bounds()
			if d.Y >= s.Y {
				d.Y = sMaxY + d.halfHeight()
				if d.VY < 0 {
					d.VY = 0
				}
			} else {
				d.Y = sMinY - d.halfHeight()
				if d.VY > 0 {
					d.VY = 0
				}
			}
		}
	}
}
