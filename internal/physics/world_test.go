package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySet(t *testing.T) {
	s := NewCategorySet(CategoryWorld, CategoryPipe)

	assert.True(t, s.Has(CategoryWorld))
	assert.True(t, s.Has(CategoryPipe))
	assert.False(t, s.Has(CategoryBird))
	assert.False(t, s.Has(CategoryScore))
	assert.Equal(t, "{world,pipe}", s.String())

	s = s.With(CategoryItem)
	assert.True(t, s.Has(CategoryItem))
	assert.Equal(t, "{}", CategorySet(0).String())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Body
		expected bool
	}{
		{"rects overlapping", NewRect(CategoryPipe, 0, 0, 4, 4), NewRect(CategoryPipe, 3, 3, 4, 4), true},
		{"rects touching edges", NewRect(CategoryPipe, 0, 0, 4, 4), NewRect(CategoryPipe, 4, 0, 4, 4), false},
		{"circles overlapping", NewCircle(CategoryBird, 0, 0, 1), NewCircle(CategoryItem, 1.5, 0, 1), true},
		{"circles apart", NewCircle(CategoryBird, 0, 0, 1), NewCircle(CategoryItem, 2.5, 0, 1), false},
		{"circle inside rect", NewCircle(CategoryBird, 0, 0, 1), NewRect(CategoryPipe, 0, 0, 10, 10), true},
		{"circle near rect corner", NewCircle(CategoryBird, 0, 0, 1), NewRect(CategoryPipe, 2, 2, 2, 2), false},
		{"circle dipping into rect side", NewCircle(CategoryBird, 0, 1.4, 1), NewRect(CategoryWorld, 0, 0, 10, 1), true},
		{"circle resting on rect side", NewCircle(CategoryBird, 0, 1.5, 1), NewRect(CategoryWorld, 0, 0, 10, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.expected, tc.b.Overlaps(tc.a), "overlap should be symmetric")
		})
	}
}

func TestWorldGravity(t *testing.T) {
	w := NewWorld(-10)
	b := w.Add(NewCircle(CategoryBird, 0, 100, 1))
	b.Dynamic = true

	w.Step(1)

	assert.InDelta(t, -10, b.VY, 1e-9)
	assert.InDelta(t, 90, b.Y, 1e-9)

	static := w.Add(NewRect(CategoryPipe, 50, 50, 2, 2))
	w.Step(1)
	assert.Equal(t, 50.0, static.Y, "static bodies are not integrated")
}

func TestWorldBeginContactOnce(t *testing.T) {
	w := NewWorld(0)
	bird := w.Add(NewCircle(CategoryBird, 0, 0, 1))
	bird.Dynamic = true
	trigger := w.Add(NewRect(CategoryScore, 5, 0, 2, 10))
	trigger.ContactWith = NewCategorySet(CategoryBird)

	contacts := w.Step(0.1)
	assert.Empty(t, contacts)

	trigger.X = 1
	contacts = w.Step(0.1)
	require.Len(t, contacts, 1)
	assert.True(t, contacts[0].Involves(CategoryScore))
	assert.Same(t, trigger, contacts[0].Body(CategoryScore))
	assert.Same(t, bird, contacts[0].Body(CategoryBird))

	// Still overlapping: no new event
	contacts = w.Step(0.1)
	assert.Empty(t, contacts)

	// Separate and touch again: a fresh event
	trigger.X = 10
	assert.Empty(t, w.Step(0.1))
	trigger.X = 0
	assert.Len(t, w.Step(0.1), 1)
}

func TestWorldContactMaskFilters(t *testing.T) {
	w := NewWorld(0)
	bird := w.Add(NewCircle(CategoryBird, 0, 0, 1))
	bird.Dynamic = true
	bird.ContactWith = NewCategorySet(CategoryPipe)

	// Neither side asks for bird/item contacts
	w.Add(NewCircle(CategoryItem, 0, 0, 1))
	assert.Empty(t, w.Step(0.1))

	w.Add(NewRect(CategoryPipe, 0, 0, 2, 2))
	contacts := w.Step(0.1)
	require.Len(t, contacts, 1)
	assert.True(t, contacts[0].Involves(CategoryPipe))

	// Static pairs never report
	a := w.Add(NewRect(CategoryPipe, 20, 0, 2, 2))
	b := w.Add(NewRect(CategoryScore, 20, 0, 2, 2))
	b.ContactWith = NewCategorySet(CategoryPipe)
	for _, c := range w.Step(0.1) {
		assert.False(t, c.A == a || c.B == a, "static pair should not report")
	}
}

func TestWorldRestsOnCollisionCategory(t *testing.T) {
	w := NewWorld(-50)
	ground := w.Add(NewRect(CategoryWorld, 0, 1, 100, 2))
	bird := w.Add(NewCircle(CategoryBird, 0, 3, 1))
	bird.Dynamic = true
	bird.CollideWith = NewCategorySet(CategoryWorld)
	bird.ContactWith = NewCategorySet(CategoryWorld)

	var begins int
	for i := 0; i < 120; i++ {
		begins += len(w.Step(1.0 / 60.0))
	}

	_, _, _, groundTop := ground.Bounds()
	assert.InDelta(t, groundTop+bird.Radius, bird.Y, 1.0, "bird should rest on the ground")
	assert.LessOrEqual(t, bird.VY, 0.0)
	assert.Equal(t, 1, begins, "resting contact is reported once")
}

func TestWorldIgnoresCategoriesOutsideCollisionSet(t *testing.T) {
	w := NewWorld(0)
	pipe := w.Add(NewRect(CategoryPipe, 0, 0, 4, 4))
	bird := w.Add(NewCircle(CategoryBird, 0, 1, 1))
	bird.Dynamic = true
	bird.CollideWith = NewCategorySet(CategoryWorld)

	w.Step(0.1)
	assert.True(t, bird.Overlaps(pipe), "bird should pass through pipes outside its collision set")
}

func TestWorldRemove(t *testing.T) {
	w := NewWorld(0)
	bird := w.Add(NewCircle(CategoryBird, 0, 0, 1))
	bird.Dynamic = true
	item := w.Add(NewCircle(CategoryItem, 0, 0, 1))
	item.ContactWith = NewCategorySet(CategoryBird)

	require.Len(t, w.Step(0.1), 1)
	w.Remove(item)
	assert.False(t, item.InWorld())
	assert.Equal(t, 1, w.Len())

	// Re-adding reports a fresh contact since the old pair was forgotten
	w.Add(item)
	assert.Len(t, w.Step(0.1), 1)
}

func TestWorldContactHandlerRunsBeforeResolve(t *testing.T) {
	newScene := func() (*World, *Body) {
		w := NewWorld(0)
		w.Add(NewRect(CategoryPipe, 10, 5, 4, 10))
		bird := w.Add(NewCircle(CategoryBird, 6.5, 4, 1))
		bird.Dynamic = true
		bird.VX = 10
		bird.ContactWith = NewCategorySet(CategoryPipe)
		bird.CollideWith = NewCategorySet(CategoryPipe)
		return w, bird
	}

	// Without a handler the side hit is pushed out vertically.
	w, bird := newScene()
	require.Len(t, w.Step(0.1), 1)
	assert.NotEqual(t, 4.0, bird.Y)

	// A handler that drops the pipe from the collision set sees the contact
	// first, so the bird keeps its height.
	w, bird = newScene()
	var seen []Contact
	w.OnContact = func(c Contact) {
		seen = append(seen, c)
		c.Body(CategoryBird).CollideWith = NewCategorySet(CategoryWorld)
	}
	contacts := w.Step(0.1)
	require.Len(t, seen, 1)
	assert.Equal(t, contacts, seen)
	assert.Equal(t, 4.0, bird.Y)
	assert.InDelta(t, 7.5, bird.X, 1e-9)
}
