package flappy

import "github.com/vovakirdan/tui-flappy/internal/physics"

// ContactKind is the outcome of classifying a contact.
type ContactKind int

const (
	ContactScore ContactKind = iota // bird crossed a score trigger
	ContactItem                     // bird touched an item
	ContactFatal                    // anything else: pipe or ground
)

// String returns the kind name.
func (k ContactKind) String() string {
	switch k {
	case ContactScore:
		return "score"
	case ContactItem:
		return "item"
	case ContactFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Classify sorts a contact into exactly one kind. Score triggers are checked
// before items, and both before the fatal fallback, so passing a gate or
// picking up an item never ends the run.
func Classify(c physics.Contact) ContactKind {
	switch {
	case c.Involves(physics.CategoryScore):
		return ContactScore
	case c.Involves(physics.CategoryItem):
		return ContactItem
	default:
		return ContactFatal
	}
}
