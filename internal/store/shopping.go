package store

import (
	"fitnutri/internal/events"
	"fitnutri/internal/models"
)

// AddToShoppingList appends the given items verbatim. Identical ingredients
// from different recipes are not merged; each stays its own entry.
func (s *Store) AddToShoppingList(items []models.ShoppingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shopping = append(s.shopping, items...)
	s.persistShoppingLocked()
	s.publisher.Publish(events.EventShoppingChanged, map[string]int{"count": len(s.shopping)})
}

// RemoveFromShoppingList drops every item that came from the given recipe.
func (s *Store) RemoveFromShoppingList(recipeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.shopping[:0]
	for _, item := range s.shopping {
		if item.RecipeID != recipeID {
			kept = append(kept, item)
		}
	}
	s.shopping = kept
	s.persistShoppingLocked()
	s.publisher.Publish(events.EventShoppingChanged, map[string]int{"count": len(s.shopping)})
}

// ToggleShoppingItem flips the checked flag of the item at the given position
// in insertion order. The caller resolves a stable index; display-side
// filtering or grouping never changes the underlying order. Returns false
// when the index is out of range.
func (s *Store) ToggleShoppingItem(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.shopping) {
		return false
	}
	s.shopping[index].Checked = !s.shopping[index].Checked
	s.persistShoppingLocked()
	return true
}

// ClearShoppingList empties the list unconditionally.
func (s *Store) ClearShoppingList() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shopping = []models.ShoppingItem{}
	s.persistShoppingLocked()
	s.publisher.Publish(events.EventShoppingChanged, map[string]int{"count": 0})
}

// ShoppingList returns the list in insertion order.
func (s *Store) ShoppingList() []models.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.ShoppingItem, len(s.shopping))
	copy(items, s.shopping)
	return items
}
