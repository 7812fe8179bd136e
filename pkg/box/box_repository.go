package box

import (
	"context"
	"sync"

	"chefy/entities"
)

type (
	BoxRepository interface {
		// Insert stores entry unless one already exists for its meal and
		// date; in that case the stored entry is returned with false.
		Insert(ctx context.Context, entry entities.BoxEntry) (entities.BoxEntry, bool)
		Delete(ctx context.Context, mealID int, date entities.Day) bool
		Update(ctx context.Context, mealID int, date entities.Day, fn func(*entities.BoxEntry)) (entities.BoxEntry, bool)
		Find(ctx context.Context, mealID int, date entities.Day) (entities.BoxEntry, bool)
		List(ctx context.Context) []entities.BoxEntry
	}

	boxRepository struct {
		mu      sync.RWMutex
		entries []entities.BoxEntry
	}
)

func NewBoxRepository() BoxRepository {
	return &boxRepository{}
}

func (r *boxRepository) Insert(ctx context.Context, entry entities.BoxEntry) (entities.BoxEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(entry.Meal.ID, entry.DeliveryDate); i >= 0 {
		return cloneEntry(r.entries[i]), false
	}
	r.entries = append(r.entries, cloneEntry(entry))
	return cloneEntry(entry), true
}

func (r *boxRepository) Delete(ctx context.Context, mealID int, date entities.Day) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(mealID, date)
	if i < 0 {
		return false
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return true
}

func (r *boxRepository) Update(ctx context.Context, mealID int, date entities.Day, fn func(*entities.BoxEntry)) (entities.BoxEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(mealID, date)
	if i < 0 {
		return entities.BoxEntry{}, false
	}
	fn(&r.entries[i])
	return cloneEntry(r.entries[i]), true
}

func (r *boxRepository) Find(ctx context.Context, mealID int, date entities.Day) (entities.BoxEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(mealID, date)
	if i < 0 {
		return entities.BoxEntry{}, false
	}
	return cloneEntry(r.entries[i]), true
}

func (r *boxRepository) List(ctx context.Context) []entities.BoxEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]entities.BoxEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, cloneEntry(e))
	}
	return entries
}

// indexOf must be called with mu held.
func (r *boxRepository) indexOf(mealID int, date entities.Day) int {
	for i, e := range r.entries {
		if e.Matches(mealID, date) {
			return i
		}
	}
	return -1
}

func cloneEntry(e entities.BoxEntry) entities.BoxEntry {
	e.Meal.Ingredients = append([]string(nil), e.Meal.Ingredients...)
	e.Customization.RemovedIngredients = append([]string{}, e.Customization.RemovedIngredients...)
	return e
}
