// Package session holds the state of one user's app session: the meal open
// in the detail view, the box, the delivery date, cook mode and profile.
// Presentation code receives a *Store and mutates state only through it.
package session

import (
	"context"
	"fmt"
	"sync"

	"chefy/domain"
	"chefy/entities"
	"chefy/pkg/box"
	"chefy/pkg/catalog"
	"chefy/pkg/cook"
	"chefy/pkg/customization"
	"chefy/pkg/delivery"
	"chefy/pkg/profile"
)

type (
	Deps struct {
		Catalog  catalog.CatalogService
		Box      box.BoxService
		Delivery delivery.DeliveryService
		Cook     *cook.Machine
		Profile  profile.ProfileService
	}

	Store struct {
		catalog  catalog.CatalogService
		box      box.BoxService
		delivery delivery.DeliveryService
		cook     *cook.Machine
		profile  profile.ProfileService

		mu       sync.RWMutex
		selected *entities.Meal
	}
)

func NewStore(deps Deps) *Store {
	return &Store{
		catalog:  deps.Catalog,
		box:      deps.Box,
		delivery: deps.Delivery,
		cook:     deps.Cook,
		profile:  deps.Profile,
	}
}

func (s *Store) Catalog() catalog.CatalogService   { return s.catalog }
func (s *Store) Delivery() delivery.DeliveryService { return s.delivery }
func (s *Store) Profile() profile.ProfileService    { return s.profile }

// Locale is the requested locale, or the profile language when empty.
func (s *Store) Locale(ctx context.Context, requested string) string {
	if domain.IsSupportedLocale(requested) {
		return requested
	}
	return s.profile.Preferences(ctx).Language
}

func (s *Store) SelectMeal(ctx context.Context, mealID int) (entities.Meal, error) {
	meal, err := s.catalog.MealByID(ctx, mealID)
	if err != nil {
		return entities.Meal{}, err
	}
	s.mu.Lock()
	s.selected = &meal
	s.mu.Unlock()
	return meal, nil
}

func (s *Store) Selected() (entities.Meal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return entities.Meal{}, false
	}
	return *s.selected, true
}

func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

func (s *Store) AddToBox(ctx context.Context, mealID int, date entities.Day) (entities.BoxEntry, bool, error) {
	if date.IsZero() {
		return entities.BoxEntry{}, false, domain.ErrInvalidDay
	}
	meal, err := s.catalog.MealByID(ctx, mealID)
	if err != nil {
		return entities.BoxEntry{}, false, err
	}
	entry, added := s.box.Add(ctx, meal, date)
	return entry, added, nil
}

// AddSelectedToBox schedules the open meal for the active delivery date and
// closes the detail view.
func (s *Store) AddSelectedToBox(ctx context.Context) (entities.BoxEntry, bool, error) {
	s.mu.Lock()
	selected := s.selected
	s.selected = nil
	s.mu.Unlock()

	if selected == nil {
		return entities.BoxEntry{}, false, domain.ErrNoMealSelected
	}
	entry, added := s.box.Add(ctx, *selected, s.delivery.Selected())
	return entry, added, nil
}

func (s *Store) RemoveFromBox(ctx context.Context, mealID int, date entities.Day) bool {
	return s.box.Remove(ctx, mealID, date)
}

func (s *Store) UpdateCustomization(ctx context.Context, mealID int, date entities.Day, c entities.Customization) (entities.BoxEntry, bool) {
	return s.box.UpdateCustomization(ctx, mealID, date, c)
}

func (s *Store) Entry(ctx context.Context, mealID int, date entities.Day) (entities.BoxEntry, error) {
	entry, ok := s.box.Get(ctx, mealID, date)
	if !ok {
		return entities.BoxEntry{}, fmt.Errorf("meal %d on %s: %w", mealID, date, domain.ErrBoxEntryNotFound)
	}
	return entry, nil
}

func (s *Store) SetDeliveryDate(day entities.Day) bool {
	return s.delivery.Select(day)
}

func (s *Store) SelectedDate() entities.Day {
	return s.delivery.Selected()
}

func (s *Store) EntriesForDate(ctx context.Context, date entities.Day) []entities.BoxEntry {
	return s.box.EntriesForDate(ctx, date)
}

func (s *Store) AllEntries(ctx context.Context) []entities.BoxEntry {
	return s.box.All(ctx)
}

func (s *Store) TotalPrice(entries []entities.BoxEntry) entities.Money {
	return box.TotalPrice(entries)
}

func (s *Store) Count(entries []entities.BoxEntry) int {
	return box.Count(entries)
}

func (s *Store) AdjustedNutrition(meal entities.Meal, c entities.Customization) entities.Nutrition {
	return customization.AdjustedNutritionFor(meal, c)
}

func (s *Store) Horizon(start entities.Day, days int) []entities.Day {
	return s.delivery.Horizon(start, days)
}

// StartCooking opens cook mode for a scheduled entry, with recipe steps in
// locale.
func (s *Store) StartCooking(ctx context.Context, mealID int, date entities.Day, locale string) (cook.Snapshot, error) {
	entry, err := s.Entry(ctx, mealID, date)
	if err != nil {
		return cook.Snapshot{}, err
	}
	content := s.catalog.Content(ctx, mealID, s.Locale(ctx, locale))
	return s.cook.Start(entry, content.Steps), nil
}

// StepText returns the current step in locale, which may differ from the
// locale cooking started in.
func (s *Store) StepText(ctx context.Context, snap cook.Snapshot, locale string) string {
	if snap.State != cook.Cooking {
		return ""
	}
	steps := s.catalog.Content(ctx, snap.MealID, s.Locale(ctx, locale)).Steps
	if snap.Step < len(steps) {
		return steps[snap.Step]
	}
	return snap.StepText
}

func (s *Store) CookState() cook.Snapshot               { return s.cook.Snapshot() }
func (s *Store) NextStep() (cook.Snapshot, bool, error) { return s.cook.Next() }
func (s *Store) PrevStep() (cook.Snapshot, error)       { return s.cook.Prev() }
func (s *Store) ToggleTimer() (cook.Snapshot, error)    { return s.cook.ToggleTimer() }
func (s *Store) ResetTimer() (cook.Snapshot, error)     { return s.cook.ResetTimer() }
func (s *Store) ExitCooking() bool                      { return s.cook.Exit() }

func (s *Store) OnCookTransition(fn func(from, to cook.State)) {
	s.cook.OnTransition(fn)
}

// Close stops background work owned by the session.
func (s *Store) Close() {
	s.cook.Close()
}
