package box

import (
	"context"
	"time"

	"chefy/entities"
	"chefy/pkg/customization"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	BoxService interface {
		Add(ctx context.Context, meal entities.Meal, date entities.Day) (entities.BoxEntry, bool)
		Remove(ctx context.Context, mealID int, date entities.Day) bool
		UpdateCustomization(ctx context.Context, mealID int, date entities.Day, c entities.Customization) (entities.BoxEntry, bool)
		Get(ctx context.Context, mealID int, date entities.Day) (entities.BoxEntry, bool)
		EntriesForDate(ctx context.Context, date entities.Day) []entities.BoxEntry
		All(ctx context.Context) []entities.BoxEntry
	}

	boxService struct {
		boxRepository BoxRepository
		now           func() time.Time
	}
)

func NewBoxService(boxRepository BoxRepository, now func() time.Time) BoxService {
	if now == nil {
		now = time.Now
	}
	return &boxService{
		boxRepository: boxRepository,
		now:           now,
	}
}

// Add schedules meal for date with the default customization. Adding a meal
// that is already scheduled for date changes nothing and reports false.
func (s *boxService) Add(ctx context.Context, meal entities.Meal, date entities.Day) (entities.BoxEntry, bool) {
	entry := entities.BoxEntry{
		ID:            uuid.New(),
		Meal:          meal,
		DeliveryDate:  date,
		Customization: entities.DefaultCustomization(),
		AddedAt:       s.now(),
	}
	stored, added := s.boxRepository.Insert(ctx, entry)
	if added {
		log.Debugw("box entry added", "meal_id", meal.ID, "date", date.String())
	}
	return stored, added
}

func (s *boxService) Remove(ctx context.Context, mealID int, date entities.Day) bool {
	removed := s.boxRepository.Delete(ctx, mealID, date)
	if removed {
		log.Debugw("box entry removed", "meal_id", mealID, "date", date.String())
	}
	return removed
}

// UpdateCustomization replaces the entry's customization wholesale. A missing
// entry is left alone and reported with false.
func (s *boxService) UpdateCustomization(ctx context.Context, mealID int, date entities.Day, c entities.Customization) (entities.BoxEntry, bool) {
	return s.boxRepository.Update(ctx, mealID, date, func(e *entities.BoxEntry) {
		e.Customization = customization.Sanitize(c, e.Meal.Ingredients)
	})
}

func (s *boxService) Get(ctx context.Context, mealID int, date entities.Day) (entities.BoxEntry, bool) {
	return s.boxRepository.Find(ctx, mealID, date)
}

func (s *boxService) EntriesForDate(ctx context.Context, date entities.Day) []entities.BoxEntry {
	all := s.boxRepository.List(ctx)
	entries := make([]entities.BoxEntry, 0, len(all))
	for _, e := range all {
		if e.DeliveryDate.Equal(date) {
			entries = append(entries, e)
		}
	}
	return entries
}

func (s *boxService) All(ctx context.Context) []entities.BoxEntry {
	return s.boxRepository.List(ctx)
}

// TotalPrice sums catalog prices. Customization does not affect price.
func TotalPrice(entries []entities.BoxEntry) entities.Money {
	var total entities.Money
	for _, e := range entries {
		total += e.Meal.Price
	}
	return total
}

func Count(entries []entities.BoxEntry) int {
	return len(entries)
}
