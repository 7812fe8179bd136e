package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	BaseServings = 2
	MinServings  = 1
	MaxServings  = 6
)

type Customization struct {
	Servings           int      `json:"servings"`
	RemovedIngredients []string `json:"removed_ingredients"`
}

func DefaultCustomization() Customization {
	return Customization{Servings: BaseServings, RemovedIngredients: []string{}}
}

// BoxEntry is a meal scheduled for one delivery day. Its identity is the
// (Meal.ID, DeliveryDate) pair; ID is only a handle for the presentation.
type BoxEntry struct {
	ID            uuid.UUID     `json:"id"`
	Meal          Meal          `json:"meal"`
	DeliveryDate  Day           `json:"delivery_date"`
	Customization Customization `json:"customization"`
	AddedAt       time.Time     `json:"added_at"`
}

func (e BoxEntry) Matches(mealID int, date Day) bool {
	return e.Meal.ID == mealID && e.DeliveryDate.Equal(date)
}
