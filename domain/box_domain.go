package domain

import (
	"errors"

	"chefy/entities"
	"github.com/google/uuid"
)

var (
	MessageSuccessGetBox              = "success get box"
	MessageSuccessAddToBox            = "meal added to box"
	MessageSuccessRemoveFromBox       = "meal removed from box"
	MessageSuccessUpdateCustomization = "customization saved"
	MessageSuccessNutritionPreview    = "success preview nutrition"

	MessageFailedGetBox              = "failed to get box"
	MessageFailedAddToBox            = "failed to add meal to box"
	MessageFailedRemoveFromBox       = "failed to remove meal from box"
	MessageFailedUpdateCustomization = "failed to save customization"
	MessageFailedNutritionPreview    = "failed to preview nutrition"

	ErrBoxEntryNotFound = errors.New("box entry not found")
	ErrNoMealSelected   = errors.New("no meal selected")
)

type (
	AddToBoxRequest struct {
		MealID       int    `json:"meal_id" validate:"required,min=1"`
		DeliveryDate string `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
	}

	// CustomizationRequest replaces an entry's customization wholesale.
	// A missing servings value means the base serving count.
	CustomizationRequest struct {
		Servings           *int     `json:"servings"`
		RemovedIngredients []string `json:"removed_ingredients" validate:"omitempty,dive,required"`
	}

	BoxQueryRequest struct {
		Date   string `query:"date" validate:"omitempty,datetime=2006-01-02"`
		Locale string `query:"locale"`
	}

	BoxEntryResponse struct {
		ID            uuid.UUID              `json:"id"`
		MealID        int                    `json:"meal_id"`
		Name          string                 `json:"name"`
		DeliveryDate  entities.Day           `json:"delivery_date"`
		DateLabel     string                 `json:"date_label"`
		Price         entities.Money         `json:"price"`
		Currency      string                 `json:"currency"`
		Customization entities.Customization `json:"customization"`
		Customized    bool                   `json:"customized"`
		BaseNutrition entities.Nutrition     `json:"base_nutrition"`
		Nutrition     entities.Nutrition     `json:"nutrition"`
		Images        entities.MealImages    `json:"images"`
	}

	BoxDayResponse struct {
		Date      entities.Day       `json:"date"`
		DateLabel string             `json:"date_label"`
		Entries   []BoxEntryResponse `json:"entries"`
		Count     int                `json:"count"`
		Total     entities.Money     `json:"total"`
		Currency  string             `json:"currency"`
	}

	BoxSummaryResponse struct {
		Count    int            `json:"count"`
		Total    entities.Money `json:"total"`
		Currency string         `json:"currency"`
	}

	AddToBoxResponse struct {
		Added bool             `json:"added"`
		Entry BoxEntryResponse `json:"entry"`
	}

	RemoveFromBoxResponse struct {
		Removed bool `json:"removed"`
	}

	UpdateCustomizationResponse struct {
		Updated bool              `json:"updated"`
		Entry   *BoxEntryResponse `json:"entry,omitempty"`
	}

	NutritionPreviewResponse struct {
		Customization entities.Customization `json:"customization"`
		Customized    bool                   `json:"customized"`
		BaseNutrition entities.Nutrition     `json:"base_nutrition"`
		Nutrition     entities.Nutrition     `json:"nutrition"`
	}
)
