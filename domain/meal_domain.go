package domain

import (
	"errors"

	"chefy/entities"
)

var (
	MessageSuccessGetMeals       = "success get meals"
	MessageSuccessGetMealDetail  = "success get meal detail"
	MessageSuccessSelectMeal     = "meal selected successfully"
	MessageSuccessClearSelection = "meal selection cleared"
	MessageFailedGetMeals        = "failed to get meals"
	MessageFailedGetMealDetail   = "failed to get meal detail"
	MessageFailedSelectMeal      = "failed to select meal"

	ErrMealNotFound = errors.New("meal not found")
)

type (
	MealListRequest struct {
		Locale string `query:"locale"`
		Query  string `query:"q"`
	}

	SelectMealRequest struct {
		MealID int    `json:"meal_id" validate:"required,min=1"`
		Locale string `json:"locale"`
	}

	MealResponse struct {
		ID                   int                 `json:"id"`
		Name                 string              `json:"name"`
		Time                 string              `json:"time"`
		Tags                 string              `json:"tags"`
		Price                entities.Money      `json:"price"`
		Currency             string              `json:"currency"`
		Nutrition            entities.Nutrition  `json:"nutrition"`
		Ingredients          []string            `json:"ingredients"`
		CanonicalIngredients []string            `json:"canonical_ingredients"`
		Steps                []string            `json:"steps"`
		Images               entities.MealImages `json:"images"`
		Locale               string              `json:"locale"`
		RTL                  bool                `json:"rtl"`
	}

	MealListResponse struct {
		Meals []MealResponse `json:"meals"`
		Total int            `json:"total"`
	}

	SelectionResponse struct {
		Selected *MealResponse `json:"selected"`
	}
)
