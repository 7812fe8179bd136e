package domain

import (
	"errors"

	"chefy/entities"
)

const (
	AllergyNone      = "None"
	DefaultDietary   = "Balanced"
	DefaultHousehold = "2 people"
)

var (
	DietaryOptions   = []string{"Balanced", "Vegetarian", "Vegan", "Pescatarian", "Keto", "Paleo", "Gluten-Free"}
	AllergyOptions   = []string{AllergyNone, "Dairy", "Eggs", "Fish", "Shellfish", "Tree Nuts", "Peanuts", "Wheat", "Soy"}
	HouseholdOptions = []string{"1 person", "2 people", "3 people", "4 people", "5+ people"}

	MessageSuccessGetProfile    = "success get profile"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageFailedGetProfile     = "failed to get profile"
	MessageFailedUpdateProfile  = "failed to update profile"

	ErrInvalidPreference = errors.New("invalid preference value")
)

type (
	// UpdateProfileRequest carries a partial update; nil fields are left unchanged.
	UpdateProfileRequest struct {
		Dietary       *string  `json:"dietary" validate:"omitempty,dietary"`
		Allergies     []string `json:"allergies" validate:"omitempty,dive,allergy"`
		Household     *string  `json:"household" validate:"omitempty,household"`
		Notifications *bool    `json:"notifications"`
		DarkMode      *bool    `json:"dark_mode"`
		Language      *string  `json:"language" validate:"omitempty,locale"`
	}

	ProfileOptions struct {
		Dietary   []string `json:"dietary"`
		Allergies []string `json:"allergies"`
		Household []string `json:"household"`
		Languages []string `json:"languages"`
	}

	ProfileResponse struct {
		Preferences      entities.Preferences `json:"preferences"`
		AllergiesSummary string               `json:"allergies_summary"`
		RTL              bool                 `json:"rtl"`
		Options          ProfileOptions       `json:"options"`
	}
)
