package domain

import (
	"errors"

	"chefy/entities"
)

const (
	CookTimerSeconds = 240
)

var (
	MessageSuccessGetCookState = "success get cook state"
	MessageSuccessStartCooking = "cooking started"
	MessageSuccessCookStep     = "cook step updated"
	MessageSuccessCookTimer    = "cook timer updated"
	MessageSuccessExitCooking  = "cook mode exited"
	MessageFailedGetCookState  = "failed to get cook state"
	MessageFailedStartCooking  = "failed to start cooking"
	MessageFailedCookStep      = "failed to update cook step"
	MessageFailedCookTimer     = "failed to update cook timer"
	MessageFailedExitCooking   = "failed to exit cook mode"

	ErrNotCooking = errors.New("no meal is being cooked")
)

type (
	StartCookingRequest struct {
		MealID       int    `json:"meal_id" validate:"required,min=1"`
		DeliveryDate string `json:"delivery_date" validate:"required,datetime=2006-01-02"`
		Locale       string `json:"locale"`
	}

	CookStateResponse struct {
		State         string        `json:"state"`
		SessionID     string        `json:"session_id,omitempty"`
		MealID        int           `json:"meal_id,omitempty"`
		DeliveryDate  *entities.Day `json:"delivery_date,omitempty"`
		Step          int           `json:"step"`
		StepCount     int           `json:"step_count"`
		StepText      string        `json:"step_text,omitempty"`
		TimeRemaining int           `json:"time_remaining"`
		TimeLabel     string        `json:"time_label"`
		Running       bool          `json:"running"`
		Progress      float64       `json:"progress"`
		Finished      bool          `json:"finished"`
	}
)
