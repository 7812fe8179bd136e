package domain

import (
	"chefy/entities"
)

const (
	DefaultHorizonDays        = 14
	DefaultDeliveryOffsetDays = 2
)

var (
	MessageSuccessGetDelivery = "success get delivery dates"
	MessageSuccessSetDelivery = "delivery date updated"
	MessageSuccessGetCalendar = "success get calendar"
	MessageFailedGetDelivery  = "failed to get delivery dates"
	MessageFailedSetDelivery  = "failed to update delivery date"
	MessageFailedGetCalendar  = "failed to get calendar"
)

type (
	DeliveryQueryRequest struct {
		Days   int    `query:"days" validate:"omitempty,min=1,max=90"`
		Locale string `query:"locale"`
	}

	SetDeliveryDateRequest struct {
		Date string `json:"date" validate:"required,datetime=2006-01-02"`
	}

	CalendarRequest struct {
		Year   int    `query:"year" validate:"omitempty,min=1970,max=9999"`
		Month  int    `query:"month" validate:"omitempty,min=1,max=12"`
		Locale string `query:"locale"`
	}

	DeliveryDayResponse struct {
		Date         entities.Day `json:"date"`
		Weekday      string       `json:"weekday"`
		DayOfMonth   int          `json:"day_of_month"`
		Month        string       `json:"month"`
		Label        string       `json:"label"`
		IsToday      bool         `json:"is_today"`
		IsSelected   bool         `json:"is_selected"`
		FirstOfMonth bool         `json:"first_of_month"`
		EntryCount   int          `json:"entry_count"`
	}

	DeliveryResponse struct {
		Today         entities.Day          `json:"today"`
		Selected      entities.Day          `json:"selected"`
		SelectedLabel string                `json:"selected_label"`
		Horizon       []DeliveryDayResponse `json:"horizon"`
	}

	SetDeliveryDateResponse struct {
		Accepted bool         `json:"accepted"`
		Selected entities.Day `json:"selected"`
	}

	CalendarCellResponse struct {
		Date       entities.Day `json:"date"`
		Blank      bool         `json:"blank"`
		IsToday    bool         `json:"is_today"`
		IsSelected bool         `json:"is_selected"`
		IsPast     bool         `json:"is_past"`
	}

	CalendarResponse struct {
		Year      int                    `json:"year"`
		Month     int                    `json:"month"`
		MonthName string                 `json:"month_name"`
		Cells     []CalendarCellResponse `json:"cells"`
	}
)
