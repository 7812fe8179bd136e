package handlers

import (
	"time"

	"chefy/domain"
	"chefy/entities"
	"chefy/internal/api/presenters"
	"chefy/pkg/delivery"
	"chefy/pkg/session"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DeliveryHandler interface {
		GetDelivery(c *fiber.Ctx) error
		SetDeliveryDate(c *fiber.Ctx) error
		GetCalendar(c *fiber.Ctx) error
	}

	deliveryHandler struct {
		store     *session.Store
		validator *validator.Validate
	}
)

func NewDeliveryHandler(store *session.Store, validator *validator.Validate) DeliveryHandler {
	return &deliveryHandler{
		store:     store,
		validator: validator,
	}
}

// GetDelivery returns the date strip starting today, with the number of
// scheduled meals per day.
func (h *deliveryHandler) GetDelivery(c *fiber.Ctx) error {
	req := new(domain.DeliveryQueryRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDelivery, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDelivery, err)
	}

	ctx := c.Context()
	locale := h.store.Locale(ctx, req.Locale)
	selector := h.store.Delivery()

	counts := make(map[entities.Day]int)
	for _, e := range h.store.AllEntries(ctx) {
		counts[e.DeliveryDate]++
	}

	today := selector.Today()
	selected := selector.Selected()
	days := h.store.Horizon(today, req.Days)

	res := domain.DeliveryResponse{
		Today:         today,
		Selected:      selected,
		SelectedLabel: delivery.DayLabel(selected, locale),
		Horizon:       make([]domain.DeliveryDayResponse, 0, len(days)),
	}
	for _, d := range days {
		res.Horizon = append(res.Horizon, domain.DeliveryDayResponse{
			Date:         d,
			Weekday:      delivery.WeekdayName(d.Weekday(), locale),
			DayOfMonth:   d.Date(),
			Month:        delivery.MonthShortName(d.Month(), locale),
			Label:        delivery.DayLabel(d, locale),
			IsToday:      selector.IsToday(d),
			IsSelected:   d.Equal(selected),
			FirstOfMonth: d.Date() == 1,
			EntryCount:   counts[d],
		})
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDelivery)
}

// SetDeliveryDate reports a past date as not accepted rather than failing.
func (h *deliveryHandler) SetDeliveryDate(c *fiber.Ctx) error {
	req := new(domain.SetDeliveryDateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetDelivery, err)
	}

	day, err := entities.ParseDay(req.Date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetDelivery, domain.ErrInvalidDay)
	}

	accepted := h.store.SetDeliveryDate(day)
	return presenters.SuccessResponse(c, domain.SetDeliveryDateResponse{
		Accepted: accepted,
		Selected: h.store.SelectedDate(),
	}, fiber.StatusOK, domain.MessageSuccessSetDelivery)
}

// GetCalendar defaults to the month of the active delivery date.
func (h *deliveryHandler) GetCalendar(c *fiber.Ctx) error {
	req := new(domain.CalendarRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCalendar, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCalendar, err)
	}

	selected := h.store.SelectedDate()
	year, month := selected.Year(), selected.Month()
	if req.Year != 0 {
		year = req.Year
	}
	if req.Month != 0 {
		month = time.Month(req.Month)
	}

	ctx := c.Context()
	cells := h.store.Delivery().MonthGrid(year, month)
	res := domain.CalendarResponse{
		Year:      year,
		Month:     int(month),
		MonthName: delivery.MonthName(month, h.store.Locale(ctx, req.Locale)),
		Cells:     make([]domain.CalendarCellResponse, 0, len(cells)),
	}
	for _, cell := range cells {
		res.Cells = append(res.Cells, domain.CalendarCellResponse{
			Date:       cell.Day,
			Blank:      cell.Blank,
			IsToday:    cell.Today,
			IsSelected: cell.Selected,
			IsPast:     cell.Past,
		})
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCalendar)
}
