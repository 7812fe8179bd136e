package handlers

import (
	"chefy/domain"
	"chefy/entities"
	"chefy/internal/api/presenters"
	"chefy/pkg/customization"
	"chefy/pkg/delivery"
	"chefy/pkg/session"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BoxHandler interface {
		GetBox(c *fiber.Ctx) error
		GetSummary(c *fiber.Ctx) error
		AddToBox(c *fiber.Ctx) error
		RemoveFromBox(c *fiber.Ctx) error
		UpdateCustomization(c *fiber.Ctx) error
		PreviewNutrition(c *fiber.Ctx) error
	}

	boxHandler struct {
		store     *session.Store
		validator *validator.Validate
	}
)

func NewBoxHandler(store *session.Store, validator *validator.Validate) BoxHandler {
	return &boxHandler{
		store:     store,
		validator: validator,
	}
}

// GetBox lists the entries for one delivery date, the active one by default.
func (h *boxHandler) GetBox(c *fiber.Ctx) error {
	req := new(domain.BoxQueryRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBox, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBox, err)
	}

	date := h.store.SelectedDate()
	if req.Date != "" {
		parsed, err := entities.ParseDay(req.Date)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBox, domain.ErrInvalidDay)
		}
		date = parsed
	}

	ctx := c.Context()
	locale := h.store.Locale(ctx, req.Locale)
	entries := h.store.EntriesForDate(ctx, date)

	res := domain.BoxDayResponse{
		Date:      date,
		DateLabel: delivery.DayLabel(date, locale),
		Entries:   make([]domain.BoxEntryResponse, 0, len(entries)),
		Count:     h.store.Count(entries),
		Total:     h.store.TotalPrice(entries),
		Currency:  domain.CurrencyCode,
	}
	for _, e := range entries {
		res.Entries = append(res.Entries, toBoxEntryResponse(ctx, h.store, e, locale))
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBox)
}

// GetSummary covers every scheduled entry regardless of date.
func (h *boxHandler) GetSummary(c *fiber.Ctx) error {
	entries := h.store.AllEntries(c.Context())
	return presenters.SuccessResponse(c, domain.BoxSummaryResponse{
		Count:    h.store.Count(entries),
		Total:    h.store.TotalPrice(entries),
		Currency: domain.CurrencyCode,
	}, fiber.StatusOK, domain.MessageSuccessGetBox)
}

func (h *boxHandler) AddToBox(c *fiber.Ctx) error {
	req := new(domain.AddToBoxRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToBox, err)
	}

	date := h.store.SelectedDate()
	if req.DeliveryDate != "" {
		parsed, err := entities.ParseDay(req.DeliveryDate)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToBox, domain.ErrInvalidDay)
		}
		date = parsed
	}

	ctx := c.Context()
	entry, added, err := h.store.AddToBox(ctx, req.MealID, date)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddToBox, err)
	}

	status := fiber.StatusOK
	if added {
		status = fiber.StatusCreated
	}
	return presenters.SuccessResponse(c, domain.AddToBoxResponse{
		Added: added,
		Entry: toBoxEntryResponse(ctx, h.store, entry, h.store.Locale(ctx, c.Query("locale"))),
	}, status, domain.MessageSuccessAddToBox)
}

func (h *boxHandler) RemoveFromBox(c *fiber.Ctx) error {
	mealID, date, err := entryKey(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFromBox, err)
	}

	removed := h.store.RemoveFromBox(c.Context(), mealID, date)
	return presenters.SuccessResponse(c, domain.RemoveFromBoxResponse{Removed: removed}, fiber.StatusOK, domain.MessageSuccessRemoveFromBox)
}

func (h *boxHandler) UpdateCustomization(c *fiber.Ctx) error {
	mealID, date, err := entryKey(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCustomization, err)
	}

	req := new(domain.CustomizationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCustomization, err)
	}

	ctx := c.Context()
	res := domain.UpdateCustomizationResponse{}
	entry, updated := h.store.UpdateCustomization(ctx, mealID, date, toCustomization(*req))
	if updated {
		e := toBoxEntryResponse(ctx, h.store, entry, h.store.Locale(ctx, c.Query("locale")))
		res.Updated = true
		res.Entry = &e
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCustomization)
}

// PreviewNutrition computes nutrition for an unsaved customization of an
// existing entry.
func (h *boxHandler) PreviewNutrition(c *fiber.Ctx) error {
	mealID, date, err := entryKey(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNutritionPreview, err)
	}

	req := new(domain.CustomizationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNutritionPreview, err)
	}

	entry, err := h.store.Entry(c.Context(), mealID, date)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedNutritionPreview, err)
	}

	draft := customization.Sanitize(toCustomization(*req), entry.Meal.Ingredients)
	return presenters.SuccessResponse(c, domain.NutritionPreviewResponse{
		Customization: draft,
		Customized:    customization.IsCustomized(draft),
		BaseNutrition: entry.Meal.Nutrition,
		Nutrition:     customization.AdjustedNutritionFor(entry.Meal, draft),
	}, fiber.StatusOK, domain.MessageSuccessNutritionPreview)
}
