package handlers

import (
	"chefy/domain"
	"chefy/entities"
	"chefy/internal/api/presenters"
	"chefy/pkg/session"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CookHandler interface {
		GetState(c *fiber.Ctx) error
		StartCooking(c *fiber.Ctx) error
		NextStep(c *fiber.Ctx) error
		PrevStep(c *fiber.Ctx) error
		ToggleTimer(c *fiber.Ctx) error
		ResetTimer(c *fiber.Ctx) error
		ExitCooking(c *fiber.Ctx) error
	}

	cookHandler struct {
		store     *session.Store
		validator *validator.Validate
	}
)

func NewCookHandler(store *session.Store, validator *validator.Validate) CookHandler {
	return &cookHandler{
		store:     store,
		validator: validator,
	}
}

func (h *cookHandler) GetState(c *fiber.Ctx) error {
	ctx := c.Context()
	res := toCookStateResponse(ctx, h.store, h.store.CookState(), false, h.store.Locale(ctx, c.Query("locale")))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCookState)
}

func (h *cookHandler) StartCooking(c *fiber.Ctx) error {
	req := new(domain.StartCookingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartCooking, err)
	}

	date, err := entities.ParseDay(req.DeliveryDate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartCooking, domain.ErrInvalidDay)
	}

	ctx := c.Context()
	locale := h.store.Locale(ctx, req.Locale)
	snap, err := h.store.StartCooking(ctx, req.MealID, date, locale)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedStartCooking, err)
	}

	return presenters.SuccessResponse(c, toCookStateResponse(ctx, h.store, snap, false, locale), fiber.StatusOK, domain.MessageSuccessStartCooking)
}

// NextStep on the last step finishes cooking; the response then carries
// finished=true and the selecting_meal state.
func (h *cookHandler) NextStep(c *fiber.Ctx) error {
	snap, finished, err := h.store.NextStep()
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCookStep, err)
	}

	ctx := c.Context()
	res := toCookStateResponse(ctx, h.store, snap, finished, h.store.Locale(ctx, c.Query("locale")))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCookStep)
}

func (h *cookHandler) PrevStep(c *fiber.Ctx) error {
	snap, err := h.store.PrevStep()
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCookStep, err)
	}

	ctx := c.Context()
	res := toCookStateResponse(ctx, h.store, snap, false, h.store.Locale(ctx, c.Query("locale")))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCookStep)
}

func (h *cookHandler) ToggleTimer(c *fiber.Ctx) error {
	snap, err := h.store.ToggleTimer()
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCookTimer, err)
	}

	ctx := c.Context()
	res := toCookStateResponse(ctx, h.store, snap, false, h.store.Locale(ctx, c.Query("locale")))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCookTimer)
}

func (h *cookHandler) ResetTimer(c *fiber.Ctx) error {
	snap, err := h.store.ResetTimer()
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCookTimer, err)
	}

	ctx := c.Context()
	res := toCookStateResponse(ctx, h.store, snap, false, h.store.Locale(ctx, c.Query("locale")))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCookTimer)
}

func (h *cookHandler) ExitCooking(c *fiber.Ctx) error {
	if !h.store.ExitCooking() {
		return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedExitCooking, domain.ErrNotCooking)
	}

	ctx := c.Context()
	res := toCookStateResponse(ctx, h.store, h.store.CookState(), false, h.store.Locale(ctx, c.Query("locale")))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExitCooking)
}
