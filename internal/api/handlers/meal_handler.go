package handlers

import (
	"chefy/domain"
	"chefy/internal/api/presenters"
	"chefy/pkg/session"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		GetMeals(c *fiber.Ctx) error
		GetMealDetail(c *fiber.Ctx) error
		GetSelection(c *fiber.Ctx) error
		SelectMeal(c *fiber.Ctx) error
		ClearSelection(c *fiber.Ctx) error
		AddSelectionToBox(c *fiber.Ctx) error
	}

	mealHandler struct {
		store     *session.Store
		validator *validator.Validate
	}
)

func NewMealHandler(store *session.Store, validator *validator.Validate) MealHandler {
	return &mealHandler{
		store:     store,
		validator: validator,
	}
}

func (h *mealHandler) GetMeals(c *fiber.Ctx) error {
	req := new(domain.MealListRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMeals, err)
	}

	ctx := c.Context()
	meals := h.store.Catalog().Search(ctx, req.Query, h.store.Locale(ctx, req.Locale))
	return presenters.SuccessResponse(c, domain.MealListResponse{
		Meals: meals,
		Total: len(meals),
	}, fiber.StatusOK, domain.MessageSuccessGetMeals)
}

func (h *mealHandler) GetMealDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealDetail, domain.ErrInvalidMealID)
	}

	ctx := c.Context()
	res, err := h.store.Catalog().Detail(ctx, id, h.store.Locale(ctx, c.Query("locale")))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMealDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealDetail)
}

func (h *mealHandler) GetSelection(c *fiber.Ctx) error {
	ctx := c.Context()
	res := domain.SelectionResponse{}
	if meal, ok := h.store.Selected(); ok {
		detail, err := h.store.Catalog().Detail(ctx, meal.ID, h.store.Locale(ctx, c.Query("locale")))
		if err != nil {
			return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMealDetail, err)
		}
		res.Selected = &detail
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealDetail)
}

func (h *mealHandler) SelectMeal(c *fiber.Ctx) error {
	req := new(domain.SelectMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSelectMeal, err)
	}

	ctx := c.Context()
	meal, err := h.store.SelectMeal(ctx, req.MealID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSelectMeal, err)
	}

	detail, err := h.store.Catalog().Detail(ctx, meal.ID, h.store.Locale(ctx, req.Locale))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSelectMeal, err)
	}

	return presenters.SuccessResponse(c, domain.SelectionResponse{Selected: &detail}, fiber.StatusOK, domain.MessageSuccessSelectMeal)
}

func (h *mealHandler) ClearSelection(c *fiber.Ctx) error {
	h.store.ClearSelection()
	return presenters.SuccessResponse(c, domain.SelectionResponse{}, fiber.StatusOK, domain.MessageSuccessClearSelection)
}

// AddSelectionToBox schedules the selected meal for the active delivery
// date and clears the selection.
func (h *mealHandler) AddSelectionToBox(c *fiber.Ctx) error {
	ctx := c.Context()
	entry, added, err := h.store.AddSelectedToBox(ctx)
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
