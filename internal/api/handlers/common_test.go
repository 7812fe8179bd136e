package handlers

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"chefy/domain"
	"chefy/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("meal 9: %w", domain.ErrMealNotFound), fiber.StatusNotFound},
		{domain.ErrBoxEntryNotFound, fiber.StatusNotFound},
		{domain.ErrNotCooking, fiber.StatusConflict},
		{domain.ErrNoMealSelected, fiber.StatusConflict},
		{domain.ErrInvalidDay, fiber.StatusBadRequest},
		{fmt.Errorf("dietary: %w", domain.ErrInvalidPreference), fiber.StatusBadRequest},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestEntryKey(t *testing.T) {
	app := fiber.New()
	app.Get("/:mealId/:date", func(c *fiber.Ctx) error {
		mealID, date, err := entryKey(c)
		if err != nil {
			return c.Status(statusFor(err)).SendString(err.Error())
		}
		return c.SendString(fmt.Sprintf("%d %s", mealID, date))
	})

	tests := []struct {
		path string
		code int
	}{
		{"/3/2025-01-13", fiber.StatusOK},
		{"/0/2025-01-13", fiber.StatusBadRequest},
		{"/x/2025-01-13", fiber.StatusBadRequest},
		{"/3/2025-13-01", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.code, resp.StatusCode, tt.path)
	}
}

func TestToCustomization(t *testing.T) {
	c := toCustomization(domain.CustomizationRequest{})
	assert.Equal(t, entities.BaseServings, c.Servings)

	four := 4
	c = toCustomization(domain.CustomizationRequest{Servings: &four, RemovedIngredients: []string{"Kimchi"}})
	assert.Equal(t, 4, c.Servings)
	assert.Equal(t, []string{"Kimchi"}, c.RemovedIngredients)
}
