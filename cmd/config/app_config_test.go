package config

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"chefy/domain"
	"chefy/entities"
	"chefy/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	cfg := utils.DefaultConfig()
	cfg.AppTimezone = "UTC"
	cfg.RateLimitMax = 0
	cfg.LogFile = ""
	cfg.LogLevel = "error"

	now := time.Date(2025, time.January, 11, 10, 0, 0, 0, time.UTC)
	app, store, err := NewApp(cfg, func() time.Time { return now })
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return app
}

func call(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v), string(env.Data))
	return v
}

func TestPing(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMealRoutes(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, "GET", "/api/v1/meals", nil)
	require.Equal(t, fiber.StatusOK, status)
	list := decode[domain.MealListResponse](t, env)
	assert.Equal(t, 8, list.Total)

	status, env = call(t, app, "GET", "/api/v1/meals?locale=fr&q=saumon", nil)
	require.Equal(t, fiber.StatusOK, status)
	list = decode[domain.MealListResponse](t, env)
	require.Len(t, list.Meals, 1)
	assert.Equal(t, 3, list.Meals[0].ID)
	assert.Equal(t, domain.LocaleFrench, list.Meals[0].Locale)

	status, env = call(t, app, "GET", "/api/v1/meals/5?locale=ar", nil)
	require.Equal(t, fiber.StatusOK, status)
	meal := decode[domain.MealResponse](t, env)
	assert.True(t, meal.RTL)
	assert.Equal(t, entities.NewMoney(68), meal.Price)

	status, env = call(t, app, "GET", "/api/v1/meals/99", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, env.Status)

	status, _ = call(t, app, "GET", "/api/v1/meals/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSelectionFlow(t *testing.T) {
	app := newTestApp(t)

	status, _ := call(t, app, "POST", "/api/v1/meals/selection/box", nil)
	assert.Equal(t, fiber.StatusConflict, status)

	status, env := call(t, app, "POST", "/api/v1/meals/selection", domain.SelectMealRequest{MealID: 5})
	require.Equal(t, fiber.StatusOK, status)
	sel := decode[domain.SelectionResponse](t, env)
	require.NotNil(t, sel.Selected)
	assert.Equal(t, 5, sel.Selected.ID)

	status, env = call(t, app, "POST", "/api/v1/meals/selection/box", nil)
	require.Equal(t, fiber.StatusCreated, status)
	added := decode[domain.AddToBoxResponse](t, env)
	assert.True(t, added.Added)
	assert.Equal(t, "2025-01-13", added.Entry.DeliveryDate.String())

	_, env = call(t, app, "GET", "/api/v1/meals/selection", nil)
	assert.Nil(t, decode[domain.SelectionResponse](t, env).Selected)

	status, _ = call(t, app, "POST", "/api/v1/meals/selection", domain.SelectMealRequest{})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestBoxRoutes(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, "POST", "/api/v1/box", domain.AddToBoxRequest{MealID: 3})
	require.Equal(t, fiber.StatusCreated, status)
	added := decode[domain.AddToBoxResponse](t, env)
	assert.True(t, added.Added)
	assert.Equal(t, "Mon 13 Jan", added.Entry.DateLabel)

	status, env = call(t, app, "POST", "/api/v1/box", domain.AddToBoxRequest{MealID: 3, DeliveryDate: "2025-01-13"})
	require.Equal(t, fiber.StatusOK, status)
	assert.False(t, decode[domain.AddToBoxResponse](t, env).Added)

	status, env = call(t, app, "GET", "/api/v1/box?date=2025-01-13", nil)
	require.Equal(t, fiber.StatusOK, status)
	day := decode[domain.BoxDayResponse](t, env)
	assert.Equal(t, 1, day.Count)
	assert.Equal(t, entities.NewMoney(52), day.Total)

	status, env = call(t, app, "PUT", "/api/v1/box/3/2025-01-13/customization", map[string]interface{}{
		"servings":            4,
		"removed_ingredients": []string{"Lemon Butter"},
	})
	require.Equal(t, fiber.StatusOK, status)
	updated := decode[domain.UpdateCustomizationResponse](t, env)
	require.True(t, updated.Updated)
	assert.True(t, updated.Entry.Customized)
	assert.Equal(t, entities.Nutrition{Calories: 570, Protein: 53, Fat: 27, Carbs: 18}, updated.Entry.Nutrition)
	assert.Equal(t, entities.NewMoney(52), updated.Entry.Price)

	status, env = call(t, app, "PUT", "/api/v1/box/3/2025-01-14/customization", map[string]interface{}{"servings": 3})
	require.Equal(t, fiber.StatusOK, status)
	assert.False(t, decode[domain.UpdateCustomizationResponse](t, env).Updated)

	status, env = call(t, app, "POST", "/api/v1/box/3/2025-01-13/nutrition-preview", map[string]interface{}{
		"removed_ingredients": []string{"Feta Cream"},
	})
	require.Equal(t, fiber.StatusOK, status)
	preview := decode[domain.NutritionPreviewResponse](t, env)
	assert.Equal(t, 2, preview.Customization.Servings)
	assert.False(t, preview.Customized)
	assert.Equal(t, preview.BaseNutrition, preview.Nutrition)

	status, _ = call(t, app, "POST", "/api/v1/box/7/2025-01-13/nutrition-preview", map[string]interface{}{})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = call(t, app, "PUT", "/api/v1/box/3/not-a-date/customization", map[string]interface{}{})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = call(t, app, "POST", "/api/v1/box", "{not json")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = call(t, app, "GET", "/api/v1/box/summary", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, decode[domain.BoxSummaryResponse](t, env).Count)

	status, env = call(t, app, "DELETE", "/api/v1/box/3/2025-01-13", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, decode[domain.RemoveFromBoxResponse](t, env).Removed)

	_, env = call(t, app, "DELETE", "/api/v1/box/3/2025-01-13", nil)
	assert.False(t, decode[domain.RemoveFromBoxResponse](t, env).Removed)
}

func TestDeliveryRoutes(t *testing.T) {
	app := newTestApp(t)
	call(t, app, "POST", "/api/v1/box", domain.AddToBoxRequest{MealID: 1, DeliveryDate: "2025-01-13"})

	status, env := call(t, app, "GET", "/api/v1/delivery", nil)
	require.Equal(t, fiber.StatusOK, status)
	res := decode[domain.DeliveryResponse](t, env)
	require.Len(t, res.Horizon, 14)
	assert.Equal(t, "2025-01-11", res.Today.String())
	assert.True(t, res.Horizon[0].IsToday)
	assert.True(t, res.Horizon[2].IsSelected)
	assert.Equal(t, 1, res.Horizon[2].EntryCount)
	assert.Equal(t, "2025-01-24", res.Horizon[13].Date.String())

	status, env = call(t, app, "PUT", "/api/v1/delivery", domain.SetDeliveryDateRequest{Date: "2025-01-10"})
	require.Equal(t, fiber.StatusOK, status)
	set := decode[domain.SetDeliveryDateResponse](t, env)
	assert.False(t, set.Accepted)
	assert.Equal(t, "2025-01-13", set.Selected.String())

	_, env = call(t, app, "PUT", "/api/v1/delivery", domain.SetDeliveryDateRequest{Date: "2025-02-03"})
	assert.True(t, decode[domain.SetDeliveryDateResponse](t, env).Accepted)

	status, env = call(t, app, "GET", "/api/v1/delivery/calendar?locale=fr", nil)
	require.Equal(t, fiber.StatusOK, status)
	cal := decode[domain.CalendarResponse](t, env)
	assert.Equal(t, 2, cal.Month)
	assert.Equal(t, "Février", cal.MonthName)
	// February 2025 starts on a Saturday.
	assert.Len(t, cal.Cells, 6+28)

	status, _ = call(t, app, "GET", "/api/v1/delivery/calendar?month=13", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = call(t, app, "PUT", "/api/v1/delivery", domain.SetDeliveryDateRequest{Date: "13/01/2025"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCookRoutes(t *testing.T) {
	app := newTestApp(t)

	status, _ := call(t, app, "POST", "/api/v1/cook/next", nil)
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = call(t, app, "POST", "/api/v1/cook/start", domain.StartCookingRequest{MealID: 3, DeliveryDate: "2025-01-13"})
	assert.Equal(t, fiber.StatusNotFound, status)

	call(t, app, "POST", "/api/v1/box", domain.AddToBoxRequest{MealID: 3, DeliveryDate: "2025-01-13"})
	status, env := call(t, app, "POST", "/api/v1/cook/start", domain.StartCookingRequest{MealID: 3, DeliveryDate: "2025-01-13"})
	require.Equal(t, fiber.StatusOK, status)
	state := decode[domain.CookStateResponse](t, env)
	assert.Equal(t, "cooking", state.State)
	assert.Equal(t, "Press herb crust onto salmon", state.StepText)
	assert.Equal(t, "4:00", state.TimeLabel)

	_, env = call(t, app, "GET", "/api/v1/cook?locale=fr", nil)
	assert.Equal(t, "Appuyer la croûte sur le saumon", decode[domain.CookStateResponse](t, env).StepText)

	_, env = call(t, app, "POST", "/api/v1/cook/timer/toggle", nil)
	assert.True(t, decode[domain.CookStateResponse](t, env).Running)
	_, env = call(t, app, "POST", "/api/v1/cook/timer/reset", nil)
	state = decode[domain.CookStateResponse](t, env)
	assert.False(t, state.Running)
	assert.Equal(t, domain.CookTimerSeconds, state.TimeRemaining)

	for i := 0; i < 3; i++ {
		_, env = call(t, app, "POST", "/api/v1/cook/next", nil)
		assert.False(t, decode[domain.CookStateResponse](t, env).Finished)
	}
	_, env = call(t, app, "POST", "/api/v1/cook/next", nil)
	state = decode[domain.CookStateResponse](t, env)
	assert.True(t, state.Finished)
	assert.Equal(t, "selecting_meal", state.State)

	status, _ = call(t, app, "POST", "/api/v1/cook/exit", nil)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestProfileRoutes(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, "GET", "/api/v1/profile", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "None", decode[domain.ProfileResponse](t, env).AllergiesSummary)

	status, _ = call(t, app, "PUT", "/api/v1/profile", map[string]interface{}{"dietary": "Carnivore"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = call(t, app, "PUT", "/api/v1/profile", map[string]interface{}{
		"allergies": []string{"Fish", "Eggs", "Soy"},
		"language":  "ar",
		"dark_mode": true,
	})
	require.Equal(t, fiber.StatusOK, status)
	res := decode[domain.ProfileResponse](t, env)
	assert.Equal(t, "Eggs, Fish...", res.AllergiesSummary)
	assert.True(t, res.RTL)
	assert.True(t, res.Preferences.DarkMode)

	// the profile language becomes the default locale
	_, env = call(t, app, "GET", "/api/v1/meals/1", nil)
	assert.Equal(t, domain.LocaleArabic, decode[domain.MealResponse](t, env).Locale)
}

func TestAccessLogClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "access.log")
	out, err := accessLog(path)
	require.NoError(t, err)

	_, err = out.Write([]byte("GET /api/ping\n"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	_, err = out.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "GET /api/ping\n", string(raw))

	stdout, err := accessLog("")
	require.NoError(t, err)
	assert.NoError(t, stdout.Close())
	_, err = os.Stdout.Write(nil)
	assert.NoError(t, err)
}
