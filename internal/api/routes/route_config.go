package routes

import (
	"chefy/internal/api/handlers"
	"chefy/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	MealHandler     handlers.MealHandler
	BoxHandler      handlers.BoxHandler
	DeliveryHandler handlers.DeliveryHandler
	CookHandler     handlers.CookHandler
	ProfileHandler  handlers.ProfileHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Meals()
	c.Box()
	c.Delivery()
	c.Cook()
	c.Profile()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals")
	{
		meals.Get("", c.MealHandler.GetMeals)
		meals.Get("/selection", c.MealHandler.GetSelection)
		meals.Post("/selection", c.MealHandler.SelectMeal)
		meals.Delete("/selection", c.MealHandler.ClearSelection)
		meals.Post("/selection/box", c.MealHandler.AddSelectionToBox)
		meals.Get("/:id", c.MealHandler.GetMealDetail)
	}
}

func (c *Config) Box() {
	box := c.App.Group("/api/v1/box")
	box.Get("", c.BoxHandler.GetBox)
	box.Get("/summary", c.BoxHandler.GetSummary)
	box.Post("", c.BoxHandler.AddToBox)
	box.Delete("/:mealId/:date", c.BoxHandler.RemoveFromBox)

	// customization
	box.Put("/:mealId/:date/customization", c.BoxHandler.UpdateCustomization)
	box.Post("/:mealId/:date/nutrition-preview", c.BoxHandler.PreviewNutrition)
}

func (c *Config) Delivery() {
	delivery := c.App.Group("/api/v1/delivery")
	delivery.Get("", c.DeliveryHandler.GetDelivery)
	delivery.Put("", c.DeliveryHandler.SetDeliveryDate)
	delivery.Get("/calendar", c.DeliveryHandler.GetCalendar)
}

func (c *Config) Cook() {
	cook := c.App.Group("/api/v1/cook")
	cook.Get("", c.CookHandler.GetState)
	cook.Post("/start", c.CookHandler.StartCooking)
	cook.Post("/next", c.CookHandler.NextStep)
	cook.Post("/prev", c.CookHandler.PrevStep)
	cook.Post("/timer/toggle", c.CookHandler.ToggleTimer)
	cook.Post("/timer/reset", c.CookHandler.ResetTimer)
	cook.Post("/exit", c.CookHandler.ExitCooking)
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/v1/profile")
	profile.Get("", c.ProfileHandler.GetProfile)
	profile.Put("", c.ProfileHandler.UpdateProfile)
}
