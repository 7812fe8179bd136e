package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"chefy/domain"
	"chefy/internal/api/handlers"
	"chefy/internal/api/routes"
	"chefy/internal/middleware"
	"chefy/internal/utils"
	"chefy/pkg/box"
	"chefy/pkg/catalog"
	"chefy/pkg/cook"
	"chefy/pkg/delivery"
	"chefy/pkg/profile"
	"chefy/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// NewApp wires the session store and HTTP routes from cfg. now is the
// session clock; nil means time.Now. Callers close the returned store on
// shutdown.
func NewApp(cfg utils.Config, now func() time.Time) (*fiber.App, *session.Store, error) {
	if now == nil {
		now = time.Now
	}
	log.SetLevel(parseLevel(cfg.LogLevel))

	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "chefy",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	out, err := accessLog(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	app.Hooks().OnShutdown(out.Close)
	app.Use(middlewares.RecoverMiddleware())
	app.Use(middlewares.LoggerMiddleware(out, cfg.AppTimezone))
	app.Use(middlewares.LimiterMiddleware(cfg.RateLimitMax))

	loc, err := time.LoadLocation(cfg.AppTimezone)
	if err != nil {
		log.Warnf("unknown timezone %q, using local time: %v", cfg.AppTimezone, err)
		loc = time.Local
	}
	locale := domain.ResolveLocale(cfg.DefaultLocale)

	// Repository
	catalogRepository := catalog.NewCatalogRepository()
	boxRepository := box.NewBoxRepository()

	// Service
	catalogService := catalog.NewCatalogService(catalogRepository, locale)
	boxService := box.NewBoxService(boxRepository, now)
	deliveryService := delivery.NewDeliveryService(delivery.Options{
		Now:         now,
		Location:    loc,
		OffsetDays:  cfg.DeliveryOffsetDays,
		HorizonDays: cfg.HorizonDays,
	})
	profileService := profile.NewProfileService(profile.DefaultPreferences(locale))
	cookMachine := cook.NewMachine(cook.Options{})

	store := session.NewStore(session.Deps{
		Catalog:  catalogService,
		Box:      boxService,
		Delivery: deliveryService,
		Cook:     cookMachine,
		Profile:  profileService,
	})
	store.OnCookTransition(func(from, to cook.State) {
		log.Infof("cook mode %s -> %s", from, to)
	})

	// Handler
	mealHandler := handlers.NewMealHandler(store, validator)
	boxHandler := handlers.NewBoxHandler(store, validator)
	deliveryHandler := handlers.NewDeliveryHandler(store, validator)
	cookHandler := handlers.NewCookHandler(store, validator)
	profileHandler := handlers.NewProfileHandler(store, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		MealHandler:     mealHandler,
		BoxHandler:      boxHandler,
		DeliveryHandler: deliveryHandler,
		CookHandler:     cookHandler,
		ProfileHandler:  profileHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, store, nil
}

type stdoutLog struct{ io.Writer }

func (stdoutLog) Close() error { return nil }

// accessLog opens the request log. Closing the stdout fallback is a no-op.
func accessLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return stdoutLog{os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
