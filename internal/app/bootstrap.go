package app

import (
	"fmt"
	"log"
	"strings"

	"winestudy/internal/config"
	"winestudy/internal/delivery/http/handler"
	"winestudy/internal/delivery/http/middleware"
	"winestudy/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Bootstrap builds the container and the HTTP app. The returned cleanup
// closes the mongo and redis connections.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     c.Config.App.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-ID"},
	}))
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	registry := routes.NewRegistry(
		handler.NewAuthHandler(c.Auth),
		handler.NewCatalogHandler(c.Catalog),
		handler.NewStudyHandler(c.Study),
		handler.NewQuizHandler(c.Quiz),
		handler.NewTastingHandler(c.Tasting),
		handler.NewProgressHandler(c.Progress),
		handler.NewSearchHandler(c.Search),
		handler.NewSeedHandler(c.Seed),
		middleware.NewAuthMiddleware(c.Auth),
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
