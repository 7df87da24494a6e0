package routes

import (
	"winestudy/internal/delivery/http/handler"
	"winestudy/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Registry wires every handler under the /api prefix. Authenticated groups
// share one auth middleware instance; everything else is public, including the
// seeding endpoints, which guard themselves with already-seeded checks.
type Registry struct {
	auth     *handler.AuthHandler
	catalog  *handler.CatalogHandler
	study    *handler.StudyHandler
	quiz     *handler.QuizHandler
	tasting  *handler.TastingHandler
	progress *handler.ProgressHandler
	search   *handler.SearchHandler
	seed     *handler.SeedHandler
	health   *handler.HealthHandler

	requireAuth fiber.Handler
}

func NewRegistry(
	auth *handler.AuthHandler,
	catalog *handler.CatalogHandler,
	study *handler.StudyHandler,
	quiz *handler.QuizHandler,
	tasting *handler.TastingHandler,
	progress *handler.ProgressHandler,
	search *handler.SearchHandler,
	seed *handler.SeedHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		auth:        auth,
		catalog:     catalog,
		study:       study,
		quiz:        quiz,
		tasting:     tasting,
		progress:    progress,
		search:      search,
		seed:        seed,
		health:      handler.NewHealthHandler(),
		requireAuth: authMiddleware.Middleware(),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	api.Get("/", r.health.Root)

	r.auth.RegisterRoutes(api.Group("/auth"))
	r.auth.RegisterProtectedRoutes(api.Group("/auth", r.requireAuth))

	r.catalog.RegisterRoutes(api)
	r.search.RegisterRoutes(api)
	r.seed.RegisterRoutes(api)

	r.study.RegisterRoutes(api.Group("/study"))
	r.study.RegisterProtectedRoutes(api.Group("/study", r.requireAuth))

	r.quiz.RegisterRoutes(api.Group("/quiz"))
	r.quiz.RegisterProtectedRoutes(api.Group("/quiz", r.requireAuth))

	r.tasting.RegisterRoutes(api.Group("/tastings", r.requireAuth))
	r.progress.RegisterRoutes(api.Group("/progress", r.requireAuth))
}
