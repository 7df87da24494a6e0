package app

import (
	"context"
	"log"
	"time"

	"winestudy/internal/config"
	"winestudy/internal/database"
	"winestudy/internal/database/mongodb"
	"winestudy/internal/infrastructure/cache"
	"winestudy/internal/infrastructure/identity"
	"winestudy/internal/pkg/jwt"
	"winestudy/internal/repository"
	"winestudy/internal/usecase"
	ucauth "winestudy/internal/usecase/auth"
)

// Container owns every long-lived dependency: the mongo handle, the redis
// cache, and the usecases built on top of them.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis

	Auth     usecase.AuthUsecase
	Catalog  usecase.CatalogUsecase
	Study    usecase.StudyUsecase
	Quiz     usecase.QuizUsecase
	Tasting  usecase.TastingUsecase
	Progress usecase.ProgressUsecase
	Search   usecase.SearchUsecase
	Seed     usecase.SeedUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	users := repository.NewUserRepository(db)
	sessions := repository.NewSessionRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	studyRepo := repository.NewStudyRepository(db)
	tastingRepo := repository.NewTastingRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	jwtSvc := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	provider := identity.NewClient(cfg.Auth.ProviderURL, logger)
	accounts := ucauth.NewService(users, progressRepo, usecase.NewID)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,

		Auth:     usecase.NewAuthUsecase(accounts, users, sessions, jwtSvc, provider, cfg.Auth.TokenTTL),
		Catalog:  usecase.NewCatalogUsecase(catalogRepo),
		Study:    usecase.NewStudyUsecase(studyRepo, progressRepo),
		Quiz:     usecase.NewQuizUsecase(studyRepo, progressRepo),
		Tasting:  usecase.NewTastingUsecase(tastingRepo, progressRepo),
		Progress: usecase.NewProgressUsecase(progressRepo),
		Search:   usecase.NewSearchUsecase(catalogRepo, redisCache),
		Seed:     usecase.NewSeedUsecase(catalogRepo, studyRepo),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Printf("redis close error: %v", err)
		}
	}
	if c.DB == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.DB.Close(ctx)
}
