package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careergps/internal/catalog"
	"careergps/internal/config"
	"careergps/internal/database"
	"careergps/internal/database/migration"
	dbpostgres "careergps/internal/database/postgres"
	"careergps/internal/database/seeder"
	"careergps/internal/domain/recommendation"
	"careergps/internal/infrastructure/cache"
	"careergps/internal/infrastructure/storage"
	"careergps/internal/logger"
	"careergps/internal/pkg/jwt"
	"careergps/internal/repository"
	"careergps/internal/usecase"
	"careergps/internal/ws"
)

const startupTimeout = 30 * time.Second

// Container owns every long-lived dependency. DB, Archive and the account
// usecases are nil when their configuration is empty.
type Container struct {
	Config  config.Config
	Log     logger.Logger
	Catalog *catalog.Catalog
	Engine  *recommendation.Engine
	DB      database.DB
	Cache   *cache.Redis
	Archive *storage.ResumeArchive
	Hub     *ws.Hub
	JWT     jwt.Service

	Recommendation *usecase.RecommendationUsecase
	Skills         *usecase.SkillsUsecase
	Resume         *usecase.ResumeUsecase
	Content        *usecase.ContentUsecase
	Visitor        *usecase.VisitorUsecase

	Auth       *usecase.Auth
	User       *usecase.User
	Assessment *usecase.AssessmentUsecase
	Progress   *usecase.ProgressUsecase
}

func NewContainer(ctx context.Context, cfg config.Config, log logger.Logger) (*Container, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	c := &Container{
		Config:  cfg,
		Log:     log,
		Catalog: cat,
		Engine:  recommendation.DefaultEngine(),
		Cache:   cache.NewRedis(ctx, cfg.Redis, log),
		Hub:     ws.NewHub(log),
	}

	if cfg.Storage.Enabled() {
		archive, err := storage.NewResumeArchive(ctx, cfg.Storage)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("resume archive: %w", err)
		}
		c.Archive = archive
	}

	c.Recommendation = usecase.NewRecommendationUsecase(c.Engine, log)
	c.Skills = usecase.NewSkillsUsecase(cat, log)
	c.Content = usecase.NewContentUsecase(cat)
	c.Visitor = usecase.NewVisitorUsecase(c.Cache, c.Hub, log)

	var archiver usecase.ResumeArchiver
	if c.Archive != nil {
		archiver = c.Archive
	}
	c.Resume = usecase.NewResumeUsecase(c.Skills, archiver, c.Cache, cfg.Resume.MaxBytes, log)

	if !cfg.Database.Enabled() {
		log.Warn("database.url is empty, account routes are disabled", nil)
		return c, nil
	}

	if err := c.initPersistence(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) initPersistence(ctx context.Context) error {
	db, err := dbpostgres.Connect(ctx, c.Config.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	c.DB = db

	mig := migration.Runner{Dir: c.Config.Database.MigrationsDir, Log: c.Log}
	if err := mig.Run(ctx, db.SQLDB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	seed := seeder.Runner{Seeders: seeder.Defaults(c.Catalog.Careers()), Log: c.Log}
	if err := seed.Run(ctx, db); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	c.JWT = jwt.NewHMACService(jwt.Config{
		AccessSecret:  c.Config.JWT.AccessSecret,
		RefreshSecret: c.Config.JWT.RefreshSecret,
		AccessTTL:     c.Config.JWT.AccessTTL,
		RefreshTTL:    c.Config.JWT.RefreshTTL,
		Issuer:        c.Config.JWT.Issuer,
	})

	users := repository.NewPostgresUserRepository(db)
	c.Auth = usecase.NewAuthUsecase(users, c.JWT, 0)
	c.User = usecase.NewUserUsecase(users)
	c.Assessment = usecase.NewAssessmentUsecase(c.Engine, repository.NewPostgresAssessmentRepository(db), c.Log)
	c.Progress = usecase.NewProgressUsecase(c.Catalog, repository.NewPostgresProgressRepository(db), c.Log)
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	return errors.Join(errs...)
}
