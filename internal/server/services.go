package server

import (
	"context"
	"fmt"
	"strings"

	"anoa.com/lebenslauf/internal/config"
	adminRepo "anoa.com/lebenslauf/internal/modules/admin/repository"
	adminService "anoa.com/lebenslauf/internal/modules/admin/service"
	contributionRepo "anoa.com/lebenslauf/internal/modules/contribution/repository"
	contributionService "anoa.com/lebenslauf/internal/modules/contribution/service"
	cvRepo "anoa.com/lebenslauf/internal/modules/cv/repository"
	cvService "anoa.com/lebenslauf/internal/modules/cv/service"
	exportService "anoa.com/lebenslauf/internal/modules/export/service"
	searchService "anoa.com/lebenslauf/internal/modules/search/service"
	"anoa.com/lebenslauf/internal/scheduler"
	"anoa.com/lebenslauf/pkg/database"
	"anoa.com/lebenslauf/pkg/storage"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the external clients. Redis, Meili and ImageStorage may be nil;
// the features built on them degrade instead of failing startup.
type Deps struct {
	Config       *config.Config
	DB           *gorm.DB
	Redis        *redis.Client
	Meili        meilisearch.ServiceManager
	ImageStorage storage.ImageStorage
	Log          *zap.Logger
}

// Services is the wired application shared by the HTTP server and the CLI.
type Services struct {
	AdminRepo     adminRepo.AdminRepository
	Cv            cvService.CvService
	Export        exportService.ExportService
	Search        searchService.ProjectSearchService
	Admin         adminService.AdminService
	Contributions contributionService.ContributionService
}

func NewServices(d Deps) *Services {
	cvRepository := cvRepo.NewCvRepository(d.DB)
	cvSvc := cvService.NewCvService(cvRepository, d.Config.GitHubUsername, d.Log.Named("cv"))

	var index searchService.DocumentIndex
	if d.Meili != nil {
		index = d.Meili.Index(searchService.ProjectsIndex)
	}
	searchSvc := searchService.NewProjectSearchService(index, cvRepository, d.Log.Named("search"))

	adminRepository := adminRepo.NewAdminRepository(d.DB)
	adminSvc := adminService.NewAdminService(adminRepository, searchSvc, d.ImageStorage, adminService.Options{
		JWTSecret:    d.Config.JWTSecret,
		TokenTTL:     d.Config.JWTTokenTTL,
		UploadFolder: d.Config.CloudinaryUploadFolder,
	}, d.Log.Named("admin"))

	contributionSvc := contributionService.NewContributionService(
		contributionRepo.NewContributionRepository(d.DB),
		contributionService.NewCalendarScraper(d.Config.GitHubBaseURL),
		d.Config.GitHubUsername,
		d.Log.Named("contributions"),
	)

	return &Services{
		AdminRepo:     adminRepository,
		Cv:            cvSvc,
		Export:        exportService.NewExportService(cvSvc, d.Log.Named("export")),
		Search:        searchSvc,
		Admin:         adminSvc,
		Contributions: contributionSvc,
	}
}

// Jobs returns the maintenance jobs with their configured schedules.
func (s *Services) Jobs(cfg *config.Config, log *zap.Logger) []scheduler.Job {
	return []scheduler.Job{
		scheduler.NewPruneJob(s.Admin, cfg.PruneSchedule, log.Named("prune")),
		scheduler.NewReindexJob(s.Admin, cfg.ReindexSchedule, log.Named("reindex")),
		scheduler.NewContributionJob(s.Contributions, cfg.ContributionSchedule, log.Named("contributions")),
	}
}

// NewMeiliClient returns nil when no host is configured.
func NewMeiliClient(host, apiKey string) meilisearch.ServiceManager {
	if host == "" {
		return nil
	}
	if !strings.HasPrefix(host, "http") {
		host = "http://" + host + ":7700"
	}
	return meilisearch.New(host, meilisearch.WithAPIKey(apiKey))
}

// Connect opens the database and the optional clients named in cfg.
// Optional clients that are missing or unreachable are logged and left nil.
func Connect(ctx context.Context, cfg *config.Config, log *zap.Logger) (Deps, error) {
	d := Deps{Config: cfg, Log: log}

	db, err := database.Connect(cfg.DSN(), cfg.IsDevelopment(), log)
	if err != nil {
		return d, err
	}
	d.DB = db

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return d, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, export rate limit disabled", zap.Error(err))
			_ = rdb.Close()
		} else {
			d.Redis = rdb
		}
	}

	d.Meili = NewMeiliClient(cfg.MeiliSearchHost, cfg.MeiliMasterKey)
	if d.Meili == nil {
		log.Info("MEILISEARCH_HOST not set, project search disabled")
	}

	imageStorage, err := storage.NewCloudinaryStorage(cfg.CloudinaryCloudName)
	if err != nil {
		log.Warn("cloudinary not configured, image upload disabled", zap.Error(err))
	} else {
		d.ImageStorage = imageStorage
	}

	return d, nil
}

// Close releases the clients opened by Connect.
func (d Deps) Close() {
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
