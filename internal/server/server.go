package server

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"anoa.com/lebenslauf/internal/config"
	"anoa.com/lebenslauf/internal/middleware"
	adminHttp "anoa.com/lebenslauf/internal/modules/admin/delivery/http"
	cvHttp "anoa.com/lebenslauf/internal/modules/cv/delivery/http"
	exportHttp "anoa.com/lebenslauf/internal/modules/export/delivery/http"
	export "anoa.com/lebenslauf/internal/modules/export/service"
	searchHttp "anoa.com/lebenslauf/internal/modules/search/delivery/http"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var errDatabaseMissing = errors.New("database not configured")

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(d Deps, svc *Services) *Server {
	if !d.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	cvHandler := cvHttp.NewCvHandler(svc.Cv, d.Log)
	exportHandler := exportHttp.NewExportHandler(svc.Export, d.Log)
	searchHandler := searchHttp.NewSearchHandler(svc.Search, d.Log)
	adminHandler := adminHttp.NewAdminHandler(svc.Admin, d.Log)

	router := gin.New()

	setupCORS(router, d.Config)

	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/health"},
	}))

	s := &Server{
		engine:      router,
		db:          d.DB,
		redisClient: d.Redis,
	}
	router.GET("/health", s.health)

	authMiddleware := middleware.NewAuthMiddleware(svc.AdminRepo, d.Config.JWTSecret)
	exportLimit := middleware.RateLimit(d.Redis, "export", d.Config.ExportRateLimit, d.Log)

	api := router.Group("/api")

	// Public routes
	api.GET("/profiles", cvHandler.GetProfiles)
	api.GET("/cv", cvHandler.GetCv)
	api.GET("/cv/:profileSlug", cvHandler.GetCv)
	api.GET("/projects/search", searchHandler.SearchProjects)

	exports := api.Group("/export", exportLimit)
	{
		exports.GET("/cv/pdf", exportHandler.Download(export.FormatCvPDF))
		exports.GET("/cv/docx", exportHandler.Download(export.FormatCvDOCX))
		exports.GET("/cv/markdown", exportHandler.Download(export.FormatCvMarkdown))
		exports.GET("/projects/pdf", exportHandler.Download(export.FormatProjectsPDF))
	}

	api.POST("/auth/login", adminHandler.Login)

	adminGroup := api.Group("/admin")
	adminGroup.Use(authMiddleware.RequireAdmin())
	{
		adminGroup.PUT("/profiles/:slug/skills/:entityId", adminHandler.UpsertSkillOverlay)
		adminGroup.DELETE("/profiles/:slug/skills/:entityId", adminHandler.RemoveSkillOverlay)
		adminGroup.PUT("/profiles/:slug/projects/:entityId", adminHandler.UpsertProjectOverlay)
		adminGroup.PUT("/profiles/:slug/work-experience/:entityId", adminHandler.UpsertWorkExperienceOverlay)
		adminGroup.DELETE("/projects/:id", adminHandler.DeleteProject)
		adminGroup.POST("/personal-data/:profileSlug/image", adminHandler.UploadProfileImage)
		adminGroup.POST("/search/reindex", adminHandler.ReindexSearch)
		adminGroup.POST("/maintenance/prune", adminHandler.PruneOrphanedOverlays)
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) health(c *gin.Context) {
	status := gin.H{"status": "ok", "database": "ok"}
	code := http.StatusOK

	err := errDatabaseMissing
	if s.db != nil {
		var sqlDB *sql.DB
		if sqlDB, err = s.db.DB(); err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
	}
	if err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		code = http.StatusServiceUnavailable
	}

	if s.redisClient != nil {
		status["redis"] = "ok"
		if err := s.redisClient.Ping(c.Request.Context()).Err(); err != nil {
			status["redis"] = "unreachable"
		}
	}

	c.JSON(code, status)
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	var origins []string
	if cfg.AllowedOrigins != "" {
		for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
			origins = append(origins, strings.TrimSpace(o))
		}
	} else {
		origins = []string{"http://localhost:5000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
