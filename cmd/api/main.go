package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/placement-success/placement-api/api/swagger"
	"github.com/placement-success/placement-api/internal/handler"
	"github.com/placement-success/placement-api/internal/middleware"
	"github.com/placement-success/placement-api/internal/repository"
	"github.com/placement-success/placement-api/internal/service"
	"github.com/placement-success/placement-api/pkg/cache"
	"github.com/placement-success/placement-api/pkg/config"
	"github.com/placement-success/placement-api/pkg/database"
	"github.com/placement-success/placement-api/pkg/export"
	"github.com/placement-success/placement-api/pkg/logger"
	corsmiddleware "github.com/placement-success/placement-api/pkg/middleware/cors"
	reqidmiddleware "github.com/placement-success/placement-api/pkg/middleware/requestid"
)

// @title Placement Success API
// @version 1.0.0
// @description Back office for batches, students, scores and placement tracking
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()

	batchRepo := repository.NewBatchRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	teamLeaderRepo := repository.NewTeamLeaderRepository(db)
	userRepo := repository.NewUserRepository(db)
	spocRepo := repository.NewSpocRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	domainRepo := repository.NewKeyedLabelRepository(db, "domains")
	epicRepo := repository.NewKeyedLabelRepository(db, "epic_levels")
	userTypeRepo := repository.NewKeyedLabelRepository(db, "user_types")
	eligibilityRepo := repository.NewLabelRepository(db, "eligibility_statuses")
	batchStatusRepo := repository.NewLabelRepository(db, "batch_statuses")
	placementStatusRepo := repository.NewLabelRepository(db, "placement_statuses")

	metricsSvc := service.NewMetricsService()
	batchSvc := service.NewBatchService(batchRepo, studentRepo, cacheRepo, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, batchRepo, cacheRepo, validate, logr)
	scoreSvc := service.NewScoreService(scoreRepo, studentRepo, cacheRepo, validate, logr)
	opportunitySvc := service.NewOpportunityService(opportunityRepo, validate, logr)
	teamLeaderSvc := service.NewTeamLeaderService(teamLeaderRepo, cfg.Users.BcryptCost, logr)
	userSvc := service.NewUserService(userRepo, cfg.Users, validate, logr)
	spocSvc := service.NewSpocService(spocRepo, validate, logr)
	trainerSvc := service.NewTrainerService(trainerRepo, logr)
	dashboardSvc := service.NewDashboardService(statsRepo, cacheRepo, cfg.Dashboard, logr)
	reportSvc := service.NewReportService(statsRepo, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handler.Register(r, handler.Handlers{
		Batches:           handler.NewBatchHandler(batchSvc),
		Students:          handler.NewStudentHandler(studentSvc),
		Scores:            handler.NewScoreHandler(scoreSvc),
		Opportunities:     handler.NewOpportunityHandler(opportunitySvc),
		TeamLeaders:       handler.NewTeamLeaderHandler(teamLeaderSvc),
		Users:             handler.NewUserHandler(userSvc),
		Spocs:             handler.NewSpocHandler(spocSvc),
		Domains:           handler.NewKeyedLookupHandler(service.NewKeyedLookupService(domainRepo, logr)),
		EpicLevels:        handler.NewKeyedLookupHandler(service.NewKeyedLookupService(epicRepo, logr)),
		UserTypes:         handler.NewKeyedLookupHandler(service.NewKeyedLookupService(userTypeRepo, logr)),
		EligibilityStatus: handler.NewLabelLookupHandler(service.NewLabelLookupService(eligibilityRepo, logr)),
		BatchStatus:       handler.NewLabelLookupHandler(service.NewLabelLookupService(batchStatusRepo, logr)),
		PlacementStatus:   handler.NewLabelLookupHandler(service.NewLabelLookupService(placementStatusRepo, logr)),
		Dashboards:        handler.NewDashboardHandler(dashboardSvc),
		Reports:           handler.NewReportHandler(reportSvc),
		Trainers:          handler.NewTrainerHandler(trainerSvc),
		Health:            handler.NewHealthHandler(db, redisClient),
		Metrics:           handler.NewMetricsHandler(metricsSvc),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
	if cacheRepo != nil {
		_ = cacheRepo.Close()
	}
}
