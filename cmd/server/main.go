package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/nomadlab/seoulbang-backend-go/internal/api"
	"github.com/nomadlab/seoulbang-backend-go/internal/config"
	"github.com/nomadlab/seoulbang-backend-go/internal/database"
	"github.com/nomadlab/seoulbang-backend-go/internal/handler"
	"github.com/nomadlab/seoulbang-backend-go/internal/repository"
	"github.com/nomadlab/seoulbang-backend-go/internal/service"
	"github.com/nomadlab/seoulbang-backend-go/pkg/logger"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	emdRepo := repository.NewEmdRepository(db)
	facilityRepo := repository.NewFacilityRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	proximityRepo := repository.NewProximityRepository(db)

	areaService := service.NewAreaService(scoreRepo, propertyRepo, zlog)
	propertyService := service.NewPropertyService(propertyRepo, proximityRepo, zlog)
	buildService := service.NewScoreBuildService(emdRepo, facilityRepo, scoreRepo, zlog)

	recommendHandler := handler.NewRecommendHandler(areaService, propertyService)
	scoreHandler := handler.NewScoreHandler(buildService)

	router := api.SetupRouter(cfg, zlog, recommendHandler, scoreHandler)

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(cfg.Port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
