// Command scorebuilder runs one offline batch of the indicator builders and
// replaces the dong score table.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/nomadlab/seoulbang-backend-go/internal/config"
	"github.com/nomadlab/seoulbang-backend-go/internal/database"
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

	buildService := service.NewScoreBuildService(
		repository.NewEmdRepository(db),
		repository.NewFacilityRepository(db),
		repository.NewScoreRepository(db),
		zlog,
	)

	batchID, err := buildService.Run(context.Background())
	if err != nil {
		zlog.Fatal("score batch failed", zap.Error(err))
	}

	zlog.Info("score batch complete", zap.String("batch_id", batchID))
}
