package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
	"github.com/nomadlab/seoulbang-backend-go/internal/scoring"
)

// ScoreBuildService runs the four indicator builders and replaces the dong
// score table with their merged output as one batch.
type ScoreBuildService struct {
	emd        EmdStore
	facilities FacilityStore
	scores     ScoreStore
	logger     *zap.Logger
}

// NewScoreBuildService creates a new score build service
func NewScoreBuildService(emd EmdStore, facilities FacilityStore, scores ScoreStore, logger *zap.Logger) *ScoreBuildService {
	return &ScoreBuildService{
		emd:        emd,
		facilities: facilities,
		scores:     scores,
		logger:     logger,
	}
}

// Run executes one full batch: load reference data, run the builders,
// merge on dong code and write the snapshot. Returns the new batch id.
func (s *ScoreBuildService) Run(ctx context.Context) (string, error) {
	emdRows, err := s.emd.GetAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load emd registry: %w", err)
	}
	if len(emdRows) == 0 {
		return "", fmt.Errorf("emd registry is empty, nothing to score")
	}

	areas := make(map[string]float64, len(emdRows))
	for _, e := range emdRows {
		areas[e.DongCode] = e.AreaM2
	}

	// The four builders are independent; only the geometry table is shared.
	var (
		infraScores     map[string]float64
		securityScores  map[string]float64
		transportScores map[string]float64
		quietYouth      map[string]scoring.QuietYouth
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := s.facilities.CountByDong(gctx, models.FacilityRestaurant)
		if err != nil {
			return err
		}
		infraScores = scoring.BuildDensityIndicator(counts, areas)
		return nil
	})
	g.Go(func() error {
		counts, err := s.facilities.CountByDong(gctx, models.FacilityCCTV)
		if err != nil {
			return err
		}
		securityScores = scoring.BuildDensityIndicator(counts, areas)
		return nil
	})
	g.Go(func() error {
		busCounts, err := s.facilities.CountByDong(gctx, models.FacilityBusStop)
		if err != nil {
			return err
		}
		subwayCounts, err := s.facilities.CountByDong(gctx, models.FacilitySubway)
		if err != nil {
			return err
		}
		// One combined density, not a blend of two normalized pieces
		combined := make(map[string]int, len(busCounts)+len(subwayCounts))
		for code, c := range busCounts {
			combined[code] += c
		}
		for code, c := range subwayCounts {
			combined[code] += c
		}
		transportScores = scoring.BuildDensityIndicator(combined, areas)
		return nil
	})
	g.Go(func() error {
		samples, err := s.facilities.GetPopulationSamples(gctx)
		if err != nil {
			return err
		}
		quietYouth = scoring.BuildQuietYouthIndicators(samples, areas)
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("indicator build failed: %w", err)
	}

	// Merge onto the full registry; dongs a builder dropped score 0.
	rows := make([]models.Neighborhood, 0, len(emdRows))
	for _, e := range emdRows {
		qy := quietYouth[e.DongCode]
		rows = append(rows, models.Neighborhood{
			DongCode:       e.DongCode,
			DongName:       e.DongName,
			GuCode:         e.GuCode,
			GuName:         e.GuName,
			AreaM2:         e.AreaM2,
			CentroidLon:    e.CentroidLon,
			CentroidLat:    e.CentroidLat,
			InfraScore:     infraScores[e.DongCode],
			SecurityScore:  securityScores[e.DongCode],
			TransportScore: transportScores[e.DongCode],
			QuietScore:     qy.Quiet,
			YouthScore:     qy.Youth,
		})
	}

	batchID := time.Now().UTC().Format(time.RFC3339)
	if err := s.scores.ReplaceAll(ctx, batchID, rows); err != nil {
		return "", fmt.Errorf("failed to write score batch: %w", err)
	}

	s.logger.Info("score batch written",
		zap.String("batch_id", batchID),
		zap.Int("dongs", len(rows)),
		zap.Int("infra_scored", len(infraScores)),
		zap.Int("security_scored", len(securityScores)),
		zap.Int("transport_scored", len(transportScores)),
		zap.Int("quiet_youth_scored", len(quietYouth)),
	)

	return batchID, nil
}
