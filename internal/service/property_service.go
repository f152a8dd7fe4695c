package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
	"github.com/nomadlab/seoulbang-backend-go/internal/scoring"
	"github.com/nomadlab/seoulbang-backend-go/internal/spatial"
	"github.com/nomadlab/seoulbang-backend-go/internal/stats"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// rentLogBase makes the affordability bonus drop one point per 7% rent
// increase; the bonus dominates the [0,1]-scaled indicator terms on purpose.
const rentLogBase = 1.07

// PropertyService is the Property Recommender: it ranks listings inside a
// chosen neighborhood using live proximity aggregates and distance decay.
type PropertyService struct {
	properties PropertyStore
	proximity  ProximityStore
	logger     *zap.Logger
}

// NewPropertyService creates a new property service
func NewPropertyService(properties PropertyStore, proximity ProximityStore, logger *zap.Logger) *PropertyService {
	return &PropertyService{
		properties: properties,
		proximity:  proximity,
		logger:     logger,
	}
}

// Recommend scores and paginates the listings of one neighborhood.
func (s *PropertyService) Recommend(ctx context.Context, req models.PropertyRecommendRequest) (*models.PropertyRecommendResponse, error) {
	page := req.Page
	if page < 1 {
		page = defaultPage
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	if len(req.PropertyIDs) == 0 {
		return &models.PropertyRecommendResponse{
			Total:      0,
			TotalPages: 0,
			Page:       page,
			PageSize:   pageSize,
			Results:    []models.PropertyRecommendation{},
		}, nil
	}

	user := req.UserInput
	if len(user.JobLocation) != 2 {
		return nil, fmt.Errorf("%w: job_location must be [lon, lat]", ErrInvalidInput)
	}
	priority, err := scoring.ResolvePriority(user.Priority, user.Age, user.Gender)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	weights, err := scoring.PositionWeights(len(priority))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	adjustments := scoring.Adjustments(user.Age, user.Gender)

	properties, err := s.properties.GetByIDs(ctx, req.PropertyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}

	// The four category lookups are independent read-only aggregations
	var cctvStats, infraStats, busStats, subwayStats map[int64]models.ProximityStat
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cctvStats, err = s.proximity.Stats(gctx, models.FacilityCCTV, req.PropertyIDs)
		return err
	})
	g.Go(func() error {
		var err error
		infraStats, err = s.proximity.Stats(gctx, models.FacilityRestaurant, req.PropertyIDs)
		return err
	})
	g.Go(func() error {
		var err error
		busStats, err = s.proximity.Stats(gctx, models.FacilityBusStop, req.PropertyIDs)
		return err
	})
	g.Go(func() error {
		var err error
		subwayStats, err = s.proximity.Stats(gctx, models.FacilitySubway, req.PropertyIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load proximity stats: %w", err)
	}

	profile := scoring.ProfileFor(scoring.FirstTransportMode(user.Transportation))
	jobLon, jobLat := user.JobLocation[0], user.JobLocation[1]

	results := make([]models.PropertyRecommendation, 0, len(properties))
	for _, p := range properties {
		commuteMin := s.commuteMinutes(p, jobLat, jobLon, profile)

		var commuteSeconds *float64
		if commuteMin != nil {
			seconds := *commuteMin * 60
			commuteSeconds = &seconds
		}

		infraScore := scoring.DecayScoreOpt(avgDistance(infraStats, p.ID), scoring.DecayInfraMeters)
		securityScore := scoring.DecayScoreOpt(avgDistance(cctvStats, p.ID), scoring.DecaySecurityMeters)
		transportScore := scoring.DecayScoreOpt(avgDistance(busStats, p.ID), scoring.DecayTransportMeters)
		commuteScore := scoring.DecayScoreOpt(commuteSeconds, scoring.DecayCommuteSeconds)

		// Quiet and youth are neighborhood-level signals inherited from the
		// chosen dong's aggregates
		var quietScore, youthScore float64
		if p.AdministrativeCode == req.DongCode {
			quietScore = req.QuietScore
			youthScore = req.YouthScore
		}

		base := map[string]float64{
			scoring.KeyInfra:     infraScore,
			scoring.KeySafety:    securityScore,
			scoring.KeyTransport: transportScore,
			scoring.KeyQuiet:     quietScore,
			scoring.KeyYouth:     youthScore,
			scoring.KeyCommute:   commuteScore,
		}

		var total float64
		for pos, key := range priority {
			total += base[key] * weights[pos] * adjustments[key]
		}
		total += rentScore(p.MonthlyRentCost)

		results = append(results, models.PropertyRecommendation{
			Property:           p,
			Score:              stats.RoundTo(total, 5),
			CommuteMin:         commuteMin,
			InfraScore:         infraScore,
			SecurityScore:      securityScore,
			TransportScore:     transportScore,
			QuietScore:         quietScore,
			YouthScore:         youthScore,
			CommuteScore:       commuteScore,
			CCTVCount:          cctvStats[p.ID].Count,
			InfraCount:         infraStats[p.ID].Count,
			BusCount:           busStats[p.ID].Count,
			SubwayCount:        subwayStats[p.ID].Count,
			AvgCCTVDistance:    avgDistance(cctvStats, p.ID),
			AvgInfraDistance:   avgDistance(infraStats, p.ID),
			AvgBusStopDistance: avgDistance(busStats, p.ID),
			AvgSubwayDistance:  avgDistance(subwayStats, p.ID),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	total := len(results)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &models.PropertyRecommendResponse{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
		Results:    results[start:end],
	}, nil
}

// commuteMinutes estimates the listing's commute, rounded to 2 decimals. An
// unparseable location is logged and yields nil, never an error.
func (s *PropertyService) commuteMinutes(p models.Property, jobLat, jobLon float64, profile scoring.TransportProfile) *float64 {
	lon, lat, err := spatial.ParsePointWKT(p.LocationWKT)
	if err != nil {
		s.logger.Warn("unparseable listing location",
			zap.Int64("property_id", p.ID),
			zap.String("location", p.LocationWKT),
			zap.Error(err),
		)
		return nil
	}
	minutes := stats.RoundTo(scoring.CommuteMinutes(lat, lon, jobLat, jobLon, profile), 2)
	return &minutes
}

// rentScore is the affordability bonus: 100 at zero rent, decreasing by one
// point per 7% rent growth, floored at 0. Listings without a known rent get
// no bonus.
func rentScore(monthlyRent *int64) float64 {
	if monthlyRent == nil {
		return 0
	}
	score := 100 - math.Log(float64(*monthlyRent)+1)/math.Log(rentLogBase)
	if score < 0 {
		return 0
	}
	return score
}

func avgDistance(stats map[int64]models.ProximityStat, id int64) *float64 {
	s, ok := stats[id]
	if !ok {
		return nil
	}
	d := s.AvgDistance
	return &d
}
