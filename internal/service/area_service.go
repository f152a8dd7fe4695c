package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/nomadlab/seoulbang-backend-go/internal/models"
	"github.com/nomadlab/seoulbang-backend-go/internal/scoring"
	"github.com/nomadlab/seoulbang-backend-go/internal/stats"
)

// commuteMarginFactor gives 20% slack over the user's commute ceiling before
// a dong is filtered out.
const commuteMarginFactor = 1.2

// AreaService is the Area Recommender: it ranks neighborhoods for a user
// profile against the current score batch and the live listings store.
type AreaService struct {
	scores     ScoreStore
	properties PropertyStore
	logger     *zap.Logger
}

// NewAreaService creates a new area service
func NewAreaService(scores ScoreStore, properties PropertyStore, logger *zap.Logger) *AreaService {
	return &AreaService{
		scores:     scores,
		properties: properties,
		logger:     logger,
	}
}

// scoredDong keeps unrounded values until the response is assembled so
// district aggregates are computed on full precision.
type scoredDong struct {
	neighborhood models.Neighborhood
	commuteMin   float64
	commuteScore float64
	totalScore   float64
	count        int
	propertyIDs  []int64
}

// Recommend ranks neighborhoods grouped by district for one user profile.
func (s *AreaService) Recommend(ctx context.Context, user models.UserProfile) (*models.AreaRecommendResponse, error) {
	if len(user.JobLocation) != 2 {
		return nil, fmt.Errorf("%w: job_location must be [lon, lat]", ErrInvalidInput)
	}
	if user.MaxCommuteMin <= 0 {
		return nil, fmt.Errorf("%w: max_commute_min must be positive", ErrInvalidInput)
	}
	priority, err := scoring.ResolvePriority(user.Priority, user.Age, user.Gender)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	weights, err := scoring.PositionWeights(len(priority))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	snapshot, err := s.scores.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read score snapshot: %w", err)
	}
	neighborhoods, err := s.scores.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read score table: %w", err)
	}

	// Commute estimate from each centroid, then the margin filter
	jobLon, jobLat := user.JobLocation[0], user.JobLocation[1]
	profile := scoring.ProfileFor(scoring.AreaTransportMode(user.Transportation))
	threshold := user.MaxCommuteMin * commuteMarginFactor

	var survivors []scoredDong
	for _, n := range neighborhoods {
		commuteMin := scoring.CommuteMinutes(n.CentroidLat, n.CentroidLon, jobLat, jobLon, profile)
		if commuteMin > threshold {
			continue
		}
		survivors = append(survivors, scoredDong{neighborhood: n, commuteMin: commuteMin})
	}

	// Commute score is min-max normalized across the surviving set only
	commutes := make([]float64, len(survivors))
	for i := range survivors {
		commutes[i] = survivors[i].commuteMin
	}
	for i, norm := range stats.Normalize(commutes) {
		survivors[i].commuteScore = 1 - norm
	}

	adjustments := scoring.Adjustments(user.Age, user.Gender)
	for i := range survivors {
		var total float64
		for pos, key := range priority {
			total += s.indicatorValue(&survivors[i], key) * weights[pos] * adjustments[key]
		}
		survivors[i].totalScore = total
	}

	// Budget-matching listings per dong; dongs with none are dropped
	refs, err := s.properties.FindCandidates(ctx, user.Budget)
	if err != nil {
		return nil, fmt.Errorf("failed to query listing candidates: %w", err)
	}
	idsByDong := make(map[string][]int64)
	for _, ref := range refs {
		idsByDong[ref.DongCode] = append(idsByDong[ref.DongCode], ref.ID)
	}

	byGu := make(map[string][]scoredDong)
	var guOrder []string
	for _, d := range survivors {
		ids := idsByDong[d.neighborhood.DongCode]
		if len(ids) == 0 {
			continue
		}
		d.count = len(ids)
		d.propertyIDs = ids
		code := d.neighborhood.GuCode
		if _, seen := byGu[code]; !seen {
			guOrder = append(guOrder, code)
		}
		byGu[code] = append(byGu[code], d)
	}

	groups := make([]models.GuRecommendation, 0, len(byGu))
	for _, guCode := range guOrder {
		groups = append(groups, s.buildGroup(byGu[guCode]))
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].AvgTotalScore != groups[j].AvgTotalScore {
			return groups[i].AvgTotalScore > groups[j].AvgTotalScore
		}
		return groups[i].TotalPropertyCount > groups[j].TotalPropertyCount
	})

	s.logger.Debug("area recommendation computed",
		zap.String("batch_id", snapshot.BatchID),
		zap.Int("dongs_in", len(neighborhoods)),
		zap.Int("dongs_out", len(survivors)),
		zap.Int("districts", len(groups)),
	)

	return &models.AreaRecommendResponse{
		BatchID:         snapshot.BatchID,
		RecommendedArea: groups,
	}, nil
}

func (s *AreaService) indicatorValue(d *scoredDong, key string) float64 {
	switch key {
	case scoring.KeyInfra:
		return d.neighborhood.InfraScore
	case scoring.KeySafety:
		return d.neighborhood.SecurityScore
	case scoring.KeyTransport:
		return d.neighborhood.TransportScore
	case scoring.KeyQuiet:
		return d.neighborhood.QuietScore
	case scoring.KeyYouth:
		return d.neighborhood.YouthScore
	case scoring.KeyCommute:
		return d.commuteScore
	}
	return 0
}

func (s *AreaService) buildGroup(dongs []scoredDong) models.GuRecommendation {
	sort.SliceStable(dongs, func(i, j int) bool {
		if dongs[i].totalScore != dongs[j].totalScore {
			return dongs[i].totalScore > dongs[j].totalScore
		}
		if dongs[i].count != dongs[j].count {
			return dongs[i].count > dongs[j].count
		}
		return dongs[i].commuteMin < dongs[j].commuteMin
	})

	var totalCount int
	var sumTotal, sumInfra, sumSecurity, sumQuiet, sumYouth, sumTransport, sumCommute float64
	dongList := make([]models.DongRecommendation, 0, len(dongs))
	for _, d := range dongs {
		n := d.neighborhood
		totalCount += d.count
		sumTotal += d.totalScore
		sumInfra += n.InfraScore
		sumSecurity += n.SecurityScore
		sumQuiet += n.QuietScore
		sumYouth += n.YouthScore
		sumTransport += n.TransportScore
		sumCommute += d.commuteScore

		dongList = append(dongList, models.DongRecommendation{
			Dong:          n.DongName,
			DongCode:      n.DongCode,
			TotalScore:    stats.RoundTo(d.totalScore, 3),
			PropertyCount: d.count,
			CommuteMin:    stats.RoundTo(d.commuteMin, 2),
			IndicatorScores: models.IndicatorScores{
				InfraScore:     stats.RoundTo(n.InfraScore, 3),
				SecurityScore:  stats.RoundTo(n.SecurityScore, 3),
				QuietScore:     stats.RoundTo(n.QuietScore, 3),
				YouthScore:     stats.RoundTo(n.YouthScore, 3),
				TransportScore: stats.RoundTo(n.TransportScore, 3),
				CommuteScore:   stats.RoundTo(d.commuteScore, 3),
			},
			PropertyIDs: d.propertyIDs,
		})
	}

	count := float64(len(dongs))
	return models.GuRecommendation{
		Gu:                 dongs[0].neighborhood.GuName,
		GuCode:             dongs[0].neighborhood.GuCode,
		AvgTotalScore:      stats.RoundTo(sumTotal/count, 3),
		TotalPropertyCount: totalCount,
		AvgScores: models.IndicatorScores{
			InfraScore:     stats.RoundTo(sumInfra/count, 3),
			SecurityScore:  stats.RoundTo(sumSecurity/count, 3),
			QuietScore:     stats.RoundTo(sumQuiet/count, 3),
			YouthScore:     stats.RoundTo(sumYouth/count, 3),
			TransportScore: stats.RoundTo(sumTransport/count, 3),
			CommuteScore:   stats.RoundTo(sumCommute/count, 3),
		},
		DongList: dongList,
	}
}
