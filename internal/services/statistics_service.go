package services

import (
	"context"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/metrics"
	"naebak/content-service/internal/models/dtos/responses"

	"golang.org/x/sync/errgroup"
)

// StatisticsService aggregates the active representative population.
type StatisticsService struct {
	repo    *repositories.StatisticsRepository
	cache   *common.ReadThroughCache
	metrics *metrics.MetricsRegistry
}

func NewStatisticsService(repo *repositories.StatisticsRepository, cache *common.ReadThroughCache, metricsReg *metrics.MetricsRegistry) *StatisticsService {
	return &StatisticsService{repo: repo, cache: cache, metrics: metricsReg}
}

func (s *StatisticsService) Get(ctx context.Context) (*responses.StatisticsResponse, error) {
	var out responses.StatisticsResponse

	err := s.cache.Fetch(ctx, string(constants.CachePrefixStatistics), constants.TTLStatistics, &out, func(ctx context.Context) (any, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// compute runs the three aggregates concurrently.
func (s *StatisticsService) compute(ctx context.Context) (*responses.StatisticsResponse, error) {
	var (
		summary *repositories.RepresentativeSummary
		byGov   []repositories.GovernorateCount
		refs    *repositories.ReferenceCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.repo.Summary(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		byGov, err = s.repo.GovernorateBreakdown(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		refs, err = s.repo.ReferenceCounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storageError(err)
	}

	govStats := make([]responses.GovernorateStat, 0, len(byGov))
	for _, row := range byGov {
		govStats = append(govStats, responses.GovernorateStat{Name: row.Name, Count: row.Count})
	}

	if s.metrics != nil {
		s.metrics.RepresentativesActive.Set(float64(summary.Total))
	}

	return &responses.StatisticsResponse{
		TotalRepresentatives:    summary.Total,
		TotalCandidates:         summary.Candidates,
		TotalElected:            summary.Elected,
		TotalFormer:             summary.Former,
		TotalDistinguished:      summary.Distinguished,
		TotalGovernorates:       refs.Governorates,
		TotalDistricts:          refs.Districts,
		TotalParties:            refs.Parties,
		AverageRating:           roundTo(summary.AverageRating, 2),
		TotalSolvedComplaints:   summary.SolvedComplaints,
		TotalReceivedComplaints: summary.ReceivedComplaints,
		GovernorateStats:        govStats,
		GenderStats:             responses.GenderStats{Male: summary.Male, Female: summary.Female},
		StatusStats: responses.StatusStats{
			Candidate: summary.Candidates,
			Elected:   summary.Elected,
			Former:    summary.Former,
		},
	}, nil
}
