package repositories

import (
	"context"
	"fmt"
	"time"

	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/metrics"

	"github.com/jmoiron/sqlx"
)

// RepresentativeSummary is the single-row result of the summary aggregate.
type RepresentativeSummary struct {
	Total              int     `db:"total"`
	Candidates         int     `db:"candidates"`
	Elected            int     `db:"elected"`
	Former             int     `db:"former"`
	Distinguished      int     `db:"distinguished"`
	Male               int     `db:"male"`
	Female             int     `db:"female"`
	AverageRating      float64 `db:"average_rating"`
	SolvedComplaints   int64   `db:"solved_complaints"`
	ReceivedComplaints int64   `db:"received_complaints"`
}

type GovernorateCount struct {
	Name  string `db:"name"`
	Count int    `db:"count"`
}

type ReferenceCounts struct {
	Governorates int `db:"governorates"`
	Districts    int `db:"districts"`
	Parties      int `db:"parties"`
}

// StatisticsRepository runs the hand-written aggregate queries through sqlx.
type StatisticsRepository struct {
	db      *sqlx.DB
	metrics *metrics.MetricsRegistry
}

// NewStatisticsRepository accepts a nil metrics registry.
func NewStatisticsRepository(db *sqlx.DB, metricsReg *metrics.MetricsRegistry) *StatisticsRepository {
	return &StatisticsRepository{db: db, metrics: metricsReg}
}

func (r *StatisticsRepository) Summary(ctx context.Context) (*RepresentativeSummary, error) {
	var s RepresentativeSummary
	err := r.observe("representative_summary", func() error {
		return r.db.GetContext(ctx, &s, r.db.Rebind(constants.RepresentativeSummaryQuery), true)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute representative summary: %w", err)
	}
	return &s, nil
}

func (r *StatisticsRepository) GovernorateBreakdown(ctx context.Context) ([]GovernorateCount, error) {
	rows := []GovernorateCount{}
	err := r.observe("governorate_breakdown", func() error {
		return r.db.SelectContext(ctx, &rows, r.db.Rebind(constants.GovernorateBreakdownQuery), true, true)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute governorate breakdown: %w", err)
	}
	return rows, nil
}

func (r *StatisticsRepository) ReferenceCounts(ctx context.Context) (*ReferenceCounts, error) {
	var c ReferenceCounts
	err := r.observe("reference_counts", func() error {
		return r.db.GetContext(ctx, &c, r.db.Rebind(constants.ReferenceCountsQuery), true, true, true)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count reference data: %w", err)
	}
	return &c, nil
}

// Probe runs the health check query.
func (r *StatisticsRepository) Probe(ctx context.Context) (int64, error) {
	var n int64
	err := r.observe("health_probe", func() error {
		return r.db.GetContext(ctx, &n, constants.HealthProbeQuery)
	})
	if err != nil {
		return 0, fmt.Errorf("health probe failed: %w", err)
	}
	return n, nil
}

func (r *StatisticsRepository) observe(queryType string, fn func() error) error {
	start := time.Now()
	err := fn()
	if r.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		r.metrics.DBQueriesTotal.WithLabelValues(queryType, outcome).Inc()
		r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
	}
	return err
}
