package services

import (
	"context"
	"testing"

	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/repositories"
	gormModels "naebak/content-service/internal/models/gorm"

	dto "github.com/prometheus/client_model/go"
)

func TestStatistics_Aggregates(t *testing.T) {
	f := newFixture(t)
	svc := NewStatisticsService(repositories.NewStatisticsRepository(f.sqlx, f.metrics), f.cache, f.metrics)

	f.addRepresentative(t, "أحمد علي", func(r *gormModels.Representative) {
		r.Rating = 4.5
		r.Status = constants.StatusElected
		r.IsDistinguished = true
		r.SolvedComplaints = 3
		r.ReceivedComplaints = 4
	})
	f.addRepresentative(t, "منى حسن", func(r *gormModels.Representative) {
		r.Rating = 3.2
		r.Gender = constants.GenderFemale
		r.DistrictID = f.gizaFirst.ID
		r.SolvedComplaints = 1
		r.ReceivedComplaints = 2
	})
	f.addRepresentative(t, "غير نشط", func(r *gormModels.Representative) {
		r.Rating = 1
		r.IsActive = false
	})

	stats, err := svc.Get(bg)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}

	if stats.TotalRepresentatives != 2 || stats.TotalElected != 1 || stats.TotalCandidates != 1 || stats.TotalFormer != 0 {
		t.Errorf("unexpected status totals %+v", stats)
	}
	if stats.TotalDistinguished != 1 {
		t.Errorf("expected 1 distinguished, got %d", stats.TotalDistinguished)
	}
	if stats.AverageRating != 3.85 {
		t.Errorf("expected average rating 3.85, got %v", stats.AverageRating)
	}
	if stats.GenderStats.Male != 1 || stats.GenderStats.Female != 1 {
		t.Errorf("unexpected gender stats %+v", stats.GenderStats)
	}
	if stats.TotalSolvedComplaints != 4 || stats.TotalReceivedComplaints != 6 {
		t.Errorf("unexpected complaint sums %d/%d", stats.TotalSolvedComplaints, stats.TotalReceivedComplaints)
	}
	if stats.TotalGovernorates != 2 || stats.TotalDistricts != 2 || stats.TotalParties != 1 {
		t.Errorf("unexpected reference counts %+v", stats)
	}
	if len(stats.GovernorateStats) != 2 {
		t.Fatalf("expected 2 governorate rows, got %+v", stats.GovernorateStats)
	}
	for _, g := range stats.GovernorateStats {
		if g.Count != 1 {
			t.Errorf("expected one representative in %s, got %d", g.Name, g.Count)
		}
	}

	var gauge dto.Metric
	if err := f.metrics.RepresentativesActive.Write(&gauge); err != nil {
		t.Fatalf("read gauge: %v", err)
	}
	if gauge.GetGauge().GetValue() != 2 {
		t.Errorf("expected active gauge 2, got %v", gauge.GetGauge().GetValue())
	}
}

func TestStatistics_EmptyAndCached(t *testing.T) {
	f := newFixture(t)
	svc := NewStatisticsService(repositories.NewStatisticsRepository(f.sqlx, nil), f.cache, nil)

	empty, err := svc.Get(bg)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if empty.TotalRepresentatives != 0 || empty.AverageRating != 0 || len(empty.GovernorateStats) != 0 {
		t.Errorf("expected zeroed statistics, got %+v", empty)
	}

	f.addRepresentative(t, "أحمد علي", nil)
	cached, err := svc.Get(bg)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if cached.TotalRepresentatives != 0 {
		t.Errorf("expected cached value until invalidation, got %d", cached.TotalRepresentatives)
	}

	f.cache.Invalidate(string(constants.CachePrefixStatistics))
	fresh, err := svc.Get(bg)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if fresh.TotalRepresentatives != 1 {
		t.Errorf("expected recomputed total 1, got %d", fresh.TotalRepresentatives)
	}
}

func TestStatistics_CanceledCallerStillComputes(t *testing.T) {
	f := newFixture(t)
	svc := NewStatisticsService(repositories.NewStatisticsRepository(f.sqlx, nil), f.cache, nil)
	f.addRepresentative(t, "أحمد علي", nil)

	ctx, cancel := context.WithCancel(bg)
	cancel()

	stats, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("expected statistics despite canceled caller, got %v", err)
	}
	if stats.TotalRepresentatives != 1 {
		t.Errorf("expected total 1, got %d", stats.TotalRepresentatives)
	}
}
