package repositories

import (
	"context"
	"errors"
	"fmt"

	"naebak/content-service/internal/db/filters"
	gormModels "naebak/content-service/internal/models/gorm"

	"gorm.io/gorm"
)

// RepresentativeQuery describes one page of publicly visible representatives.
type RepresentativeQuery struct {
	Filter filters.RepresentativeFilter
	// Terms must each match a profile text field.
	Terms string
	// Anywhere matches profile text or district/governorate/party names.
	Anywhere string
	Order    []string
	Offset   int
	Limit    int
}

// ListStatsRow holds the counters shown above the representative list.
type ListStatsRow struct {
	TotalCount         int64 `gorm:"column:total_count"`
	DistinguishedCount int64 `gorm:"column:distinguished_count"`
	MaleCount          int64 `gorm:"column:male_count"`
	FemaleCount        int64 `gorm:"column:female_count"`
}

// RepresentativeRepository handles representatives table operations using GORM
type RepresentativeRepository struct {
	baseRepository[gormModels.Representative]
}

func NewRepresentativeRepository(db *gorm.DB) *RepresentativeRepository {
	return &RepresentativeRepository{baseRepository[gormModels.Representative]{db: db, entity: "representative"}}
}

// visible builds the shared WHERE clause. The returned session is safe to
// branch into count and page queries.
func (r *RepresentativeRepository) visible(ctx context.Context, q RepresentativeQuery) *gorm.DB {
	db := filters.Visible(r.db.WithContext(ctx).Model(&gormModels.Representative{}))
	db = q.Filter.Apply(db)
	if q.Terms != "" {
		db = filters.MatchAllTerms(db, q.Terms)
	}
	if q.Anywhere != "" {
		db = filters.MatchAnywhere(db, q.Anywhere)
	}
	return db.Session(&gorm.Session{})
}

// ListVisible returns one page with party and district.governorate preloaded.
func (r *RepresentativeRepository) ListVisible(ctx context.Context, q RepresentativeQuery) ([]gormModels.Representative, error) {
	var rows []gormModels.Representative

	db := r.visible(ctx, q)
	for _, o := range q.Order {
		db = db.Order(o)
	}
	err := db.Order("representatives.id ASC").
		Preload("Party").
		Preload("District.Governorate").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list representatives: %w", err)
	}
	return rows, nil
}

func (r *RepresentativeRepository) CountVisible(ctx context.Context, q RepresentativeQuery) (int64, error) {
	var total int64
	if err := r.visible(ctx, q).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count representatives: %w", err)
	}
	return total, nil
}

// StatsVisible counts the whole filtered set, not just the current page.
func (r *RepresentativeRepository) StatsVisible(ctx context.Context, q RepresentativeQuery) (ListStatsRow, error) {
	var stats ListStatsRow

	err := r.visible(ctx, q).
		Select(`COUNT(*) AS total_count,
			COALESCE(SUM(CASE WHEN representatives.is_distinguished THEN 1 ELSE 0 END), 0) AS distinguished_count,
			COALESCE(SUM(CASE WHEN representatives.gender = 'male' THEN 1 ELSE 0 END), 0) AS male_count,
			COALESCE(SUM(CASE WHEN representatives.gender = 'female' THEN 1 ELSE 0 END), 0) AS female_count`).
		Scan(&stats).Error
	if err != nil {
		return stats, fmt.Errorf("failed to compute representative list stats: %w", err)
	}
	return stats, nil
}

// GetVisibleBySlug loads the full public profile: relations plus active
// children, and only approved events.
func (r *RepresentativeRepository) GetVisibleBySlug(ctx context.Context, slug string) (*gormModels.Representative, error) {
	return r.loadProfile(ctx, slug, true)
}

// GetProfileBySlug loads the same profile without the visibility check, for
// responses to admin writes.
func (r *RepresentativeRepository) GetProfileBySlug(ctx context.Context, slug string) (*gormModels.Representative, error) {
	return r.loadProfile(ctx, slug, false)
}

func (r *RepresentativeRepository) loadProfile(ctx context.Context, slug string, visibleOnly bool) (*gormModels.Representative, error) {
	var rep gormModels.Representative

	db := r.db.WithContext(ctx).Model(&gormModels.Representative{})
	if visibleOnly {
		db = filters.Visible(db)
	}
	err := db.Where("representatives.slug = ?", slug).
		Preload("Party").
		Preload("District.Governorate").
		Preload("AdditionalImages", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("display_order ASC").Order("created_at ASC")
		}).
		Preload("AchievementList", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("date DESC").Order("display_order ASC")
		}).
		Preload("News", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("published_date DESC")
		}).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND admin_approved = ?", true, true).Order("event_date DESC")
		}).
		First(&rep).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch representative %s: %w", slug, err)
	}
	return &rep, nil
}

// GetBySlug ignores visibility; used by writes.
func (r *RepresentativeRepository) GetBySlug(ctx context.Context, slug string) (*gormModels.Representative, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *RepresentativeRepository) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	return r.exists(ctx, "slug = ? AND id <> ?", slug, excludeID)
}
