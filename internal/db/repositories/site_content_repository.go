package repositories

import (
	"context"
	"errors"
	"fmt"

	"naebak/content-service/internal/constants"
	gormModels "naebak/content-service/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSingletonExists is returned when a second site settings row is attempted.
var ErrSingletonExists = errors.New("site settings row already exists")

// StaticPageRepository handles static_pages table operations using GORM
type StaticPageRepository struct {
	baseRepository[gormModels.StaticPage]
}

func NewStaticPageRepository(db *gorm.DB) *StaticPageRepository {
	return &StaticPageRepository{baseRepository[gormModels.StaticPage]{db: db, entity: "static page"}}
}

func (r *StaticPageRepository) ListActive(ctx context.Context) ([]gormModels.StaticPage, error) {
	var rows []gormModels.StaticPage
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Order("title ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list static pages: %w", err)
	}
	return rows, nil
}

func (r *StaticPageRepository) GetActiveByType(ctx context.Context, pageType constants.PageType) (*gormModels.StaticPage, error) {
	return r.findOne(ctx, "page_type = ? AND is_active = ?", pageType, true)
}

func (r *StaticPageRepository) GetByType(ctx context.Context, pageType constants.PageType) (*gormModels.StaticPage, error) {
	return r.findOne(ctx, "page_type = ?", pageType)
}

// BannerFilter narrows the banner list; empty fields are ignored.
type BannerFilter struct {
	BannerType       constants.BannerType
	RepresentativeID string
	IsDefault        *bool
}

// BannerRepository handles banners table operations using GORM
type BannerRepository struct {
	baseRepository[gormModels.Banner]
}

func NewBannerRepository(db *gorm.DB) *BannerRepository {
	return &BannerRepository{baseRepository[gormModels.Banner]{db: db, entity: "banner"}}
}

func (r *BannerRepository) ListActive(ctx context.Context, f BannerFilter) ([]gormModels.Banner, error) {
	var rows []gormModels.Banner

	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if f.BannerType != "" {
		q = q.Where("banner_type = ?", f.BannerType)
	}
	if f.RepresentativeID != "" {
		q = q.Where("representative_id = ?", f.RepresentativeID)
	}
	if f.IsDefault != nil {
		q = q.Where("is_default = ?", *f.IsDefault)
	}
	if err := q.Preload("Representative").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return rows, nil
}

// GetDefaultMain returns the active main banner flagged as default, or nil.
func (r *BannerRepository) GetDefaultMain(ctx context.Context) (*gormModels.Banner, error) {
	return r.findOne(ctx, "banner_type = ? AND is_default = ? AND is_active = ?", constants.BannerMain, true, true)
}

// SaveWithDefault inserts (create=true) or updates b. When b is the main
// default, every other main default is cleared in the same transaction. It
// reports how many banners lost the default flag.
func (r *BannerRepository) SaveWithDefault(ctx context.Context, b *gormModels.Banner, create bool) (int64, error) {
	var cleared int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.IsDefault && b.BannerType == constants.BannerMain {
			if err := lockTable(tx, "banners"); err != nil {
				return err
			}
			q := tx.Model(&gormModels.Banner{}).
				Where("banner_type = ? AND is_default = ?", constants.BannerMain, true)
			if b.ID != "" {
				q = q.Where("id <> ?", b.ID)
			}
			result := q.Update("is_default", false)
			if result.Error != nil {
				return fmt.Errorf("failed to clear default banners: %w", result.Error)
			}
			cleared = result.RowsAffected
		}

		var err error
		if create {
			err = tx.Omit(clause.Associations).Create(b).Error
		} else {
			err = tx.Omit(clause.Associations).Save(b).Error
		}
		if err != nil {
			return fmt.Errorf("failed to save banner: %w", err)
		}
		return nil
	})
	return cleared, err
}

// ColorRepository handles color_settings table operations using GORM
type ColorRepository struct {
	baseRepository[gormModels.ColorSettings]
}

func NewColorRepository(db *gorm.DB) *ColorRepository {
	return &ColorRepository{baseRepository[gormModels.ColorSettings]{db: db, entity: "color setting"}}
}

func (r *ColorRepository) ListActive(ctx context.Context) ([]gormModels.ColorSettings, error) {
	var rows []gormModels.ColorSettings
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("color_type ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	return rows, nil
}

func (r *ColorRepository) GetByType(ctx context.Context, colorType constants.ColorType) (*gormModels.ColorSettings, error) {
	return r.findOne(ctx, "color_type = ?", colorType)
}

// SiteSettingsRepository guards the single site_settings row.
type SiteSettingsRepository struct {
	baseRepository[gormModels.SiteSettings]
}

func NewSiteSettingsRepository(db *gorm.DB) *SiteSettingsRepository {
	return &SiteSettingsRepository{baseRepository[gormModels.SiteSettings]{db: db, entity: "site settings"}}
}

// Get returns the oldest row, or nil when none exists.
func (r *SiteSettingsRepository) Get(ctx context.Context) (*gormModels.SiteSettings, error) {
	var s gormModels.SiteSettings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch site settings: %w", err)
	}
	return &s, nil
}

// GetOrCreate returns the existing row or inserts defaults.
func (r *SiteSettingsRepository) GetOrCreate(ctx context.Context, defaults gormModels.SiteSettings) (*gormModels.SiteSettings, bool, error) {
	var (
		out     gormModels.SiteSettings
		created bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockTable(tx, "site_settings"); err != nil {
			return err
		}
		err := tx.Order("created_at ASC").First(&out).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to fetch site settings: %w", err)
		}
		out = defaults
		if err := tx.Create(&out).Error; err != nil {
			return fmt.Errorf("failed to create site settings: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

// CreateSingleton inserts s only when the table is empty.
func (r *SiteSettingsRepository) CreateSingleton(ctx context.Context, s *gormModels.SiteSettings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockTable(tx, "site_settings"); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&gormModels.SiteSettings{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count site settings: %w", err)
		}
		if count > 0 {
			return ErrSingletonExists
		}
		if err := tx.Create(s).Error; err != nil {
			return fmt.Errorf("failed to create site settings: %w", err)
		}
		return nil
	})
}

// FAQRepository handles faqs table operations using GORM
type FAQRepository struct {
	baseRepository[gormModels.FAQ]
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{baseRepository[gormModels.FAQ]{db: db, entity: "faq"}}
}

func (r *FAQRepository) ListActive(ctx context.Context, category string) ([]gormModels.FAQ, error) {
	var rows []gormModels.FAQ

	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("category ASC").Order("display_order ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return rows, nil
}

// EventFilter narrows the public event list.
type EventFilter struct {
	RepresentativeID string
	EventType        constants.EventType
}

// EventRepository handles events table operations using GORM
type EventRepository struct {
	baseRepository[gormModels.Event]
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{baseRepository[gormModels.Event]{db: db, entity: "event"}}
}

// ListVisible returns active, approved events newest first.
func (r *EventRepository) ListVisible(ctx context.Context, f EventFilter, offset, limit int) ([]gormModels.Event, int64, error) {
	var (
		rows  []gormModels.Event
		total int64
	)

	q := r.db.WithContext(ctx).
		Model(&gormModels.Event{}).
		Where("is_active = ? AND admin_approved = ?", true, true)
	if f.RepresentativeID != "" {
		q = q.Where("representative_id = ?", f.RepresentativeID)
	}
	if f.EventType != "" {
		q = q.Where("event_type = ?", f.EventType)
	}
	q = q.Session(&gorm.Session{})

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}
	err := q.Preload("Representative").
		Order("event_date DESC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	return rows, total, nil
}

// GetVisibleByID hides unapproved events from public reads.
func (r *EventRepository) GetVisibleByID(ctx context.Context, id string) (*gormModels.Event, error) {
	return r.findOne(ctx, "id = ? AND is_active = ? AND admin_approved = ?", id, true, true)
}
