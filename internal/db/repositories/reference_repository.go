package repositories

import (
	"context"
	"fmt"

	"naebak/content-service/internal/db/filters"
	gormModels "naebak/content-service/internal/models/gorm"

	"gorm.io/gorm"
)

// GovernorateRepository handles governorates table operations using GORM
type GovernorateRepository struct {
	baseRepository[gormModels.Governorate]
}

func NewGovernorateRepository(db *gorm.DB) *GovernorateRepository {
	return &GovernorateRepository{baseRepository[gormModels.Governorate]{db: db, entity: "governorate"}}
}

// ListActive applies the filter and ordering clauses to active governorates.
func (r *GovernorateRepository) ListActive(ctx context.Context, f filters.GovernorateFilter, order []string) ([]gormModels.Governorate, error) {
	var rows []gormModels.Governorate

	q := f.Apply(r.db.WithContext(ctx).Model(&gormModels.Governorate{}).Where("governorates.is_active = ?", true))
	for _, o := range order {
		q = q.Order(o)
	}
	if err := q.Order("governorates.id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list governorates: %w", err)
	}
	return rows, nil
}

func (r *GovernorateRepository) GetByName(ctx context.Context, name string) (*gormModels.Governorate, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *GovernorateRepository) GetByCode(ctx context.Context, code string) (*gormModels.Governorate, error) {
	return r.findOne(ctx, "code = ?", code)
}

// NameTaken and CodeTaken ignore excludeID so updates can keep their own values.
func (r *GovernorateRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	return r.exists(ctx, "name = ? AND id <> ?", name, excludeID)
}

func (r *GovernorateRepository) CodeTaken(ctx context.Context, code, excludeID string) (bool, error) {
	return r.exists(ctx, "code = ? AND id <> ?", code, excludeID)
}

// DistrictRepository handles districts table operations using GORM
type DistrictRepository struct {
	baseRepository[gormModels.District]
}

func NewDistrictRepository(db *gorm.DB) *DistrictRepository {
	return &DistrictRepository{baseRepository[gormModels.District]{db: db, entity: "district"}}
}

// ListActive orders by governorate name then district number.
func (r *DistrictRepository) ListActive(ctx context.Context, f filters.DistrictFilter) ([]gormModels.District, error) {
	var rows []gormModels.District

	q := f.Apply(r.db.WithContext(ctx).
		Model(&gormModels.District{}).
		Joins("JOIN governorates ON governorates.id = districts.governorate_id").
		Where("districts.is_active = ?", true))

	err := q.Preload("Governorate").
		Order("governorates.name ASC").
		Order("districts.number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list districts: %w", err)
	}
	return rows, nil
}

func (r *DistrictRepository) GetActiveWithGovernorate(ctx context.Context, id string) (*gormModels.District, error) {
	d, err := r.GetActiveByID(ctx, id)
	if err != nil || d == nil {
		return d, err
	}
	return d, r.loadGovernorate(ctx, d)
}

// GetWithGovernorate ignores is_active; used to render write responses.
func (r *DistrictRepository) GetWithGovernorate(ctx context.Context, id string) (*gormModels.District, error) {
	d, err := r.GetByID(ctx, id)
	if err != nil || d == nil {
		return d, err
	}
	return d, r.loadGovernorate(ctx, d)
}

func (r *DistrictRepository) loadGovernorate(ctx context.Context, d *gormModels.District) error {
	var g gormModels.Governorate
	if err := r.db.WithContext(ctx).Where("id = ?", d.GovernorateID).First(&g).Error; err != nil {
		return fmt.Errorf("failed to load governorate for district %s: %w", d.ID, err)
	}
	d.Governorate = &g
	return nil
}

func (r *DistrictRepository) GetByNumber(ctx context.Context, governorateID string, number int) (*gormModels.District, error) {
	return r.findOne(ctx, "governorate_id = ? AND number = ?", governorateID, number)
}

// NumberTaken enforces number uniqueness inside one governorate.
func (r *DistrictRepository) NumberTaken(ctx context.Context, governorateID string, number int, excludeID string) (bool, error) {
	return r.exists(ctx, "governorate_id = ? AND number = ? AND id <> ?", governorateID, number, excludeID)
}

// PartyRepository handles political_parties table operations using GORM
type PartyRepository struct {
	baseRepository[gormModels.PoliticalParty]
}

func NewPartyRepository(db *gorm.DB) *PartyRepository {
	return &PartyRepository{baseRepository[gormModels.PoliticalParty]{db: db, entity: "political party"}}
}

func (r *PartyRepository) ListActive(ctx context.Context, f filters.PartyFilter) ([]gormModels.PoliticalParty, error) {
	var rows []gormModels.PoliticalParty

	err := f.Apply(r.db.WithContext(ctx).Model(&gormModels.PoliticalParty{}).Where("political_parties.is_active = ?", true)).
		Order("political_parties.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return rows, nil
}

func (r *PartyRepository) GetByName(ctx context.Context, name string) (*gormModels.PoliticalParty, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *PartyRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	return r.exists(ctx, "name = ? AND id <> ?", name, excludeID)
}
