package gorm

import (
	"time"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
)

// BaseModel carries the columns every content table shares.
type BaseModel struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
	IsActive  bool      `gorm:"column:is_active;not null;index"`
}

// BeforeCreate assigns a UUID so inserts work the same on postgres and sqlite.
func (m *BaseModel) BeforeCreate(tx *gormlib.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// AllModels lists every table in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Governorate{},
		&District{},
		&PoliticalParty{},
		&Representative{},
		&RepresentativeImage{},
		&Achievement{},
		&News{},
		&Event{},
		&StaticPage{},
		&Banner{},
		&ColorSettings{},
		&SiteSettings{},
		&FAQ{},
	}
}
