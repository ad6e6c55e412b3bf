package gorm

import (
	"time"

	"naebak/content-service/internal/constants"

	"gorm.io/datatypes"
)

type RepresentativeImage struct {
	BaseModel
	RepresentativeID string `gorm:"column:representative_id;type:uuid;not null;index"`
	Image            string `gorm:"column:image;not null"`
	Caption          string `gorm:"column:caption;type:varchar(255)"`
	Order            int    `gorm:"column:display_order;not null"`
}

// TableName specifies the table name for GORM
func (RepresentativeImage) TableName() string {
	return "representative_images"
}

type Achievement struct {
	BaseModel
	RepresentativeID string         `gorm:"column:representative_id;type:uuid;not null;index"`
	Title            string         `gorm:"column:title;type:varchar(255);not null"`
	Description      string         `gorm:"column:description;type:text"`
	Date             datatypes.Date `gorm:"column:date;not null"`
	Image            string         `gorm:"column:image"`
	Order            int            `gorm:"column:display_order;not null"`
}

// TableName specifies the table name for GORM
func (Achievement) TableName() string {
	return "achievements"
}

type News struct {
	BaseModel
	RepresentativeID string    `gorm:"column:representative_id;type:uuid;not null;index"`
	Title            string    `gorm:"column:title;type:varchar(255);not null"`
	Content          string    `gorm:"column:content;type:text"`
	Image            string    `gorm:"column:image"`
	PublishedDate    time.Time `gorm:"column:published_date;autoCreateTime"`
	IsFeatured       bool      `gorm:"column:is_featured;not null"`
}

// TableName specifies the table name for GORM
func (News) TableName() string {
	return "news"
}

// Event is a conference, visit or other public appearance; shown only once approved.
type Event struct {
	BaseModel
	RepresentativeID string              `gorm:"column:representative_id;type:uuid;not null;index"`
	Title            string              `gorm:"column:title;type:varchar(255);not null"`
	Description      string              `gorm:"column:description;type:text"`
	EventType        constants.EventType `gorm:"column:event_type;type:varchar(20);not null;index"`
	EventDate        time.Time           `gorm:"column:event_date;not null;index"`
	Location         string              `gorm:"column:location;type:varchar(255)"`
	Image            string              `gorm:"column:image"`
	AdminApproved    bool                `gorm:"column:admin_approved;not null"`

	// Relationships
	Representative *Representative `gorm:"foreignKey:RepresentativeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}
