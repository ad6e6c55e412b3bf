package gorm

import "naebak/content-service/internal/constants"

type StaticPage struct {
	BaseModel
	PageType        constants.PageType `gorm:"column:page_type;type:varchar(20);not null;uniqueIndex"`
	Title           string             `gorm:"column:title;type:varchar(255);not null"`
	Content         string             `gorm:"column:content;type:text"`
	MetaDescription string             `gorm:"column:meta_description;type:varchar(300)"`
	Order           int                `gorm:"column:display_order;not null"`
}

// TableName specifies the table name for GORM
func (StaticPage) TableName() string {
	return "static_pages"
}

// Banner is a hero image; at most one main banner may be the default.
type Banner struct {
	BaseModel
	Name             string               `gorm:"column:name;type:varchar(200);not null"`
	BannerType       constants.BannerType `gorm:"column:banner_type;type:varchar(20);not null;index:idx_banners_type_default,priority:1"`
	Image            string               `gorm:"column:image"`
	AltText          string               `gorm:"column:alt_text;type:varchar(255)"`
	RepresentativeID *string              `gorm:"column:representative_id;type:uuid;index"`
	IsDefault        bool                 `gorm:"column:is_default;not null;index:idx_banners_type_default,priority:2"`

	// Relationships
	Representative *Representative `gorm:"foreignKey:RepresentativeID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for GORM
func (Banner) TableName() string {
	return "banners"
}

type ColorSettings struct {
	BaseModel
	ColorType   constants.ColorType `gorm:"column:color_type;type:varchar(30);not null;uniqueIndex"`
	ColorValue  string              `gorm:"column:color_value;type:varchar(7);not null"`
	Description string              `gorm:"column:description;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (ColorSettings) TableName() string {
	return "color_settings"
}

// SiteSettings holds at most one row; the service rejects a second insert.
type SiteSettings struct {
	BaseModel
	SiteName          string `gorm:"column:site_name;type:varchar(200);not null"`
	SiteDescription   string `gorm:"column:site_description;type:text"`
	ContactEmail      string `gorm:"column:contact_email"`
	ContactPhone      string `gorm:"column:contact_phone;type:varchar(20)"`
	ContactAddress    string `gorm:"column:contact_address;type:text"`
	FacebookURL       string `gorm:"column:facebook_url"`
	TwitterURL        string `gorm:"column:twitter_url"`
	InstagramURL      string `gorm:"column:instagram_url"`
	YoutubeURL        string `gorm:"column:youtube_url"`
	LinkedinURL       string `gorm:"column:linkedin_url"`
	VisitorCounterMin int    `gorm:"column:visitor_counter_min;not null"`
	VisitorCounterMax int    `gorm:"column:visitor_counter_max;not null"`
	LogoGreen         string `gorm:"column:logo_green"`
	LogoWhite         string `gorm:"column:logo_white"`
	Favicon           string `gorm:"column:favicon"`
}

// TableName specifies the table name for GORM
func (SiteSettings) TableName() string {
	return "site_settings"
}

type FAQ struct {
	BaseModel
	Question string `gorm:"column:question;type:text;not null"`
	Answer   string `gorm:"column:answer;type:text;not null"`
	Category string `gorm:"column:category;type:varchar(100);index"`
	Order    int    `gorm:"column:display_order;not null"`
}

// TableName specifies the table name for GORM
func (FAQ) TableName() string {
	return "faqs"
}
