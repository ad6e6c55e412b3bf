package requests

import (
	"time"

	gormModels "naebak/content-service/internal/models/gorm"
)

type StaticPageRequest struct {
	Title           string `json:"title" validate:"required,max=255"`
	Content         string `json:"content"`
	MetaDescription string `json:"meta_description" validate:"max=300"`
	Order           *int   `json:"order" validate:"omitempty,gte=0"`
	IsActive        *bool  `json:"is_active"`
}

type BannerRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	BannerType     string  `json:"banner_type" validate:"required,oneof=main representative"`
	Image          string  `json:"image"`
	AltText        string  `json:"alt_text" validate:"max=255"`
	Representative *string `json:"representative" validate:"omitempty,uuid"`
	IsDefault      *bool   `json:"is_default"`
	IsActive       *bool   `json:"is_active"`
}

type ColorRequest struct {
	ColorValue  string `json:"color_value" validate:"required,hexcolor,max=7"`
	Description string `json:"description" validate:"max=255"`
	IsActive    *bool  `json:"is_active"`
}

type SiteSettingsRequest struct {
	SiteName          string `json:"site_name" validate:"required,max=200"`
	SiteDescription   string `json:"site_description"`
	ContactEmail      string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone      string `json:"contact_phone" validate:"omitempty,max=20,phone"`
	ContactAddress    string `json:"contact_address"`
	FacebookURL       string `json:"facebook_url" validate:"omitempty,url"`
	TwitterURL        string `json:"twitter_url" validate:"omitempty,url"`
	InstagramURL      string `json:"instagram_url" validate:"omitempty,url"`
	YoutubeURL        string `json:"youtube_url" validate:"omitempty,url"`
	LinkedinURL       string `json:"linkedin_url" validate:"omitempty,url"`
	VisitorCounterMin int    `json:"visitor_counter_min" validate:"gte=0"`
	VisitorCounterMax int    `json:"visitor_counter_max" validate:"gtefield=VisitorCounterMin"`
	LogoGreen         string `json:"logo_green"`
	LogoWhite         string `json:"logo_white"`
	Favicon           string `json:"favicon"`
}

type FAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category" validate:"max=100"`
	Order    *int   `json:"order" validate:"omitempty,gte=0"`
	IsActive *bool  `json:"is_active"`
}

type EventRequest struct {
	Representative string    `json:"representative" validate:"required,uuid"`
	Title          string    `json:"title" validate:"required,max=255"`
	Description    string    `json:"description"`
	EventType      string    `json:"event_type" validate:"required,oneof=conference meeting visit rally other"`
	EventDate      time.Time `json:"event_date" validate:"required"`
	Location       string    `json:"location" validate:"max=255"`
	Image          string    `json:"image"`
	AdminApproved  *bool     `json:"admin_approved"`
	IsActive       *bool     `json:"is_active"`
}

func NewStaticPageRequest(p gormModels.StaticPage) StaticPageRequest {
	order := p.Order
	active := p.IsActive
	return StaticPageRequest{
		Title:           p.Title,
		Content:         p.Content,
		MetaDescription: p.MetaDescription,
		Order:           &order,
		IsActive:        &active,
	}
}

func NewBannerRequest(b gormModels.Banner) BannerRequest {
	isDefault := b.IsDefault
	active := b.IsActive
	return BannerRequest{
		Name:           b.Name,
		BannerType:     string(b.BannerType),
		Image:          b.Image,
		AltText:        b.AltText,
		Representative: b.RepresentativeID,
		IsDefault:      &isDefault,
		IsActive:       &active,
	}
}

func NewColorRequest(c gormModels.ColorSettings) ColorRequest {
	active := c.IsActive
	return ColorRequest{
		ColorValue:  c.ColorValue,
		Description: c.Description,
		IsActive:    &active,
	}
}

func NewSiteSettingsRequest(s gormModels.SiteSettings) SiteSettingsRequest {
	return SiteSettingsRequest{
		SiteName:          s.SiteName,
		SiteDescription:   s.SiteDescription,
		ContactEmail:      s.ContactEmail,
		ContactPhone:      s.ContactPhone,
		ContactAddress:    s.ContactAddress,
		FacebookURL:       s.FacebookURL,
		TwitterURL:        s.TwitterURL,
		InstagramURL:      s.InstagramURL,
		YoutubeURL:        s.YoutubeURL,
		LinkedinURL:       s.LinkedinURL,
		VisitorCounterMin: s.VisitorCounterMin,
		VisitorCounterMax: s.VisitorCounterMax,
		LogoGreen:         s.LogoGreen,
		LogoWhite:         s.LogoWhite,
		Favicon:           s.Favicon,
	}
}

func NewFAQRequest(f gormModels.FAQ) FAQRequest {
	order := f.Order
	active := f.IsActive
	return FAQRequest{
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
		Order:    &order,
		IsActive: &active,
	}
}

func NewEventRequest(e gormModels.Event) EventRequest {
	approved := e.AdminApproved
	active := e.IsActive
	return EventRequest{
		Representative: e.RepresentativeID,
		Title:          e.Title,
		Description:    e.Description,
		EventType:      string(e.EventType),
		EventDate:      e.EventDate,
		Location:       e.Location,
		Image:          e.Image,
		AdminApproved:  &approved,
		IsActive:       &active,
	}
}
