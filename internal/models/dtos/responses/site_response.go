package responses

import (
	"strings"
	"time"

	"naebak/content-service/internal/constants"
	gormModels "naebak/content-service/internal/models/gorm"
)

type StaticPageResponse struct {
	ID              string    `json:"id"`
	PageType        string    `json:"page_type"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	MetaDescription string    `json:"meta_description"`
	Order           int       `json:"order"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BannerResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	BannerType         string  `json:"banner_type"`
	Image              string  `json:"image"`
	AltText            string  `json:"alt_text"`
	Representative     *string `json:"representative"`
	RepresentativeName *string `json:"representative_name"`
	IsDefault          bool    `json:"is_default"`
	IsActive           bool    `json:"is_active"`
}

type ColorResponse struct {
	ID          string `json:"id"`
	ColorType   string `json:"color_type"`
	ColorValue  string `json:"color_value"`
	Description string `json:"description"`
}

// ColorSchemeResponse is the theme payload consumed by the frontend.
type ColorSchemeResponse struct {
	Colors       map[string]string `json:"colors"`
	CSSVariables map[string]string `json:"css_variables"`
}

type SiteSettingsResponse struct {
	ID                string    `json:"id"`
	SiteName          string    `json:"site_name"`
	SiteDescription   string    `json:"site_description"`
	ContactEmail      string    `json:"contact_email"`
	ContactPhone      string    `json:"contact_phone"`
	ContactAddress    string    `json:"contact_address"`
	FacebookURL       string    `json:"facebook_url"`
	TwitterURL        string    `json:"twitter_url"`
	InstagramURL      string    `json:"instagram_url"`
	YoutubeURL        string    `json:"youtube_url"`
	LinkedinURL       string    `json:"linkedin_url"`
	VisitorCounterMin int       `json:"visitor_counter_min"`
	VisitorCounterMax int       `json:"visitor_counter_max"`
	LogoGreen         string    `json:"logo_green"`
	LogoWhite         string    `json:"logo_white"`
	Favicon           string    `json:"favicon"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type FAQResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

type EventResponse struct {
	ID                 string    `json:"id"`
	Representative     string    `json:"representative"`
	RepresentativeName string    `json:"representative_name,omitempty"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	EventType          string    `json:"event_type"`
	EventDate          time.Time `json:"event_date"`
	Location           string    `json:"location"`
	Image              string    `json:"image"`
	AdminApproved      bool      `json:"admin_approved"`
}

func NewStaticPageResponse(p gormModels.StaticPage) StaticPageResponse {
	return StaticPageResponse{
		ID:              p.ID,
		PageType:        string(p.PageType),
		Title:           p.Title,
		Content:         p.Content,
		MetaDescription: p.MetaDescription,
		Order:           p.Order,
		UpdatedAt:       p.UpdatedAt,
	}
}

func NewBannerResponse(b gormModels.Banner) BannerResponse {
	resp := BannerResponse{
		ID:             b.ID,
		Name:           b.Name,
		BannerType:     string(b.BannerType),
		Image:          b.Image,
		AltText:        b.AltText,
		Representative: b.RepresentativeID,
		IsDefault:      b.IsDefault,
		IsActive:       b.IsActive,
	}
	if b.Representative != nil {
		resp.RepresentativeName = &b.Representative.Name
	}
	return resp
}

func NewColorResponse(c gormModels.ColorSettings) ColorResponse {
	return ColorResponse{
		ID:          c.ID,
		ColorType:   string(c.ColorType),
		ColorValue:  c.ColorValue,
		Description: c.Description,
	}
}

func NewSiteSettingsResponse(s gormModels.SiteSettings) SiteSettingsResponse {
	return SiteSettingsResponse{
		ID:                s.ID,
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
		UpdatedAt:         s.UpdatedAt,
	}
}

func NewFAQResponse(f gormModels.FAQ) FAQResponse {
	return FAQResponse{
		ID:       f.ID,
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
		Order:    f.Order,
	}
}

func NewEventResponse(e gormModels.Event) EventResponse {
	resp := EventResponse{
		ID:             e.ID,
		Representative: e.RepresentativeID,
		Title:          e.Title,
		Description:    e.Description,
		EventType:      string(e.EventType),
		EventDate:      e.EventDate,
		Location:       e.Location,
		Image:          e.Image,
		AdminApproved:  e.AdminApproved,
	}
	if e.Representative != nil {
		resp.RepresentativeName = e.Representative.Name
	}
	return resp
}

// NewColorSchemeResponse builds the theme map and its CSS custom properties.
func NewColorSchemeResponse(colors []gormModels.ColorSettings) ColorSchemeResponse {
	scheme := ColorSchemeResponse{
		Colors:       make(map[string]string, len(colors)),
		CSSVariables: make(map[string]string, len(colors)),
	}
	for _, c := range colors {
		scheme.Colors[string(c.ColorType)] = c.ColorValue
		scheme.CSSVariables[CSSVariableName(c.ColorType)] = c.ColorValue
	}
	return scheme
}

func CSSVariableName(t constants.ColorType) string {
	return "--" + strings.ReplaceAll(string(t), "_", "-")
}
