package constants

import (
	"database/sql/driver"
	"fmt"
)

// Choice is a value/label pair served to clients populating filter widgets.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Gender mirrors the representatives.gender column.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) String() string { return string(g) }

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

func (g *Gender) Scan(src interface{}) error {
	s, err := scanEnum("Gender", src)
	*g = Gender(s)
	return err
}

func (g Gender) Value() (driver.Value, error) { return string(g), nil }

// RepresentativeStatus mirrors the representatives.status column.
type RepresentativeStatus string

const (
	StatusCandidate RepresentativeStatus = "candidate"
	StatusElected   RepresentativeStatus = "elected"
	StatusFormer    RepresentativeStatus = "former"
)

func (s RepresentativeStatus) String() string { return string(s) }

func (s RepresentativeStatus) Valid() bool {
	switch s {
	case StatusCandidate, StatusElected, StatusFormer:
		return true
	}
	return false
}

func (s *RepresentativeStatus) Scan(src interface{}) error {
	v, err := scanEnum("RepresentativeStatus", src)
	*s = RepresentativeStatus(v)
	return err
}

func (s RepresentativeStatus) Value() (driver.Value, error) { return string(s), nil }

var GenderChoices = []Choice{
	{Value: string(GenderMale), Label: "ذكر"},
	{Value: string(GenderFemale), Label: "أنثى"},
}

var StatusChoices = []Choice{
	{Value: string(StatusCandidate), Label: "مرشح"},
	{Value: string(StatusElected), Label: "منتخب"},
	{Value: string(StatusFormer), Label: "سابق"},
}

func GenderLabel(g Gender) string { return labelFor(GenderChoices, string(g)) }

func StatusLabel(s RepresentativeStatus) string { return labelFor(StatusChoices, string(s)) }

func labelFor(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// PageType identifies one of the fixed static pages.
type PageType string

const (
	PageContact PageType = "contact"
	PageAbout   PageType = "about"
	PagePrivacy PageType = "privacy"
	PageTerms   PageType = "terms"
	PageFAQ     PageType = "faq"
)

func (p PageType) Valid() bool {
	switch p {
	case PageContact, PageAbout, PagePrivacy, PageTerms, PageFAQ:
		return true
	}
	return false
}

// BannerType separates the site-wide hero banner from per-profile banners.
type BannerType string

const (
	BannerMain           BannerType = "main"
	BannerRepresentative BannerType = "representative"
)

func (b BannerType) Valid() bool {
	return b == BannerMain || b == BannerRepresentative
}

// ColorType is the fixed set of themeable color roles.
type ColorType string

const (
	ColorPrimary    ColorType = "primary"
	ColorSecondary  ColorType = "secondary"
	ColorAccent     ColorType = "accent"
	ColorBackground ColorType = "background"
	ColorText       ColorType = "text"
	ColorHeader     ColorType = "header"
	ColorFooter     ColorType = "footer"
)

var ColorTypes = []ColorType{
	ColorPrimary, ColorSecondary, ColorAccent, ColorBackground, ColorText, ColorHeader, ColorFooter,
}

func (c ColorType) Valid() bool {
	for _, t := range ColorTypes {
		if t == c {
			return true
		}
	}
	return false
}

// EventType classifies representative events.
type EventType string

const (
	EventConference EventType = "conference"
	EventMeeting    EventType = "meeting"
	EventVisit      EventType = "visit"
	EventRally      EventType = "rally"
	EventOther      EventType = "other"
)

func (e EventType) Valid() bool {
	switch e {
	case EventConference, EventMeeting, EventVisit, EventRally, EventOther:
		return true
	}
	return false
}

func scanEnum(name string, src interface{}) (string, error) {
	if src == nil {
		return "", nil
	}
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("%s: cannot scan type %T", name, src)
	}
}
