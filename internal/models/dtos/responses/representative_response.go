package responses

import (
	"time"

	"naebak/content-service/internal/constants"
	gormModels "naebak/content-service/internal/models/gorm"

	"gorm.io/datatypes"
)

// RepresentativeListItem is the compact card shown in listings and search.
type RepresentativeListItem struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Gender             string    `json:"gender"`
	Age                *int      `json:"age"`
	Profession         string    `json:"profession"`
	PartyName          *string   `json:"party_name"`
	PartyColor         *string   `json:"party_color"`
	DistrictName       string    `json:"district_name"`
	Governorate        string    `json:"governorate"`
	Status             string    `json:"status"`
	ElectoralNumber    string    `json:"electoral_number"`
	ElectoralSymbol    string    `json:"electoral_symbol"`
	ElectionYear       int       `json:"election_year"`
	ProfileImage       string    `json:"profile_image"`
	Rating             float64   `json:"rating"`
	RatingCount        int       `json:"rating_count"`
	SolvedComplaints   int       `json:"solved_complaints"`
	ReceivedComplaints int       `json:"received_complaints"`
	SuccessRate        float64   `json:"success_rate"`
	IsDistinguished    bool      `json:"is_distinguished"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email"`
	CreatedAt          time.Time `json:"created_at"`
}

type RepresentativeImageResponse struct {
	ID      string `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
	Order   int    `json:"order"`
}

type AchievementResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
}

type NewsResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Image         string    `json:"image"`
	PublishedDate time.Time `json:"published_date"`
	IsFeatured    bool      `json:"is_featured"`
}

// RepresentativeDetail is the full profile with nested relations.
type RepresentativeDetail struct {
	ID                 string                        `json:"id"`
	Name               string                        `json:"name"`
	NameEn             string                        `json:"name_en"`
	Slug               string                        `json:"slug"`
	Gender             string                        `json:"gender"`
	GenderDisplay      string                        `json:"gender_display"`
	BirthDate          *string                       `json:"birth_date"`
	Age                *int                          `json:"age"`
	Profession         string                        `json:"profession"`
	Education          string                        `json:"education"`
	Party              *PartyResponse                `json:"party"`
	District           *DistrictResponse             `json:"district"`
	Governorate        *GovernorateResponse          `json:"governorate"`
	Status             string                        `json:"status"`
	StatusDisplay      string                        `json:"status_display"`
	ElectoralNumber    string                        `json:"electoral_number"`
	ElectoralSymbol    string                        `json:"electoral_symbol"`
	ElectionYear       int                           `json:"election_year"`
	ProfileImage       string                        `json:"profile_image"`
	BannerImage        string                        `json:"banner_image"`
	Rating             float64                       `json:"rating"`
	RatingCount        int                           `json:"rating_count"`
	SolvedComplaints   int                           `json:"solved_complaints"`
	ReceivedComplaints int                           `json:"received_complaints"`
	SuccessRate        float64                       `json:"success_rate"`
	IsDistinguished    bool                          `json:"is_distinguished"`
	AdminApproved      bool                          `json:"admin_approved"`
	IsActive           bool                          `json:"is_active"`
	Bio                string                        `json:"bio"`
	Achievements       string                        `json:"achievements"`
	ElectoralProgram   string                        `json:"electoral_program"`
	Phone              string                        `json:"phone"`
	Email              string                        `json:"email"`
	Facebook           string                        `json:"facebook"`
	Twitter            string                        `json:"twitter"`
	Website            string                        `json:"website"`
	AdditionalImages   []RepresentativeImageResponse `json:"additional_images"`
	AchievementList    []AchievementResponse         `json:"achievement_list"`
	News               []NewsResponse                `json:"news"`
	Events             []EventResponse               `json:"events"`
	CreatedAt          time.Time                     `json:"created_at"`
	UpdatedAt          time.Time                     `json:"updated_at"`
}

// NewRepresentativeListItem expects District.Governorate and Party preloaded.
func NewRepresentativeListItem(r gormModels.Representative, today time.Time) RepresentativeListItem {
	item := RepresentativeListItem{
		ID:                 r.ID,
		Name:               r.Name,
		Slug:               r.Slug,
		Gender:             string(r.Gender),
		Age:                r.Age(today),
		Profession:         r.Profession,
		Status:             string(r.Status),
		ElectoralNumber:    r.ElectoralNumber,
		ElectoralSymbol:    r.ElectoralSymbol,
		ElectionYear:       r.ElectionYear,
		ProfileImage:       r.ProfileImage,
		Rating:             r.Rating,
		RatingCount:        r.RatingCount,
		SolvedComplaints:   r.SolvedComplaints,
		ReceivedComplaints: r.ReceivedComplaints,
		SuccessRate:        r.SuccessRate(),
		IsDistinguished:    r.IsDistinguished,
		Phone:              r.Phone,
		Email:              r.Email,
		CreatedAt:          r.CreatedAt,
	}
	if r.Party != nil {
		item.PartyName = &r.Party.Name
		item.PartyColor = &r.Party.Color
	}
	if r.District != nil {
		item.DistrictName = r.District.Name
		item.Governorate = r.District.GovernorateName()
	}
	return item
}

func NewRepresentativeListItems(rows []gormModels.Representative, today time.Time) []RepresentativeListItem {
	out := make([]RepresentativeListItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewRepresentativeListItem(r, today))
	}
	return out
}

// NewRepresentativeDetail maps whatever relations were preloaded; the
// repository decides which children are visible.
func NewRepresentativeDetail(r gormModels.Representative, today time.Time) RepresentativeDetail {
	d := RepresentativeDetail{
		ID:                 r.ID,
		Name:               r.Name,
		NameEn:             r.NameEn,
		Slug:               r.Slug,
		Gender:             string(r.Gender),
		GenderDisplay:      constants.GenderLabel(r.Gender),
		BirthDate:          formatDate(r.BirthDate),
		Age:                r.Age(today),
		Profession:         r.Profession,
		Education:          r.Education,
		Status:             string(r.Status),
		StatusDisplay:      constants.StatusLabel(r.Status),
		ElectoralNumber:    r.ElectoralNumber,
		ElectoralSymbol:    r.ElectoralSymbol,
		ElectionYear:       r.ElectionYear,
		ProfileImage:       r.ProfileImage,
		BannerImage:        r.BannerImage,
		Rating:             r.Rating,
		RatingCount:        r.RatingCount,
		SolvedComplaints:   r.SolvedComplaints,
		ReceivedComplaints: r.ReceivedComplaints,
		SuccessRate:        r.SuccessRate(),
		IsDistinguished:    r.IsDistinguished,
		AdminApproved:      r.AdminApproved,
		IsActive:           r.IsActive,
		Bio:                r.Bio,
		Achievements:       r.AchievementsText,
		ElectoralProgram:   r.ElectoralProgram,
		Phone:              r.Phone,
		Email:              r.Email,
		Facebook:           r.Facebook,
		Twitter:            r.Twitter,
		Website:            r.Website,
		AdditionalImages:   make([]RepresentativeImageResponse, 0, len(r.AdditionalImages)),
		AchievementList:    make([]AchievementResponse, 0, len(r.AchievementList)),
		News:               make([]NewsResponse, 0, len(r.News)),
		Events:             make([]EventResponse, 0, len(r.Events)),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.Party != nil {
		party := NewPartyResponse(*r.Party)
		d.Party = &party
	}
	if r.District != nil {
		district := NewDistrictResponse(*r.District)
		d.District = &district
		if gov := r.Governorate(); gov != nil {
			governorate := NewGovernorateResponse(*gov)
			d.Governorate = &governorate
		}
	}

	for _, img := range r.AdditionalImages {
		d.AdditionalImages = append(d.AdditionalImages, RepresentativeImageResponse{
			ID:      img.ID,
			Image:   img.Image,
			Caption: img.Caption,
			Order:   img.Order,
		})
	}
	for _, a := range r.AchievementList {
		d.AchievementList = append(d.AchievementList, AchievementResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Date:        toTime(a.Date).Format(dateLayout),
			Image:       a.Image,
			Order:       a.Order,
		})
	}
	for _, n := range r.News {
		d.News = append(d.News, NewsResponse{
			ID:            n.ID,
			Title:         n.Title,
			Content:       n.Content,
			Image:         n.Image,
			PublishedDate: n.PublishedDate,
			IsFeatured:    n.IsFeatured,
		})
	}
	for _, e := range r.Events {
		d.Events = append(d.Events, NewEventResponse(e))
	}
	return d
}

func toTime(d datatypes.Date) time.Time {
	return time.Time(d)
}
