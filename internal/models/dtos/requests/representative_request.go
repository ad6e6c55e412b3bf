package requests

import (
	"time"

	gormModels "naebak/content-service/internal/models/gorm"
)

const DateLayout = "2006-01-02"

// RepresentativeRequest is used for create and, decoded over
// NewRepresentativeRequest(existing), for partial updates.
type RepresentativeRequest struct {
	Name       string  `json:"name" validate:"required,max=255"`
	NameEn     string  `json:"name_en" validate:"max=255"`
	Slug       string  `json:"slug" validate:"omitempty,max=300,slug"`
	Gender     string  `json:"gender" validate:"required,oneof=male female"`
	BirthDate  *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Profession string  `json:"profession" validate:"max=200"`
	Education  string  `json:"education"`
	Party      *string `json:"party" validate:"omitempty,uuid"`
	District   string  `json:"district" validate:"required,uuid"`
	Status     string  `json:"status" validate:"omitempty,oneof=candidate elected former"`

	ElectoralNumber string `json:"electoral_number" validate:"omitempty,max=50,digits"`
	ElectoralSymbol string `json:"electoral_symbol" validate:"max=255"`
	ElectionYear    *int   `json:"election_year" validate:"omitempty,gte=1900"`

	ProfileImage string `json:"profile_image"`
	BannerImage  string `json:"banner_image"`

	Rating             *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	RatingCount        *int     `json:"rating_count" validate:"omitempty,gte=0"`
	SolvedComplaints   *int     `json:"solved_complaints" validate:"omitempty,gte=0"`
	ReceivedComplaints *int     `json:"received_complaints" validate:"omitempty,gte=0"`

	IsDistinguished *bool `json:"is_distinguished"`
	AdminApproved   *bool `json:"admin_approved"`
	IsActive        *bool `json:"is_active"`

	Bio              string `json:"bio"`
	Achievements     string `json:"achievements"`
	ElectoralProgram string `json:"electoral_program"`

	Phone    string `json:"phone" validate:"omitempty,max=20,phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	Facebook string `json:"facebook" validate:"omitempty,url"`
	Twitter  string `json:"twitter" validate:"omitempty,url"`
	Website  string `json:"website" validate:"omitempty,url"`
}

// NewRepresentativeRequest pre-fills a request from the stored row so a
// partial JSON body only overrides the fields it names.
func NewRepresentativeRequest(r gormModels.Representative) RepresentativeRequest {
	rating := r.Rating
	ratingCount := r.RatingCount
	solved := r.SolvedComplaints
	received := r.ReceivedComplaints
	year := r.ElectionYear
	distinguished := r.IsDistinguished
	approved := r.AdminApproved
	active := r.IsActive

	req := RepresentativeRequest{
		Name:               r.Name,
		NameEn:             r.NameEn,
		Slug:               r.Slug,
		Gender:             string(r.Gender),
		Profession:         r.Profession,
		Education:          r.Education,
		Party:              r.PartyID,
		District:           r.DistrictID,
		Status:             string(r.Status),
		ElectoralNumber:    r.ElectoralNumber,
		ElectoralSymbol:    r.ElectoralSymbol,
		ElectionYear:       &year,
		ProfileImage:       r.ProfileImage,
		BannerImage:        r.BannerImage,
		Rating:             &rating,
		RatingCount:        &ratingCount,
		SolvedComplaints:   &solved,
		ReceivedComplaints: &received,
		IsDistinguished:    &distinguished,
		AdminApproved:      &approved,
		IsActive:           &active,
		Bio:                r.Bio,
		Achievements:       r.AchievementsText,
		ElectoralProgram:   r.ElectoralProgram,
		Phone:              r.Phone,
		Email:              r.Email,
		Facebook:           r.Facebook,
		Twitter:            r.Twitter,
		Website:            r.Website,
	}
	if r.BirthDate != nil {
		s := time.Time(*r.BirthDate).Format(DateLayout)
		req.BirthDate = &s
	}
	return req
}
