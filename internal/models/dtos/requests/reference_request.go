package requests

import (
	"time"

	gormModels "naebak/content-service/internal/models/gorm"
)

type GovernorateRequest struct {
	Name       string   `json:"name" validate:"required,max=100"`
	NameEn     string   `json:"name_en" validate:"max=100"`
	Code       string   `json:"code" validate:"required,max=10"`
	Population *int64   `json:"population" validate:"omitempty,gte=0"`
	Area       *float64 `json:"area" validate:"omitempty,gte=0"`
	IsActive   *bool    `json:"is_active"`
}

type DistrictRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Governorate string `json:"governorate" validate:"required,uuid"`
	Number      int    `json:"number" validate:"required,gte=1"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type PartyRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	NameEn       string  `json:"name_en" validate:"max=200"`
	Abbreviation string  `json:"abbreviation" validate:"max=20"`
	Logo         string  `json:"logo"`
	Color        string  `json:"color" validate:"omitempty,hexcolor,max=7"`
	FoundedDate  *string `json:"founded_date" validate:"omitempty,datetime=2006-01-02"`
	Description  string  `json:"description"`
	Website      string  `json:"website" validate:"omitempty,url"`
	IsActive     *bool   `json:"is_active"`
}

func NewGovernorateRequest(g gormModels.Governorate) GovernorateRequest {
	active := g.IsActive
	return GovernorateRequest{
		Name:       g.Name,
		NameEn:     g.NameEn,
		Code:       g.Code,
		Population: g.Population,
		Area:       g.Area,
		IsActive:   &active,
	}
}

func NewDistrictRequest(d gormModels.District) DistrictRequest {
	active := d.IsActive
	return DistrictRequest{
		Name:        d.Name,
		Governorate: d.GovernorateID,
		Number:      d.Number,
		Description: d.Description,
		IsActive:    &active,
	}
}

func NewPartyRequest(p gormModels.PoliticalParty) PartyRequest {
	active := p.IsActive
	req := PartyRequest{
		Name:         p.Name,
		NameEn:       p.NameEn,
		Abbreviation: p.Abbreviation,
		Logo:         p.Logo,
		Color:        p.Color,
		Description:  p.Description,
		Website:      p.Website,
		IsActive:     &active,
	}
	if p.FoundedDate != nil {
		s := time.Time(*p.FoundedDate).Format(DateLayout)
		req.FoundedDate = &s
	}
	return req
}
