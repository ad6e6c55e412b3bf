package responses

import (
	gormModels "naebak/content-service/internal/models/gorm"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

type GovernorateResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	NameEn     string   `json:"name_en"`
	Code       string   `json:"code"`
	Population *int64   `json:"population"`
	Area       *float64 `json:"area"`
}

type DistrictResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Governorate     string `json:"governorate"`
	GovernorateName string `json:"governorate_name"`
	Number          int    `json:"number"`
	Description     string `json:"description"`
}

type PartyResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	NameEn       string  `json:"name_en"`
	Abbreviation string  `json:"abbreviation"`
	Logo         string  `json:"logo"`
	Color        string  `json:"color"`
	FoundedDate  *string `json:"founded_date"`
	Description  string  `json:"description"`
	Website      string  `json:"website"`
}

func NewGovernorateResponse(g gormModels.Governorate) GovernorateResponse {
	return GovernorateResponse{
		ID:         g.ID,
		Name:       g.Name,
		NameEn:     g.NameEn,
		Code:       g.Code,
		Population: g.Population,
		Area:       g.Area,
	}
}

func NewDistrictResponse(d gormModels.District) DistrictResponse {
	return DistrictResponse{
		ID:              d.ID,
		Name:            d.Name,
		Governorate:     d.GovernorateID,
		GovernorateName: d.GovernorateName(),
		Number:          d.Number,
		Description:     d.Description,
	}
}

func NewPartyResponse(p gormModels.PoliticalParty) PartyResponse {
	return PartyResponse{
		ID:           p.ID,
		Name:         p.Name,
		NameEn:       p.NameEn,
		Abbreviation: p.Abbreviation,
		Logo:         p.Logo,
		Color:        p.Color,
		FoundedDate:  formatDate(p.FoundedDate),
		Description:  p.Description,
		Website:      p.Website,
	}
}

func NewGovernorateResponses(rows []gormModels.Governorate) []GovernorateResponse {
	out := make([]GovernorateResponse, 0, len(rows))
	for _, g := range rows {
		out = append(out, NewGovernorateResponse(g))
	}
	return out
}

func NewDistrictResponses(rows []gormModels.District) []DistrictResponse {
	out := make([]DistrictResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, NewDistrictResponse(d))
	}
	return out
}

func NewPartyResponses(rows []gormModels.PoliticalParty) []PartyResponse {
	out := make([]PartyResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, NewPartyResponse(p))
	}
	return out
}

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := toTime(*d).Format(dateLayout)
	return &s
}
