package filters

import (
	"net/url"
	"strings"

	"gorm.io/gorm"
)

type GovernorateFilter struct {
	Name   string
	Code   string
	Search string
}

func ParseGovernorateFilter(q url.Values) GovernorateFilter {
	return GovernorateFilter{
		Name:   strings.TrimSpace(q.Get("name")),
		Code:   strings.TrimSpace(q.Get("code")),
		Search: strings.TrimSpace(q.Get("search")),
	}
}

// IsZero reports whether no filter is set, which is the only cacheable listing.
func (f GovernorateFilter) IsZero() bool {
	return f == GovernorateFilter{}
}

func (f GovernorateFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = db.Where(icontains("governorates.name"), containsPattern(f.Name))
	}
	if f.Code != "" {
		db = db.Where(iexact("governorates.code"), strings.ToLower(f.Code))
	}
	if f.Search != "" {
		p := containsPattern(f.Search)
		db = db.Where("("+icontains("governorates.name")+" OR "+icontains("governorates.name_en")+")", p, p)
	}
	return db
}

type PartyFilter struct {
	Name   string
	Search string
}

func ParsePartyFilter(q url.Values) PartyFilter {
	return PartyFilter{
		Name:   strings.TrimSpace(q.Get("name")),
		Search: strings.TrimSpace(q.Get("search")),
	}
}

func (f PartyFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = db.Where(icontains("political_parties.name"), containsPattern(f.Name))
	}
	if f.Search != "" {
		p := containsPattern(f.Search)
		db = db.Where("("+icontains("political_parties.name")+" OR "+
			icontains("political_parties.name_en")+" OR "+
			icontains("political_parties.abbreviation")+")", p, p, p)
	}
	return db
}

type DistrictFilter struct {
	Governorate string
	Search      string
}

func ParseDistrictFilter(q url.Values) DistrictFilter {
	return DistrictFilter{
		Governorate: strings.TrimSpace(q.Get("governorate")),
		Search:      strings.TrimSpace(q.Get("search")),
	}
}

// Apply matches governorate by exact name (case-insensitive) or by id.
func (f DistrictFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Governorate != "" {
		db = db.Where(`districts.governorate_id IN (
			SELECT g.id FROM governorates g WHERE `+iexact("g.name")+` OR g.id = ?)`,
			strings.ToLower(f.Governorate), f.Governorate)
	}
	if f.Search != "" {
		db = db.Where(icontains("districts.name"), containsPattern(f.Search))
	}
	return db
}
