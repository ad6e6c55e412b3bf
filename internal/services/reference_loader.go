package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/logging"
	gormModels "naebak/content-service/internal/models/gorm"

	"github.com/goccy/go-yaml"
	gormlib "gorm.io/gorm"
)

// ReferenceDataset is the YAML seed layout.
type ReferenceDataset struct {
	Governorates []RawGovernorate `yaml:"governorates"`
	Parties      []RawParty       `yaml:"parties"`
	Colors       []RawColor       `yaml:"colors"`
	Pages        []RawPage        `yaml:"pages"`
}

type RawGovernorate struct {
	Name       string        `yaml:"name"`
	NameEn     string        `yaml:"name_en"`
	Code       string        `yaml:"code"`
	Population *int64        `yaml:"population"`
	Area       *float64      `yaml:"area"`
	Districts  []RawDistrict `yaml:"districts"`
}

type RawDistrict struct {
	Name        string `yaml:"name"`
	Number      int    `yaml:"number"`
	Description string `yaml:"description"`
}

type RawParty struct {
	Name         string `yaml:"name"`
	NameEn       string `yaml:"name_en"`
	Abbreviation string `yaml:"abbreviation"`
	Color        string `yaml:"color"`
	Website      string `yaml:"website"`
}

type RawColor struct {
	Type        string `yaml:"type"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
}

type RawPage struct {
	Type    string `yaml:"type"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Order   int    `yaml:"order"`
}

// LoadStats counts rows touched by one load.
type LoadStats struct {
	Created int
	Updated int
	Skipped int
}

// ReferenceLoader upserts reference rows by natural key, so running it twice
// changes nothing.
type ReferenceLoader struct {
	governorates *repositories.GovernorateRepository
	districts    *repositories.DistrictRepository
	parties      *repositories.PartyRepository
	colors       *repositories.ColorRepository
	pages        *repositories.StaticPageRepository
}

func NewReferenceLoader(db *gormlib.DB) *ReferenceLoader {
	return &ReferenceLoader{
		governorates: repositories.NewGovernorateRepository(db),
		districts:    repositories.NewDistrictRepository(db),
		parties:      repositories.NewPartyRepository(db),
		colors:       repositories.NewColorRepository(db),
		pages:        repositories.NewStaticPageRepository(db),
	}
}

// LoadFromYAML decodes a dataset and upserts every valid entry.
func (l *ReferenceLoader) LoadFromYAML(ctx context.Context, reader io.Reader) (LoadStats, error) {
	var ds ReferenceDataset
	if err := yaml.NewDecoder(reader).Decode(&ds); err != nil {
		return LoadStats{}, fmt.Errorf("failed to decode reference dataset: %w", err)
	}
	if len(ds.Governorates)+len(ds.Parties)+len(ds.Colors)+len(ds.Pages) == 0 {
		return LoadStats{}, fmt.Errorf("reference dataset is empty")
	}

	var stats LoadStats
	for _, raw := range ds.Governorates {
		if err := l.loadGovernorate(ctx, raw, &stats); err != nil {
			return stats, err
		}
	}
	for _, raw := range ds.Parties {
		if err := l.loadParty(ctx, raw, &stats); err != nil {
			return stats, err
		}
	}
	for _, raw := range ds.Colors {
		if err := l.loadColor(ctx, raw, &stats); err != nil {
			return stats, err
		}
	}
	for _, raw := range ds.Pages {
		if err := l.loadPage(ctx, raw, &stats); err != nil {
			return stats, err
		}
	}

	logging.Info("reference dataset loaded", "created", stats.Created, "updated", stats.Updated, "skipped", stats.Skipped)
	return stats, nil
}

func (l *ReferenceLoader) loadGovernorate(ctx context.Context, raw RawGovernorate, stats *LoadStats) error {
	code := strings.TrimSpace(raw.Code)
	name := strings.TrimSpace(raw.Name)
	if code == "" || name == "" {
		stats.Skipped++
		return nil
	}

	g, err := l.governorates.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	isNew := g == nil
	if isNew {
		g = &gormModels.Governorate{Code: code}
		g.IsActive = true
	}
	g.Name = name
	g.NameEn = strings.TrimSpace(raw.NameEn)
	g.Population = raw.Population
	g.Area = raw.Area

	if err := l.save(isNew, stats, func() error { return l.governorates.Create(ctx, g) }, func() error { return l.governorates.Save(ctx, g) }); err != nil {
		return err
	}

	for _, rd := range raw.Districts {
		if err := l.loadDistrict(ctx, g.ID, rd, stats); err != nil {
			return err
		}
	}
	return nil
}

func (l *ReferenceLoader) loadDistrict(ctx context.Context, governorateID string, raw RawDistrict, stats *LoadStats) error {
	name := strings.TrimSpace(raw.Name)
	if name == "" || raw.Number < 1 {
		stats.Skipped++
		return nil
	}

	d, err := l.districts.GetByNumber(ctx, governorateID, raw.Number)
	if err != nil {
		return err
	}
	isNew := d == nil
	if isNew {
		d = &gormModels.District{GovernorateID: governorateID, Number: raw.Number}
		d.IsActive = true
	}
	d.Name = name
	d.Description = raw.Description

	return l.save(isNew, stats, func() error { return l.districts.Create(ctx, d) }, func() error { return l.districts.Save(ctx, d) })
}

func (l *ReferenceLoader) loadParty(ctx context.Context, raw RawParty, stats *LoadStats) error {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		stats.Skipped++
		return nil
	}

	p, err := l.parties.GetByName(ctx, name)
	if err != nil {
		return err
	}
	isNew := p == nil
	if isNew {
		p = &gormModels.PoliticalParty{Name: name}
		p.IsActive = true
	}
	p.NameEn = strings.TrimSpace(raw.NameEn)
	p.Abbreviation = raw.Abbreviation
	p.Color = raw.Color
	if p.Color == "" {
		p.Color = constants.DefaultPartyColor
	}
	p.Website = raw.Website

	return l.save(isNew, stats, func() error { return l.parties.Create(ctx, p) }, func() error { return l.parties.Save(ctx, p) })
}

func (l *ReferenceLoader) loadColor(ctx context.Context, raw RawColor, stats *LoadStats) error {
	ct := constants.ColorType(raw.Type)
	if !ct.Valid() || raw.Value == "" {
		stats.Skipped++
		return nil
	}

	c, err := l.colors.GetByType(ctx, ct)
	if err != nil {
		return err
	}
	isNew := c == nil
	if isNew {
		c = &gormModels.ColorSettings{ColorType: ct}
		c.IsActive = true
	}
	c.ColorValue = raw.Value
	c.Description = raw.Description

	return l.save(isNew, stats, func() error { return l.colors.Create(ctx, c) }, func() error { return l.colors.Save(ctx, c) })
}

func (l *ReferenceLoader) loadPage(ctx context.Context, raw RawPage, stats *LoadStats) error {
	pt := constants.PageType(raw.Type)
	if !pt.Valid() || strings.TrimSpace(raw.Title) == "" {
		stats.Skipped++
		return nil
	}

	p, err := l.pages.GetByType(ctx, pt)
	if err != nil {
		return err
	}
	if p != nil {
		// Pages are edited through the admin API after the first seed.
		stats.Skipped++
		return nil
	}
	p = &gormModels.StaticPage{PageType: pt, Title: strings.TrimSpace(raw.Title), Content: raw.Content, Order: raw.Order}
	p.IsActive = true

	return l.save(true, stats, func() error { return l.pages.Create(ctx, p) }, nil)
}

func (l *ReferenceLoader) save(isNew bool, stats *LoadStats, create, update func() error) error {
	if isNew {
		if err := create(); err != nil {
			return err
		}
		stats.Created++
		return nil
	}
	if err := update(); err != nil {
		return err
	}
	stats.Updated++
	return nil
}
