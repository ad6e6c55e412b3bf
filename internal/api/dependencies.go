package api

import (
	"time"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/metrics"
	"naebak/content-service/internal/services"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type Repositories struct {
	Representatives *repositories.RepresentativeRepository
	Governorates    *repositories.GovernorateRepository
	Districts       *repositories.DistrictRepository
	Parties         *repositories.PartyRepository
	Pages           *repositories.StaticPageRepository
	Banners         *repositories.BannerRepository
	Colors          *repositories.ColorRepository
	Settings        *repositories.SiteSettingsRepository
	FAQs            *repositories.FAQRepository
	Events          *repositories.EventRepository
	Statistics      *repositories.StatisticsRepository
}

type Services struct {
	Cache           *common.ReadThroughCache
	Representatives *services.RepresentativeService
	Search          *services.SearchService
	Statistics      *services.StatisticsService
	FilterOptions   *services.FilterOptionsService
	Reference       *services.ReferenceService
	SiteContent     *services.SiteContentService
	Banners         *services.BannerService
	Events          *services.EventService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	UpSince  time.Time
}

// InitDependencies wires repositories and services over one GORM pool and the
// sqlx handle used for aggregates. cacheBackend is either the in-memory or
// the redis implementation.
func InitDependencies(orm *gorm.DB, sqlDB *sqlx.DB, cacheBackend common.CacheInterface, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Representatives: repositories.NewRepresentativeRepository(orm),
		Governorates:    repositories.NewGovernorateRepository(orm),
		Districts:       repositories.NewDistrictRepository(orm),
		Parties:         repositories.NewPartyRepository(orm),
		Pages:           repositories.NewStaticPageRepository(orm),
		Banners:         repositories.NewBannerRepository(orm),
		Colors:          repositories.NewColorRepository(orm),
		Settings:        repositories.NewSiteSettingsRepository(orm),
		FAQs:            repositories.NewFAQRepository(orm),
		Events:          repositories.NewEventRepository(orm),
		Statistics:      repositories.NewStatisticsRepository(sqlDB, metricsReg),
	}

	cache := common.NewReadThroughCache(cacheBackend, metricsReg)

	svcs := &Services{
		Cache:           cache,
		Representatives: services.NewRepresentativeService(repos.Representatives, repos.Districts, repos.Parties, cache, metricsReg),
		Search:          services.NewSearchService(repos.Representatives),
		Statistics:      services.NewStatisticsService(repos.Statistics, cache, metricsReg),
		FilterOptions:   services.NewFilterOptionsService(repos.Governorates, repos.Parties, repos.Districts, cache),
		Reference:       services.NewReferenceService(repos.Governorates, repos.Districts, repos.Parties, cache, metricsReg),
		SiteContent:     services.NewSiteContentService(repos.Pages, repos.Colors, repos.Settings, repos.FAQs, metricsReg),
		Banners:         services.NewBannerService(repos.Banners, repos.Representatives, metricsReg),
		Events:          services.NewEventService(repos.Events, repos.Representatives, cache, metricsReg),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		UpSince:  time.Now(),
	}, nil
}
