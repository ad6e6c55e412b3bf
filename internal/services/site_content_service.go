package services

import (
	"context"
	"errors"
	"strings"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/metrics"
	"naebak/content-service/internal/models/dtos/requests"
	"naebak/content-service/internal/models/dtos/responses"
	gormModels "naebak/content-service/internal/models/gorm"
)

// SiteContentService serves static pages, the color theme, site settings and FAQs.
type SiteContentService struct {
	pages    *repositories.StaticPageRepository
	colors   *repositories.ColorRepository
	settings *repositories.SiteSettingsRepository
	faqs     *repositories.FAQRepository
	metrics  *metrics.MetricsRegistry
}

func NewSiteContentService(
	pages *repositories.StaticPageRepository,
	colors *repositories.ColorRepository,
	settings *repositories.SiteSettingsRepository,
	faqs *repositories.FAQRepository,
	metricsReg *metrics.MetricsRegistry,
) *SiteContentService {
	return &SiteContentService{pages: pages, colors: colors, settings: settings, faqs: faqs, metrics: metricsReg}
}

func (s *SiteContentService) ListPages(ctx context.Context) ([]responses.StaticPageResponse, error) {
	rows, err := s.pages.ListActive(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	out := make([]responses.StaticPageResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, responses.NewStaticPageResponse(p))
	}
	return out, nil
}

func (s *SiteContentService) GetPage(ctx context.Context, pageType string) (*responses.StaticPageResponse, error) {
	pt := constants.PageType(pageType)
	if !pt.Valid() {
		return nil, notFound("static page")
	}
	p, err := s.pages.GetActiveByType(ctx, pt)
	if err != nil {
		return nil, storageError(err)
	}
	if p == nil {
		return nil, notFound("static page")
	}
	out := responses.NewStaticPageResponse(*p)
	return &out, nil
}

// UpsertPage creates the page for pageType on first write and merges
// afterwards. It reports whether a row was created.
func (s *SiteContentService) UpsertPage(ctx context.Context, pageType string, decode Decoder) (*responses.StaticPageResponse, bool, error) {
	pt := constants.PageType(pageType)
	if !pt.Valid() {
		return nil, false, notFound("static page")
	}

	p, err := s.pages.GetByType(ctx, pt)
	if err != nil {
		return nil, false, storageError(err)
	}
	created := p == nil
	if created {
		p = &gormModels.StaticPage{PageType: pt}
		p.IsActive = true
	}

	req := requests.NewStaticPageRequest(*p)
	if err := decode(&req); err != nil {
		return nil, false, invalidJSON(err)
	}
	if fields := common.ValidateStruct(req); fields != nil {
		return nil, false, validationError(fields)
	}

	p.Title = strings.TrimSpace(req.Title)
	p.Content = req.Content
	p.MetaDescription = req.MetaDescription
	p.Order = intOr(req.Order, p.Order)
	p.IsActive = boolOr(req.IsActive, p.IsActive)

	if created {
		err = s.pages.Create(ctx, p)
	} else {
		err = s.pages.Save(ctx, p)
	}
	if err != nil {
		return nil, false, classifyWriteError(err, "page_type", "static page")
	}

	s.metrics.RecordWrite("static_page", "upsert")
	logging.Info("static page saved", "page_type", pt, "created", created)

	out := responses.NewStaticPageResponse(*p)
	return &out, created, nil
}

func (s *SiteContentService) ListColors(ctx context.Context) ([]responses.ColorResponse, error) {
	rows, err := s.colors.ListActive(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	out := make([]responses.ColorResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, responses.NewColorResponse(c))
	}
	return out, nil
}

func (s *SiteContentService) ColorScheme(ctx context.Context) (*responses.ColorSchemeResponse, error) {
	rows, err := s.colors.ListActive(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	out := responses.NewColorSchemeResponse(rows)
	return &out, nil
}

func (s *SiteContentService) GetColor(ctx context.Context, colorType string) (*responses.ColorResponse, error) {
	ct := constants.ColorType(colorType)
	if !ct.Valid() {
		return nil, notFound("color setting")
	}
	c, err := s.colors.GetByType(ctx, ct)
	if err != nil {
		return nil, storageError(err)
	}
	if c == nil || !c.IsActive {
		return nil, notFound("color setting")
	}
	out := responses.NewColorResponse(*c)
	return &out, nil
}

// UpsertColor behaves like UpsertPage, keyed by color role.
func (s *SiteContentService) UpsertColor(ctx context.Context, colorType string, decode Decoder) (*responses.ColorResponse, bool, error) {
	ct := constants.ColorType(colorType)
	if !ct.Valid() {
		return nil, false, notFound("color setting")
	}

	c, err := s.colors.GetByType(ctx, ct)
	if err != nil {
		return nil, false, storageError(err)
	}
	created := c == nil
	if created {
		c = &gormModels.ColorSettings{ColorType: ct}
		c.IsActive = true
	}

	req := requests.NewColorRequest(*c)
	if err := decode(&req); err != nil {
		return nil, false, invalidJSON(err)
	}
	if fields := common.ValidateStruct(req); fields != nil {
		return nil, false, validationError(fields)
	}

	c.ColorValue = req.ColorValue
	c.Description = req.Description
	c.IsActive = boolOr(req.IsActive, c.IsActive)

	if created {
		err = s.colors.Create(ctx, c)
	} else {
		err = s.colors.Save(ctx, c)
	}
	if err != nil {
		return nil, false, classifyWriteError(err, "color_type", "color setting")
	}

	s.metrics.RecordWrite("color", "upsert")
	logging.Info("color saved", "color_type", ct, "value", c.ColorValue)

	out := responses.NewColorResponse(*c)
	return &out, created, nil
}

func defaultSiteSettings() gormModels.SiteSettings {
	s := gormModels.SiteSettings{
		SiteName:          constants.DefaultSiteName,
		VisitorCounterMin: constants.DefaultVisitorCounterMin,
		VisitorCounterMax: constants.DefaultVisitorCounterMax,
	}
	s.IsActive = true
	return s
}

// GetSettings returns the singleton, creating it with defaults on first read.
func (s *SiteContentService) GetSettings(ctx context.Context) (*responses.SiteSettingsResponse, error) {
	row, created, err := s.settings.GetOrCreate(ctx, defaultSiteSettings())
	if err != nil {
		return nil, storageError(err)
	}
	if created {
		logging.Info("site settings initialised with defaults", "id", row.ID)
	}
	out := responses.NewSiteSettingsResponse(*row)
	return &out, nil
}

func (s *SiteContentService) UpdateSettings(ctx context.Context, decode Decoder) (*responses.SiteSettingsResponse, error) {
	row, _, err := s.settings.GetOrCreate(ctx, defaultSiteSettings())
	if err != nil {
		return nil, storageError(err)
	}

	req := requests.NewSiteSettingsRequest(*row)
	if err := decode(&req); err != nil {
		return nil, invalidJSON(err)
	}
	if fields := common.ValidateStruct(req); fields != nil {
		return nil, validationError(fields)
	}
	applySiteSettingsRequest(row, req)

	if err := s.settings.Save(ctx, row); err != nil {
		return nil, storageError(err)
	}
	s.metrics.RecordWrite("site_settings", "update")
	logging.Info("site settings updated", "id", row.ID)

	out := responses.NewSiteSettingsResponse(*row)
	return &out, nil
}

// CreateSettings fails with ErrCodeSingleton once a row exists.
func (s *SiteContentService) CreateSettings(ctx context.Context, decode Decoder) (*responses.SiteSettingsResponse, error) {
	row := defaultSiteSettings()

	req := requests.NewSiteSettingsRequest(row)
	if err := decode(&req); err != nil {
		return nil, invalidJSON(err)
	}
	if fields := common.ValidateStruct(req); fields != nil {
		return nil, validationError(fields)
	}
	applySiteSettingsRequest(&row, req)

	if err := s.settings.CreateSingleton(ctx, &row); err != nil {
		if errors.Is(err, repositories.ErrSingletonExists) {
			return nil, NewContentError(constants.ErrCodeSingleton, err)
		}
		return nil, storageError(err)
	}
	s.metrics.RecordWrite("site_settings", "create")
	logging.Info("site settings created", "id", row.ID)

	out := responses.NewSiteSettingsResponse(row)
	return &out, nil
}

func applySiteSettingsRequest(row *gormModels.SiteSettings, req requests.SiteSettingsRequest) {
	row.SiteName = strings.TrimSpace(req.SiteName)
	row.SiteDescription = req.SiteDescription
	row.ContactEmail = req.ContactEmail
	row.ContactPhone = req.ContactPhone
	row.ContactAddress = req.ContactAddress
	row.FacebookURL = req.FacebookURL
	row.TwitterURL = req.TwitterURL
	row.InstagramURL = req.InstagramURL
	row.YoutubeURL = req.YoutubeURL
	row.LinkedinURL = req.LinkedinURL
	row.VisitorCounterMin = req.VisitorCounterMin
	row.VisitorCounterMax = req.VisitorCounterMax
	row.LogoGreen = req.LogoGreen
	row.LogoWhite = req.LogoWhite
	row.Favicon = req.Favicon
}

func (s *SiteContentService) ListFAQs(ctx context.Context, category string) ([]responses.FAQResponse, error) {
	rows, err := s.faqs.ListActive(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, storageError(err)
	}
	out := make([]responses.FAQResponse, 0, len(rows))
	for _, f := range rows {
		out = append(out, responses.NewFAQResponse(f))
	}
	return out, nil
}

func (s *SiteContentService) GetFAQ(ctx context.Context, id string) (*responses.FAQResponse, error) {
	f, err := s.faqs.GetActiveByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if f == nil {
		return nil, notFound("faq")
	}
	out := responses.NewFAQResponse(*f)
	return &out, nil
}

func (s *SiteContentService) CreateFAQ(ctx context.Context, req requests.FAQRequest) (*responses.FAQResponse, error) {
	if fields := common.ValidateStruct(req); fields != nil {
		return nil, validationError(fields)
	}

	f := gormModels.FAQ{}
	f.IsActive = true
	applyFAQRequest(&f, req)

	if err := s.faqs.Create(ctx, &f); err != nil {
		return nil, storageError(err)
	}
	s.metrics.RecordWrite("faq", "create")
	logging.Info("faq created", "id", f.ID, "category", f.Category)

	out := responses.NewFAQResponse(f)
	return &out, nil
}

func (s *SiteContentService) UpdateFAQ(ctx context.Context, id string, decode Decoder) (*responses.FAQResponse, error) {
	f, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if f == nil {
		return nil, notFound("faq")
	}

	req := requests.NewFAQRequest(*f)
	if err := decode(&req); err != nil {
		return nil, invalidJSON(err)
	}
	if fields := common.ValidateStruct(req); fields != nil {
		return nil, validationError(fields)
	}
	applyFAQRequest(f, req)

	if err := s.faqs.Save(ctx, f); err != nil {
		return nil, storageError(err)
	}
	s.metrics.RecordWrite("faq", "update")

	out := responses.NewFAQResponse(*f)
	return &out, nil
}

func (s *SiteContentService) DeactivateFAQ(ctx context.Context, id string) error {
	changed, err := s.faqs.Deactivate(ctx, id)
	if err != nil {
		return storageError(err)
	}
	if !changed {
		return notFound("faq")
	}
	s.metrics.RecordWrite("faq", "deactivate")
	return nil
}

func applyFAQRequest(f *gormModels.FAQ, req requests.FAQRequest) {
	f.Question = strings.TrimSpace(req.Question)
	f.Answer = req.Answer
	f.Category = strings.TrimSpace(req.Category)
	f.Order = intOr(req.Order, f.Order)
	f.IsActive = boolOr(req.IsActive, f.IsActive)
}
