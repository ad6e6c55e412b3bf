package services

import (
	"context"
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

// BannerService keeps at most one default main banner.
type BannerService struct {
	banners *repositories.BannerRepository
	reps    *repositories.RepresentativeRepository
	metrics *metrics.MetricsRegistry
}

func NewBannerService(banners *repositories.BannerRepository, reps *repositories.RepresentativeRepository, metricsReg *metrics.MetricsRegistry) *BannerService {
	return &BannerService{banners: banners, reps: reps, metrics: metricsReg}
}

func (s *BannerService) List(ctx context.Context, f repositories.BannerFilter) ([]responses.BannerResponse, error) {
	rows, err := s.banners.ListActive(ctx, f)
	if err != nil {
		return nil, storageError(err)
	}
	out := make([]responses.BannerResponse, 0, len(rows))
	for _, b := range rows {
		out = append(out, responses.NewBannerResponse(b))
	}
	return out, nil
}

func (s *BannerService) Get(ctx context.Context, id string) (*responses.BannerResponse, error) {
	b, err := s.banners.GetActiveByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if b == nil {
		return nil, notFound("banner")
	}
	return s.render(ctx, b), nil
}

func (s *BannerService) Default(ctx context.Context) (*responses.BannerResponse, error) {
	b, err := s.banners.GetDefaultMain(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	if b == nil {
		return nil, NewContentError(constants.ErrCodeNoDefaultBanner, nil)
	}
	return s.render(ctx, b), nil
}

func (s *BannerService) Create(ctx context.Context, req requests.BannerRequest) (*responses.BannerResponse, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	b := gormModels.Banner{}
	b.IsActive = true
	applyBannerRequest(&b, req)

	cleared, err := s.banners.SaveWithDefault(ctx, &b, true)
	if err != nil {
		return nil, storageError(err)
	}
	s.afterWrite(&b, "create", cleared)
	return s.render(ctx, &b), nil
}

func (s *BannerService) Update(ctx context.Context, id string, decode Decoder) (*responses.BannerResponse, error) {
	b, err := s.banners.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if b == nil {
		return nil, notFound("banner")
	}

	req := requests.NewBannerRequest(*b)
	if err := decode(&req); err != nil {
		return nil, invalidJSON(err)
	}
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	applyBannerRequest(b, req)

	cleared, err := s.banners.SaveWithDefault(ctx, b, false)
	if err != nil {
		return nil, storageError(err)
	}
	s.afterWrite(b, "update", cleared)
	return s.render(ctx, b), nil
}

func (s *BannerService) Deactivate(ctx context.Context, id string) error {
	changed, err := s.banners.Deactivate(ctx, id)
	if err != nil {
		return storageError(err)
	}
	if !changed {
		return notFound("banner")
	}
	s.metrics.RecordWrite("banner", "deactivate")
	logging.Info("banner deactivated", "id", id)
	return nil
}

func (s *BannerService) validate(ctx context.Context, req requests.BannerRequest) error {
	fields := common.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}
	if _, bad := fields["representative"]; !bad && req.Representative != nil && *req.Representative != "" {
		rep, err := s.reps.GetByID(ctx, *req.Representative)
		if err != nil {
			return storageError(err)
		}
		if rep == nil {
			fields["representative"] = doesNotExist(*req.Representative)
		}
	}
	if len(fields) > 0 {
		return validationError(fields)
	}
	return nil
}

func (s *BannerService) afterWrite(b *gormModels.Banner, operation string, cleared int64) {
	s.metrics.RecordWrite("banner", operation)
	logging.Info("banner saved", "id", b.ID, "banner_type", b.BannerType, "is_default", b.IsDefault)
	if cleared > 0 {
		logging.Info("banner default reassigned", "id", b.ID, "cleared", cleared)
	}
}

// render attaches the representative name when the banner belongs to one.
func (s *BannerService) render(ctx context.Context, b *gormModels.Banner) *responses.BannerResponse {
	if b.RepresentativeID != nil && b.Representative == nil {
		rep, err := s.reps.GetByID(ctx, *b.RepresentativeID)
		if err != nil {
			logging.Warn("failed to load banner representative", "banner_id", b.ID, "error", err)
		}
		b.Representative = rep
	}
	out := responses.NewBannerResponse(*b)
	return &out
}

func applyBannerRequest(b *gormModels.Banner, req requests.BannerRequest) {
	b.Name = strings.TrimSpace(req.Name)
	b.BannerType = constants.BannerType(req.BannerType)
	b.Image = req.Image
	b.AltText = req.AltText
	b.RepresentativeID = nil
	if req.Representative != nil && *req.Representative != "" {
		id := *req.Representative
		b.RepresentativeID = &id
	}
	b.IsDefault = boolOr(req.IsDefault, b.IsDefault)
	b.IsActive = boolOr(req.IsActive, b.IsActive)
}
