package services

import (
	"context"
	"strings"
	"time"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/filters"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/metrics"
	"naebak/content-service/internal/models/dtos/requests"
	"naebak/content-service/internal/models/dtos/responses"
	gormModels "naebak/content-service/internal/models/gorm"

	"gorm.io/datatypes"
)

const maxSlugAttempts = 5

// Decoder fills dst from the request body. Updates pass a DTO pre-filled
// from the stored row, so absent fields keep their current values.
type Decoder func(dst any) error

// RepresentativeListParams are the parsed query parameters of the list endpoint.
type RepresentativeListParams struct {
	Filter   filters.RepresentativeFilter
	Ordering string
	Page     common.PageParams
}

// RepresentativeService owns representative listing, profiles and writes.
type RepresentativeService struct {
	reps      *repositories.RepresentativeRepository
	districts *repositories.DistrictRepository
	parties   *repositories.PartyRepository
	cache     *common.ReadThroughCache
	metrics   *metrics.MetricsRegistry
	now       func() time.Time
}

func NewRepresentativeService(
	reps *repositories.RepresentativeRepository,
	districts *repositories.DistrictRepository,
	parties *repositories.PartyRepository,
	cache *common.ReadThroughCache,
	metricsReg *metrics.MetricsRegistry,
) *RepresentativeService {
	return &RepresentativeService{
		reps:      reps,
		districts: districts,
		parties:   parties,
		cache:     cache,
		metrics:   metricsReg,
		now:       time.Now,
	}
}

// List returns one page of visible representatives with counters over the
// whole filtered set. Next/Previous links are left for the handler.
func (s *RepresentativeService) List(ctx context.Context, params RepresentativeListParams) (*responses.RepresentativeListResponse, error) {
	q := repositories.RepresentativeQuery{
		Filter: params.Filter,
		Terms:  params.Filter.Search,
		Order:  filters.RepresentativeOrdering.Clauses(params.Ordering),
		Offset: params.Page.Offset(),
		Limit:  params.Page.PageSize,
	}

	stats, err := s.reps.StatsVisible(ctx, q)
	if err != nil {
		return nil, storageError(err)
	}
	if err := common.CheckPageInRange(params.Page, stats.TotalCount); err != nil {
		return nil, NewContentError(constants.ErrCodeInvalidPage, err)
	}

	rows, err := s.reps.ListVisible(ctx, q)
	if err != nil {
		return nil, storageError(err)
	}

	return &responses.RepresentativeListResponse{
		Count:   stats.TotalCount,
		Results: responses.NewRepresentativeListItems(rows, s.now()),
		Stats: responses.ListStats{
			TotalCount:         stats.TotalCount,
			DistinguishedCount: stats.DistinguishedCount,
			MaleCount:          stats.MaleCount,
			FemaleCount:        stats.FemaleCount,
		},
	}, nil
}

// GetBySlug serves the public profile through the read-through cache.
func (s *RepresentativeService) GetBySlug(ctx context.Context, slug string) (*responses.RepresentativeDetail, error) {
	var detail responses.RepresentativeDetail

	err := s.cache.Fetch(ctx, constants.RepresentativeDetailKey(slug), constants.TTLRepresentativeDetail, &detail, func(ctx context.Context) (any, error) {
		rep, err := s.reps.GetVisibleBySlug(ctx, slug)
		if err != nil {
			return nil, storageError(err)
		}
		if rep == nil {
			return nil, notFound("representative")
		}
		return responses.NewRepresentativeDetail(*rep, s.now()), nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *RepresentativeService) Create(ctx context.Context, req requests.RepresentativeRequest) (*responses.RepresentativeDetail, error) {
	if err := s.validate(ctx, req, ""); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		generated, err := s.uniqueSlug(ctx, common.RepresentativeSlug(req.Name, req.NameEn), "")
		if err != nil {
			return nil, err
		}
		slug = generated
	}

	rep := gormModels.Representative{
		Status:       constants.StatusCandidate,
		ElectionYear: constants.DefaultElectionYear,
	}
	rep.IsActive = true
	applyRepresentativeRequest(&rep, req)
	rep.Slug = slug

	if err := s.reps.Create(ctx, &rep); err != nil {
		return nil, classifyWriteError(err, "slug", "representative")
	}

	s.cache.Invalidate(string(constants.CachePrefixStatistics))
	s.metrics.RecordWrite("representative", "create")
	logging.Info("representative created", "id", rep.ID, "slug", rep.Slug, "district_id", rep.DistrictID)

	return s.profile(ctx, rep.Slug)
}

// Update merges the decoded body over the stored profile found by slug.
func (s *RepresentativeService) Update(ctx context.Context, slug string, decode Decoder) (*responses.RepresentativeDetail, error) {
	rep, err := s.reps.GetBySlug(ctx, slug)
	if err != nil {
		return nil, storageError(err)
	}
	if rep == nil {
		return nil, notFound("representative")
	}

	req := requests.NewRepresentativeRequest(*rep)
	if err := decode(&req); err != nil {
		return nil, invalidJSON(err)
	}
	if err := s.validate(ctx, req, rep.ID); err != nil {
		return nil, err
	}

	oldSlug := rep.Slug
	applyRepresentativeRequest(rep, req)
	if newSlug := strings.TrimSpace(req.Slug); newSlug != "" {
		rep.Slug = newSlug
	} else {
		rep.Slug = oldSlug
	}

	if err := s.reps.Save(ctx, rep); err != nil {
		return nil, classifyWriteError(err, "slug", "representative")
	}

	s.cache.Invalidate(
		constants.RepresentativeDetailKey(oldSlug),
		constants.RepresentativeDetailKey(rep.Slug),
		string(constants.CachePrefixStatistics),
	)
	s.metrics.RecordWrite("representative", "update")
	logging.Info("representative updated", "id", rep.ID, "slug", rep.Slug)

	return s.profile(ctx, rep.Slug)
}

// Deactivate hides the profile; rows are never removed through the API.
func (s *RepresentativeService) Deactivate(ctx context.Context, slug string) error {
	rep, err := s.reps.GetBySlug(ctx, slug)
	if err != nil {
		return storageError(err)
	}
	if rep == nil {
		return notFound("representative")
	}

	changed, err := s.reps.Deactivate(ctx, rep.ID)
	if err != nil {
		return storageError(err)
	}
	if !changed {
		return notFound("representative")
	}

	s.cache.Invalidate(constants.RepresentativeDetailKey(rep.Slug), string(constants.CachePrefixStatistics))
	s.metrics.RecordWrite("representative", "deactivate")
	logging.Info("representative deactivated", "id", rep.ID, "slug", rep.Slug)
	return nil
}

func (s *RepresentativeService) profile(ctx context.Context, slug string) (*responses.RepresentativeDetail, error) {
	rep, err := s.reps.GetProfileBySlug(ctx, slug)
	if err != nil {
		return nil, storageError(err)
	}
	if rep == nil {
		return nil, notFound("representative")
	}
	detail := responses.NewRepresentativeDetail(*rep, s.now())
	return &detail, nil
}

// validate runs struct rules, then reference and slug checks. selfID is
// empty on create.
func (s *RepresentativeService) validate(ctx context.Context, req requests.RepresentativeRequest, selfID string) error {
	fields := common.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}

	if _, bad := fields["district"]; !bad {
		district, err := s.districts.GetByID(ctx, req.District)
		if err != nil {
			return storageError(err)
		}
		if district == nil {
			fields["district"] = doesNotExist(req.District)
		}
	}
	if _, bad := fields["party"]; !bad && req.Party != nil && *req.Party != "" {
		party, err := s.parties.GetByID(ctx, *req.Party)
		if err != nil {
			return storageError(err)
		}
		if party == nil {
			fields["party"] = doesNotExist(*req.Party)
		}
	}
	if slug := strings.TrimSpace(req.Slug); slug != "" {
		if _, bad := fields["slug"]; !bad {
			taken, err := s.reps.SlugTaken(ctx, slug, selfID)
			if err != nil {
				return storageError(err)
			}
			if taken {
				fields["slug"] = alreadyExists("representative", "slug")
			}
		}
	}

	if len(fields) > 0 {
		return validationError(fields)
	}
	return nil
}

// uniqueSlug tries base, then base plus a random suffix.
func (s *RepresentativeService) uniqueSlug(ctx context.Context, base, selfID string) (string, error) {
	candidate := base
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		taken, err := s.reps.SlugTaken(ctx, candidate, selfID)
		if err != nil {
			return "", storageError(err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = common.WithRandomSuffix(base)
	}
	return "", fieldError("slug", "Could not derive a unique slug; supply one explicitly.")
}

func applyRepresentativeRequest(rep *gormModels.Representative, req requests.RepresentativeRequest) {
	rep.Name = strings.TrimSpace(req.Name)
	rep.NameEn = strings.TrimSpace(req.NameEn)
	rep.Gender = constants.Gender(req.Gender)
	rep.BirthDate = parseDate(req.BirthDate)
	rep.Profession = req.Profession
	rep.Education = req.Education
	rep.PartyID = nil
	if req.Party != nil && *req.Party != "" {
		party := *req.Party
		rep.PartyID = &party
	}
	rep.DistrictID = req.District
	if req.Status != "" {
		rep.Status = constants.RepresentativeStatus(req.Status)
	}
	rep.ElectoralNumber = req.ElectoralNumber
	rep.ElectoralSymbol = req.ElectoralSymbol
	if req.ElectionYear != nil {
		rep.ElectionYear = *req.ElectionYear
	}
	rep.ProfileImage = req.ProfileImage
	rep.BannerImage = req.BannerImage
	if req.Rating != nil {
		rep.Rating = roundTo(*req.Rating, 1)
	}
	if req.RatingCount != nil {
		rep.RatingCount = *req.RatingCount
	}
	if req.SolvedComplaints != nil {
		rep.SolvedComplaints = *req.SolvedComplaints
	}
	if req.ReceivedComplaints != nil {
		rep.ReceivedComplaints = *req.ReceivedComplaints
	}
	if req.IsDistinguished != nil {
		rep.IsDistinguished = *req.IsDistinguished
	}
	if req.AdminApproved != nil {
		rep.AdminApproved = *req.AdminApproved
	}
	if req.IsActive != nil {
		rep.IsActive = *req.IsActive
	}
	rep.Bio = req.Bio
	rep.AchievementsText = req.Achievements
	rep.ElectoralProgram = req.ElectoralProgram
	rep.Phone = req.Phone
	rep.Email = req.Email
	rep.Facebook = req.Facebook
	rep.Twitter = req.Twitter
	rep.Website = req.Website
}

// parseDate expects a value already checked by the datetime rule.
func parseDate(s *string) *datatypes.Date {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(requests.DateLayout, *s)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}
