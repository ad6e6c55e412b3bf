package services

import (
	"context"
	"strings"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/filters"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/metrics"
	"naebak/content-service/internal/models/dtos/requests"
	"naebak/content-service/internal/models/dtos/responses"
	gormModels "naebak/content-service/internal/models/gorm"
)

// ReferenceService manages governorates, districts and political parties.
// Every write drops the caches that embed reference data.
type ReferenceService struct {
	governorates *repositories.GovernorateRepository
	districts    *repositories.DistrictRepository
	parties      *repositories.PartyRepository
	cache        *common.ReadThroughCache
	metrics      *metrics.MetricsRegistry
}

func NewReferenceService(
	governorates *repositories.GovernorateRepository,
	districts *repositories.DistrictRepository,
	parties *repositories.PartyRepository,
	cache *common.ReadThroughCache,
	metricsReg *metrics.MetricsRegistry,
) *ReferenceService {
	return &ReferenceService{
		governorates: governorates,
		districts:    districts,
		parties:      parties,
		cache:        cache,
		metrics:      metricsReg,
	}
}

// ListGovernorates is cached only for the unfiltered, default-ordered list.
func (s *ReferenceService) ListGovernorates(ctx context.Context, f filters.GovernorateFilter, ordering string) ([]responses.GovernorateResponse, error) {
	load := func(ctx context.Context) (any, error) {
		rows, err := s.governorates.ListActive(ctx, f, filters.GovernorateOrdering.Clauses(ordering))
		if err != nil {
			return nil, storageError(err)
		}
		return responses.NewGovernorateResponses(rows), nil
	}

	if !f.IsZero() || ordering != "" {
		out, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return out.([]responses.GovernorateResponse), nil
	}

	var out []responses.GovernorateResponse
	if err := s.cache.Fetch(ctx, string(constants.CachePrefixGovernorateList), constants.TTLGovernorateList, &out, load); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReferenceService) GetGovernorate(ctx context.Context, id string) (*responses.GovernorateResponse, error) {
	g, err := s.governorates.GetActiveByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if g == nil {
		return nil, notFound("governorate")
	}
	out := responses.NewGovernorateResponse(*g)
	return &out, nil
}

func (s *ReferenceService) CreateGovernorate(ctx context.Context, req requests.GovernorateRequest) (*responses.GovernorateResponse, error) {
	if err := s.validateGovernorate(ctx, req, ""); err != nil {
		return nil, err
	}

	g := gormModels.Governorate{}
	g.IsActive = true
	applyGovernorateRequest(&g, req)

	if err := s.governorates.Create(ctx, &g); err != nil {
		return nil, classifyWriteError(err, "name", "governorate")
	}
	s.afterReferenceWrite("governorate", "create", g.ID)

	out := responses.NewGovernorateResponse(g)
	return &out, nil
}

func (s *ReferenceService) UpdateGovernorate(ctx context.Context, id string, decode Decoder) (*responses.GovernorateResponse, error) {
	g, err := s.governorates.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if g == nil {
		return nil, notFound("governorate")
	}

	req := requests.NewGovernorateRequest(*g)
	if err := decode(&req); err != nil {
		return nil, invalidJSON(err)
	}
	if err := s.validateGovernorate(ctx, req, g.ID); err != nil {
		return nil, err
	}
	applyGovernorateRequest(g, req)

	if err := s.governorates.Save(ctx, g); err != nil {
		return nil, classifyWriteError(err, "name", "governorate")
	}
	s.afterReferenceWrite("governorate", "update", g.ID)

	out := responses.NewGovernorateResponse(*g)
	return &out, nil
}

func (s *ReferenceService) DeactivateGovernorate(ctx context.Context, id string) error {
	return s.deactivate(ctx, "governorate", id, s.governorates.Deactivate)
}

func (s *ReferenceService) validateGovernorate(ctx context.Context, req requests.GovernorateRequest, selfID string) error {
	fields := common.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}
	if _, bad := fields["name"]; !bad {
		taken, err := s.governorates.NameTaken(ctx, strings.TrimSpace(req.Name), selfID)
		if err != nil {
			return storageError(err)
		}
		if taken {
			fields["name"] = alreadyExists("governorate", "name")
		}
	}
	if _, bad := fields["code"]; !bad {
		taken, err := s.governorates.CodeTaken(ctx, strings.TrimSpace(req.Code), selfID)
		if err != nil {
			return storageError(err)
		}
		if taken {
			fields["code"] = alreadyExists("governorate", "code")
		}
	}
	if len(fields) > 0 {
		return validationError(fields)
	}
	return nil
}

func applyGovernorateRequest(g *gormModels.Governorate, req requests.GovernorateRequest) {
	g.Name = strings.TrimSpace(req.Name)
	g.NameEn = strings.TrimSpace(req.NameEn)
	g.Code = strings.TrimSpace(req.Code)
	g.Population = req.Population
	g.Area = req.Area
	g.IsActive = boolOr(req.IsActive, g.IsActive)
}

func (s *ReferenceService) ListDistricts(ctx context.Context, f filters.DistrictFilter) ([]responses.DistrictResponse, error) {
	rows, err := s.districts.ListActive(ctx, f)
	if err != nil {
		return nil, storageError(err)
	}
	return responses.NewDistrictResponses(rows), nil
}

func (s *ReferenceService) GetDistrict(ctx context.Context, id string) (*responses.DistrictResponse, error) {
	d, err := s.districts.GetActiveWithGovernorate(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if d == nil {
		return nil, notFound("district")
	}
	out := responses.NewDistrictResponse(*d)
	return &out, nil
}

func (s *ReferenceService) CreateDistrict(ctx context.Context, req requests.DistrictRequest) (*responses.DistrictResponse, error) {
	if err := s.validateDistrict(ctx, req, ""); err != nil {
		return nil, err
	}

	d := gormModels.District{}
	d.IsActive = true
	applyDistrictRequest(&d, req)

	if err := s.districts.Create(ctx, &d); err != nil {
		return nil, classifyWriteError(err, "number", "district")
	}
	s.afterReferenceWrite("district", "create", d.ID)
	return s.districtResponse(ctx, d.ID)
}

func (s *ReferenceService) UpdateDistrict(ctx context.Context, id string, decode Decoder) (*responses.DistrictResponse, error) {
	d, err := s.districts.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if d == nil {
		return nil, notFound("district")
	}

	req := requests.NewDistrictRequest(*d)
	if err := decode(&req); err != nil {
		return nil, invalidJSON(err)
	}
	if err := s.validateDistrict(ctx, req, d.ID); err != nil {
		return nil, err
	}
	applyDistrictRequest(d, req)

	if err := s.districts.Save(ctx, d); err != nil {
		return nil, classifyWriteError(err, "number", "district")
	}
	s.afterReferenceWrite("district", "update", d.ID)
	return s.districtResponse(ctx, d.ID)
}

func (s *ReferenceService) DeactivateDistrict(ctx context.Context, id string) error {
	return s.deactivate(ctx, "district", id, s.districts.Deactivate)
}

func (s *ReferenceService) districtResponse(ctx context.Context, id string) (*responses.DistrictResponse, error) {
	d, err := s.districts.GetWithGovernorate(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if d == nil {
		return nil, notFound("district")
	}
	out := responses.NewDistrictResponse(*d)
	return &out, nil
}

func (s *ReferenceService) validateDistrict(ctx context.Context, req requests.DistrictRequest, selfID string) error {
	fields := common.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}
	if _, bad := fields["governorate"]; !bad {
		g, err := s.governorates.GetByID(ctx, req.Governorate)
		if err != nil {
			return storageError(err)
		}
		if g == nil {
			fields["governorate"] = doesNotExist(req.Governorate)
		}
	}
	_, badGov := fields["governorate"]
	_, badNumber := fields["number"]
	if !badGov && !badNumber {
		taken, err := s.districts.NumberTaken(ctx, req.Governorate, req.Number, selfID)
		if err != nil {
			return storageError(err)
		}
		if taken {
			fields["number"] = "The fields governorate, number must make a unique set."
		}
	}
	if len(fields) > 0 {
		return validationError(fields)
	}
	return nil
}

func applyDistrictRequest(d *gormModels.District, req requests.DistrictRequest) {
	d.Name = strings.TrimSpace(req.Name)
	d.GovernorateID = req.Governorate
	d.Number = req.Number
	d.Description = req.Description
	d.IsActive = boolOr(req.IsActive, d.IsActive)
}

func (s *ReferenceService) ListParties(ctx context.Context, f filters.PartyFilter) ([]responses.PartyResponse, error) {
	rows, err := s.parties.ListActive(ctx, f)
	if err != nil {
		return nil, storageError(err)
	}
	return responses.NewPartyResponses(rows), nil
}

func (s *ReferenceService) GetParty(ctx context.Context, id string) (*responses.PartyResponse, error) {
	p, err := s.parties.GetActiveByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if p == nil {
		return nil, notFound("political party")
	}
	out := responses.NewPartyResponse(*p)
	return &out, nil
}

func (s *ReferenceService) CreateParty(ctx context.Context, req requests.PartyRequest) (*responses.PartyResponse, error) {
	if err := s.validateParty(ctx, req, ""); err != nil {
		return nil, err
	}

	p := gormModels.PoliticalParty{}
	p.IsActive = true
	applyPartyRequest(&p, req)

	if err := s.parties.Create(ctx, &p); err != nil {
		return nil, classifyWriteError(err, "name", "political party")
	}
	s.afterReferenceWrite("party", "create", p.ID)

	out := responses.NewPartyResponse(p)
	return &out, nil
}

func (s *ReferenceService) UpdateParty(ctx context.Context, id string, decode Decoder) (*responses.PartyResponse, error) {
	p, err := s.parties.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if p == nil {
		return nil, notFound("political party")
	}

	req := requests.NewPartyRequest(*p)
	if err := decode(&req); err != nil {
		return nil, invalidJSON(err)
	}
	if err := s.validateParty(ctx, req, p.ID); err != nil {
		return nil, err
	}
	applyPartyRequest(p, req)

	if err := s.parties.Save(ctx, p); err != nil {
		return nil, classifyWriteError(err, "name", "political party")
	}
	s.afterReferenceWrite("party", "update", p.ID)

	out := responses.NewPartyResponse(*p)
	return &out, nil
}

func (s *ReferenceService) DeactivateParty(ctx context.Context, id string) error {
	return s.deactivate(ctx, "political party", id, s.parties.Deactivate)
}

func (s *ReferenceService) validateParty(ctx context.Context, req requests.PartyRequest, selfID string) error {
	fields := common.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}
	if _, bad := fields["name"]; !bad {
		taken, err := s.parties.NameTaken(ctx, strings.TrimSpace(req.Name), selfID)
		if err != nil {
			return storageError(err)
		}
		if taken {
			fields["name"] = alreadyExists("political party", "name")
		}
	}
	if len(fields) > 0 {
		return validationError(fields)
	}
	return nil
}

func applyPartyRequest(p *gormModels.PoliticalParty, req requests.PartyRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.NameEn = strings.TrimSpace(req.NameEn)
	p.Abbreviation = req.Abbreviation
	p.Logo = req.Logo
	p.Color = req.Color
	if p.Color == "" {
		p.Color = constants.DefaultPartyColor
	}
	p.FoundedDate = parseDate(req.FoundedDate)
	p.Description = req.Description
	p.Website = req.Website
	p.IsActive = boolOr(req.IsActive, p.IsActive)
}

func (s *ReferenceService) deactivate(ctx context.Context, entity, id string, fn func(context.Context, string) (bool, error)) error {
	changed, err := fn(ctx, id)
	if err != nil {
		return storageError(err)
	}
	if !changed {
		return notFound(entity)
	}
	s.afterReferenceWrite(entity, "deactivate", id)
	return nil
}

// afterReferenceWrite drops cached payloads that embed reference rows.
// Cached representative profiles expire on their own TTL.
func (s *ReferenceService) afterReferenceWrite(entity, operation, id string) {
	s.cache.Invalidate(
		string(constants.CachePrefixGovernorateList),
		string(constants.CachePrefixFilterOptions),
		string(constants.CachePrefixStatistics),
	)
	s.metrics.RecordWrite(entity, operation)
	logging.Info("reference data changed", "entity", entity, "operation", operation, "id", id)
}
