package services

import (
	"context"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/filters"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/models/dtos/responses"
)

// FilterOptionsService feeds the representative search form.
type FilterOptionsService struct {
	governorates *repositories.GovernorateRepository
	parties      *repositories.PartyRepository
	districts    *repositories.DistrictRepository
	cache        *common.ReadThroughCache
}

func NewFilterOptionsService(
	governorates *repositories.GovernorateRepository,
	parties *repositories.PartyRepository,
	districts *repositories.DistrictRepository,
	cache *common.ReadThroughCache,
) *FilterOptionsService {
	return &FilterOptionsService{governorates: governorates, parties: parties, districts: districts, cache: cache}
}

func (s *FilterOptionsService) Get(ctx context.Context) (*responses.FilterOptionsResponse, error) {
	var out responses.FilterOptionsResponse

	err := s.cache.Fetch(ctx, string(constants.CachePrefixFilterOptions), constants.TTLFilterOptions, &out, func(ctx context.Context) (any, error) {
		govs, err := s.governorates.ListActive(ctx, filters.GovernorateFilter{}, filters.GovernorateOrdering.Clauses(""))
		if err != nil {
			return nil, storageError(err)
		}
		parties, err := s.parties.ListActive(ctx, filters.PartyFilter{})
		if err != nil {
			return nil, storageError(err)
		}
		districts, err := s.districts.ListActive(ctx, filters.DistrictFilter{})
		if err != nil {
			return nil, storageError(err)
		}

		return &responses.FilterOptionsResponse{
			Governorates: responses.NewGovernorateResponses(govs),
			Parties:      responses.NewPartyResponses(parties),
			Districts:    responses.NewDistrictResponses(districts),
			Genders:      choiceResponses(constants.GenderChoices),
			Statuses:     choiceResponses(constants.StatusChoices),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func choiceResponses(choices []constants.Choice) []responses.ChoiceResponse {
	out := make([]responses.ChoiceResponse, 0, len(choices))
	for _, c := range choices {
		out = append(out, responses.ChoiceResponse{Value: c.Value, Label: c.Label})
	}
	return out
}
