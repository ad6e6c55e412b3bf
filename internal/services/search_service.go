package services

import (
	"context"
	"strings"
	"time"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/filters"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/models/dtos/responses"
)

type SearchParams struct {
	Query  string
	Filter filters.RepresentativeFilter
	Page   common.PageParams
}

// SearchService matches a free-text query across profile, district,
// governorate and party names.
type SearchService struct {
	reps *repositories.RepresentativeRepository
	now  func() time.Time
}

func NewSearchService(reps *repositories.RepresentativeRepository) *SearchService {
	return &SearchService{reps: reps, now: time.Now}
}

// Search returns an empty page, not an error, when Page is past the end.
func (s *SearchService) Search(ctx context.Context, params SearchParams) (*responses.SearchResponse, error) {
	term := strings.TrimSpace(params.Query)
	if term == "" {
		return nil, NewContentError(constants.ErrCodeMissingQuery, nil)
	}

	q := repositories.RepresentativeQuery{
		Filter:   params.Filter,
		Terms:    params.Filter.Search,
		Anywhere: term,
		Order:    filters.CanonicalRepresentativeOrder,
		Offset:   params.Page.Offset(),
		Limit:    params.Page.PageSize,
	}

	total, err := s.reps.CountVisible(ctx, q)
	if err != nil {
		return nil, storageError(err)
	}

	items := []responses.RepresentativeListItem{}
	if int64(q.Offset) < total {
		rows, err := s.reps.ListVisible(ctx, q)
		if err != nil {
			return nil, storageError(err)
		}
		items = responses.NewRepresentativeListItems(rows, s.now())
	}

	pageCount := common.PageCount(total, params.Page.PageSize)
	return &responses.SearchResponse{
		Representatives: items,
		TotalCount:      total,
		PageCount:       pageCount,
		CurrentPage:     params.Page.Page,
		HasNext:         params.Page.Page < pageCount,
		HasPrevious:     params.Page.Page > 1,
	}, nil
}
