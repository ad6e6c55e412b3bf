package api

import (
	"net/http"
	"strings"
	"time"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/db/filters"
	"naebak/content-service/internal/models/dtos/requests"
	"naebak/content-service/internal/services"

	"github.com/go-chi/chi/v5"
)

// ListRepresentativesHandler handles GET /api/representatives/
func ListRepresentativesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		filter, fields := filters.ParseRepresentativeFilter(q)
		if fields != nil {
			handleServiceError(w, r, initTime, fieldsError(fields))
			return
		}
		page, err := listPage(r)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}

		resp, err := deps.Services.Representatives.List(r.Context(), services.RepresentativeListParams{
			Filter:   filter,
			Ordering: q.Get("ordering"),
			Page:     page,
		})
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}

		resp.Next, resp.Previous = common.PageLinks(r, page, resp.Count)
		common.RespondSuccess(w, initTime, resp)
	}
}

// GetRepresentativeHandler handles GET /api/representatives/{slug}/ and /{slug}/
func GetRepresentativeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		detail, err := deps.Services.Representatives.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, detail)
	}
}

// CreateRepresentativeHandler handles POST /api/representatives/
func CreateRepresentativeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, err := decodeCreate[requests.RepresentativeRequest](w, r)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}

		detail, err := deps.Services.Representatives.Create(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, detail, http.StatusCreated)
	}
}

// UpdateRepresentativeHandler serves both PUT and PATCH; absent fields keep
// their stored values.
func UpdateRepresentativeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		detail, err := deps.Services.Representatives.Update(r.Context(), chi.URLParam(r, "slug"), bodyDecoder(w, r))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, detail)
	}
}

// DeleteRepresentativeHandler soft-deletes by clearing is_active.
func DeleteRepresentativeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := deps.Services.Representatives.Deactivate(r.Context(), chi.URLParam(r, "slug")); err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondNoContent(w, initTime)
	}
}

// SearchHandler handles GET /api/search/
func SearchHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		page, fields := common.ParseStrictPage(q)
		filter, filterFields := filters.ParseRepresentativeFilter(q)
		for k, v := range filterFields {
			if fields == nil {
				fields = map[string]string{}
			}
			fields[k] = v
		}
		if fields != nil {
			handleServiceError(w, r, initTime, fieldsError(fields))
			return
		}

		resp, err := deps.Services.Search.Search(r.Context(), services.SearchParams{
			Query:  strings.TrimSpace(q.Get("q")),
			Filter: filter,
			Page:   page,
		})
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, resp)
	}
}

// StatisticsHandler handles GET /api/statistics/
func StatisticsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		stats, err := deps.Services.Statistics.Get(r.Context())
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, stats)
	}
}

// FilterOptionsHandler handles GET /api/filter-options/
func FilterOptionsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		opts, err := deps.Services.FilterOptions.Get(r.Context())
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, opts)
	}
}
