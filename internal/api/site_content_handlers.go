package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/models/dtos"
	"naebak/content-service/internal/models/dtos/requests"
	"naebak/content-service/internal/models/dtos/responses"

	"github.com/go-chi/chi/v5"
)

// ListPagesHandler handles GET /api/pages/
func ListPagesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		items, err := deps.Services.SiteContent.ListPages(r.Context())
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		respondSlicePage(w, r, initTime, items)
	}
}

func GetPageHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		page, err := deps.Services.SiteContent.GetPage(r.Context(), chi.URLParam(r, "page_type"))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, page)
	}
}

// UpsertPageHandler handles PUT/PATCH /api/admin/pages/{page_type}/
func UpsertPageHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		page, created, err := deps.Services.SiteContent.UpsertPage(r.Context(), chi.URLParam(r, "page_type"), bodyDecoder(w, r))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, page, createdOrOK(created))
	}
}

// ListColorsHandler handles GET /api/colors/
func ListColorsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		items, err := deps.Services.SiteContent.ListColors(r.Context())
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		respondSlicePage(w, r, initTime, items)
	}
}

// ColorSchemeHandler handles GET /api/colors/scheme/
func ColorSchemeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		scheme, err := deps.Services.SiteContent.ColorScheme(r.Context())
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, scheme)
	}
}

func GetColorHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		color, err := deps.Services.SiteContent.GetColor(r.Context(), chi.URLParam(r, "color_type"))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, color)
	}
}

func UpsertColorHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		color, created, err := deps.Services.SiteContent.UpsertColor(r.Context(), chi.URLParam(r, "color_type"), bodyDecoder(w, r))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, color, createdOrOK(created))
	}
}

// GetSettingsHandler creates the settings row with defaults on first read.
func GetSettingsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		settings, err := deps.Services.SiteContent.GetSettings(r.Context())
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, settings)
	}
}

func UpdateSettingsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		settings, err := deps.Services.SiteContent.UpdateSettings(r.Context(), bodyDecoder(w, r))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, settings)
	}
}

// CreateSettingsHandler answers 409 once the singleton exists.
func CreateSettingsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		settings, err := deps.Services.SiteContent.CreateSettings(r.Context(), bodyDecoder(w, r))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, settings, http.StatusCreated)
	}
}

// ListFAQHandler handles GET /api/faq/?category=
func ListFAQHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		items, err := deps.Services.SiteContent.ListFAQs(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		respondSlicePage(w, r, initTime, items)
	}
}

func GetFAQHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		faq, err := deps.Services.SiteContent.GetFAQ(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, faq)
	}
}

func CreateFAQHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, err := decodeCreate[requests.FAQRequest](w, r)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		faq, err := deps.Services.SiteContent.CreateFAQ(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, faq, http.StatusCreated)
	}
}

func UpdateFAQHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		faq, err := deps.Services.SiteContent.UpdateFAQ(r.Context(), chi.URLParam(r, "id"), bodyDecoder(w, r))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, faq)
	}
}

func DeleteFAQHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := deps.Services.SiteContent.DeactivateFAQ(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondNoContent(w, initTime)
	}
}

// ListBannersHandler handles GET /api/banners/?banner_type=&representative=&is_default=
func ListBannersHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		filter, fields := parseBannerFilter(r)
		if fields != nil {
			handleServiceError(w, r, initTime, fieldsError(fields))
			return
		}
		items, err := deps.Services.Banners.List(r.Context(), filter)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		respondSlicePage(w, r, initTime, items)
	}
}

// DefaultBannerHandler handles GET /api/banners/default/
func DefaultBannerHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		banner, err := deps.Services.Banners.Default(r.Context())
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, banner)
	}
}

func GetBannerHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		banner, err := deps.Services.Banners.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, banner)
	}
}

func CreateBannerHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, err := decodeCreate[requests.BannerRequest](w, r)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		banner, err := deps.Services.Banners.Create(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, banner, http.StatusCreated)
	}
}

func UpdateBannerHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		banner, err := deps.Services.Banners.Update(r.Context(), chi.URLParam(r, "id"), bodyDecoder(w, r))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, banner)
	}
}

func DeleteBannerHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := deps.Services.Banners.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondNoContent(w, initTime)
	}
}

func parseBannerFilter(r *http.Request) (repositories.BannerFilter, map[string]string) {
	q := r.URL.Query()
	f := repositories.BannerFilter{RepresentativeID: strings.TrimSpace(q.Get("representative"))}
	fields := map[string]string{}

	if v := q.Get("banner_type"); v != "" {
		if bt := constants.BannerType(v); bt.Valid() {
			f.BannerType = bt
		} else {
			fields["banner_type"] = "Select a valid choice. " + v + " is not one of the available choices."
		}
	}
	if v := q.Get("is_default"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fields["is_default"] = "Enter a valid boolean."
		} else {
			f.IsDefault = &b
		}
	}
	if len(fields) > 0 {
		return f, fields
	}
	return f, nil
}

// ListEventsHandler handles GET /api/events/?representative=&event_type=
func ListEventsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		filter := repositories.EventFilter{RepresentativeID: strings.TrimSpace(q.Get("representative"))}
		if v := q.Get("event_type"); v != "" {
			et := constants.EventType(v)
			if !et.Valid() {
				handleServiceError(w, r, initTime, fieldsError(map[string]string{
					"event_type": "Select a valid choice. " + v + " is not one of the available choices.",
				}))
				return
			}
			filter.EventType = et
		}

		params, err := listPage(r)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		events, err := deps.Services.Events.List(r.Context(), filter, params)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}

		page := dtos.Page[responses.EventResponse]{Count: events.Total, Results: events.Results}
		page.Next, page.Previous = common.PageLinks(r, params, events.Total)
		common.RespondSuccess(w, initTime, page)
	}
}

func GetEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		event, err := deps.Services.Events.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, event)
	}
}

func CreateEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, err := decodeCreate[requests.EventRequest](w, r)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		event, err := deps.Services.Events.Create(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, event, http.StatusCreated)
	}
}

func UpdateEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		event, err := deps.Services.Events.Update(r.Context(), chi.URLParam(r, "id"), bodyDecoder(w, r))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, event)
	}
}

func DeleteEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := deps.Services.Events.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondNoContent(w, initTime)
	}
}

func respondSlicePage[T any](w http.ResponseWriter, r *http.Request, initTime time.Time, items []T) {
	page, err := paginateSlice(r, items)
	if err != nil {
		handleServiceError(w, r, initTime, err)
		return
	}
	common.RespondSuccess(w, initTime, page)
}

func createdOrOK(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}
