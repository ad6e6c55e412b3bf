package api

import (
	"net/http"
	"time"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/db/filters"
	"naebak/content-service/internal/models/dtos/requests"

	"github.com/go-chi/chi/v5"
)

// ListGovernoratesHandler handles GET /api/governorates/
func ListGovernoratesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		items, err := deps.Services.Reference.ListGovernorates(r.Context(), filters.ParseGovernorateFilter(q), q.Get("ordering"))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		respondSlicePage(w, r, initTime, items)
	}
}

func GetGovernorateHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		gov, err := deps.Services.Reference.GetGovernorate(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, gov)
	}
}

func CreateGovernorateHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, err := decodeCreate[requests.GovernorateRequest](w, r)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		gov, err := deps.Services.Reference.CreateGovernorate(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, gov, http.StatusCreated)
	}
}

func UpdateGovernorateHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		gov, err := deps.Services.Reference.UpdateGovernorate(r.Context(), chi.URLParam(r, "id"), bodyDecoder(w, r))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, gov)
	}
}

func DeleteGovernorateHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := deps.Services.Reference.DeactivateGovernorate(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondNoContent(w, initTime)
	}
}

// ListDistrictsHandler handles GET /api/districts/
func ListDistrictsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		items, err := deps.Services.Reference.ListDistricts(r.Context(), filters.ParseDistrictFilter(r.URL.Query()))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		respondSlicePage(w, r, initTime, items)
	}
}

func GetDistrictHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		district, err := deps.Services.Reference.GetDistrict(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, district)
	}
}

func CreateDistrictHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, err := decodeCreate[requests.DistrictRequest](w, r)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		district, err := deps.Services.Reference.CreateDistrict(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, district, http.StatusCreated)
	}
}

func UpdateDistrictHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		district, err := deps.Services.Reference.UpdateDistrict(r.Context(), chi.URLParam(r, "id"), bodyDecoder(w, r))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, district)
	}
}

func DeleteDistrictHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := deps.Services.Reference.DeactivateDistrict(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondNoContent(w, initTime)
	}
}

// ListPartiesHandler handles GET /api/parties/
func ListPartiesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		items, err := deps.Services.Reference.ListParties(r.Context(), filters.ParsePartyFilter(r.URL.Query()))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		respondSlicePage(w, r, initTime, items)
	}
}

func GetPartyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		party, err := deps.Services.Reference.GetParty(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, party)
	}
}

func CreatePartyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, err := decodeCreate[requests.PartyRequest](w, r)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		party, err := deps.Services.Reference.CreateParty(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, party, http.StatusCreated)
	}
}

func UpdatePartyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		party, err := deps.Services.Reference.UpdateParty(r.Context(), chi.URLParam(r, "id"), bodyDecoder(w, r))
		if err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, party)
	}
}

func DeletePartyHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := deps.Services.Reference.DeactivateParty(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleServiceError(w, r, initTime, err)
			return
		}
		common.RespondNoContent(w, initTime)
	}
}
