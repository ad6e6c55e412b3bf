package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/models/dtos"
	"naebak/content-service/internal/services"
)

// handleServiceError maps service errors to appropriate HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, initTime time.Time, err error) {
	var contentErr *services.ContentError
	if errors.As(err, &contentErr) {
		statusCode := mapErrorCodeToHTTPStatus(contentErr.Code)
		if statusCode == http.StatusInternalServerError {
			logging.Error("request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"code", contentErr.Code,
				"error", err.Error(),
			)
			common.RespondError(w, initTime, constants.ErrMsgInternal, nil, statusCode)
			return
		}
		common.RespondError(w, initTime, contentErr.Message, contentErr.Fields, statusCode)
		return
	}

	// Default to internal server error for unknown errors
	logging.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	common.RespondError(w, initTime, constants.ErrMsgInternal, nil, http.StatusInternalServerError)
}

func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case constants.ErrCodeValidation,
		constants.ErrCodeInvalidJSON,
		constants.ErrCodeDuplicate,
		constants.ErrCodeMissingQuery:
		return http.StatusBadRequest
	case constants.ErrCodeNotFound,
		constants.ErrCodeInvalidPage,
		constants.ErrCodeNoDefaultBanner:
		return http.StatusNotFound
	case constants.ErrCodeSingleton:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// bodyDecoder decodes the JSON body over dst. Unknown keys are ignored; an
// empty body leaves dst untouched so PATCH {} is a no-op.
func bodyDecoder(w http.ResponseWriter, r *http.Request) services.Decoder {
	return func(dst any) error {
		body := http.MaxBytesReader(w, r.Body, constants.MaxRequestBodyBytes)
		if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return services.NewContentError(constants.ErrCodeInvalidJSON, fmt.Errorf("decode body: %w", err))
		}
		return nil
	}
}

// decodeCreate is bodyDecoder for creates: the target starts empty.
func decodeCreate[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var req T
	err := bodyDecoder(w, r)(&req)
	return req, err
}

// paginateSlice serves page/page_size over an already loaded list.
func paginateSlice[T any](r *http.Request, items []T) (*dtos.Page[T], error) {
	params, err := listPage(r)
	if err != nil {
		return nil, err
	}
	total := int64(len(items))
	if err := common.CheckPageInRange(params, total); err != nil {
		return nil, services.NewContentError(constants.ErrCodeInvalidPage, err)
	}

	start := params.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + params.PageSize
	if end > len(items) {
		end = len(items)
	}

	results := items[start:end]
	if results == nil {
		results = []T{}
	}
	page := &dtos.Page[T]{Count: total, Results: results}
	page.Next, page.Previous = common.PageLinks(r, params, total)
	return page, nil
}

func listPage(r *http.Request) (common.PageParams, error) {
	params, err := common.ParseListPage(r.URL.Query())
	if err != nil {
		return params, services.NewContentError(constants.ErrCodeInvalidPage, err)
	}
	return params, nil
}

func fieldsError(fields map[string]string) error {
	e := services.NewContentError(constants.ErrCodeValidation, nil)
	e.Fields = fields
	return e
}
