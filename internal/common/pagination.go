package common

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"naebak/content-service/internal/constants"
)

var ErrInvalidPage = errors.New("invalid page")

type PageParams struct {
	Page     int
	PageSize int
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParseListPage reads page/page_size for list endpoints. A malformed page is
// an error; a malformed page_size silently falls back to the default.
func ParseListPage(q url.Values) (PageParams, error) {
	params := PageParams{Page: constants.DefaultPage, PageSize: constants.DefaultPageSize}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, ErrInvalidPage
		}
		params.Page = page
	}
	if raw := q.Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			params.PageSize = size
		}
	}
	if params.PageSize > constants.MaxPageSize {
		params.PageSize = constants.MaxPageSize
	}
	return params, nil
}

// ParseStrictPage is the search variant: any malformed or non-positive
// number is rejected.
func ParseStrictPage(q url.Values) (PageParams, map[string]string) {
	params := PageParams{Page: constants.DefaultPage, PageSize: constants.DefaultPageSize}
	fields := map[string]string{}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fields["page"] = "A valid positive integer is required."
		} else {
			params.Page = page
		}
	}
	if raw := q.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			fields["page_size"] = "A valid positive integer is required."
		} else {
			params.PageSize = size
		}
	}
	if len(fields) > 0 {
		return params, fields
	}
	if params.PageSize > constants.MaxPageSize {
		params.PageSize = constants.MaxPageSize
	}
	return params, nil
}

// PageCount is ceil(total/size).
func PageCount(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// CheckPageInRange mirrors the paginator rule: page 1 always exists, later
// pages must hold at least one row.
func CheckPageInRange(p PageParams, total int64) error {
	if p.Page == 1 {
		return nil
	}
	if p.Page > PageCount(total, p.PageSize) {
		return ErrInvalidPage
	}
	return nil
}

// PageLinks builds absolute next/previous URLs preserving the other query parameters.
func PageLinks(r *http.Request, p PageParams, total int64) (next, previous *string) {
	if p.Page < PageCount(total, p.PageSize) {
		u := pageURL(r, p.Page+1)
		next = &u
	}
	if p.Page > 1 {
		u := pageURL(r, p.Page-1)
		previous = &u
	}
	return next, previous
}

func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	q := r.URL.Query()
	if page == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}

	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: q.Encode()}
	return u.String()
}
