package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/logging"
)

// Recoverer turns a handler panic into a logged 500 JSON response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			rec := recover()
			if rec == nil || rec == http.ErrAbortHandler {
				if rec != nil {
					panic(rec)
				}
				return
			}
			logging.WithRequest(GetRequestID(r.Context()), r.Method, r.URL.Path).
				Errorw("panic while serving request", "panic", rec, "stack", string(debug.Stack()))
			common.RespondError(w, start, constants.ErrMsgInternal, nil, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
