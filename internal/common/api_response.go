package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/models/dtos"
)

// RespondSuccess writes body as JSON. The payload is not wrapped: list
// endpoints already carry their own envelope.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, body any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}
	writeJSON(w, initTime, code, body)
}

// RespondError writes {"error": ..., "fields": ...}.
func RespondError(w http.ResponseWriter, initTime time.Time, message string, fields map[string]string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}
	writeJSON(w, initTime, code, dtos.ErrorResponse{Error: message, Fields: fields})
}

// RespondNoContent is used by soft deletes.
func RespondNoContent(w http.ResponseWriter, initTime time.Time) {
	w.Header().Set("X-Response-Time", GetResponseTime(initTime))
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, initTime time.Time, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Response-Time", GetResponseTime(initTime))
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}

func GetResponseTime(init time.Time) string {
	return fmt.Sprintf("%dms", time.Since(init).Milliseconds())
}
