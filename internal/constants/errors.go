package constants

// Content error codes. Handlers map these to HTTP status codes.
const (
	ErrCodeValidation      = "VALIDATION_FAILED"
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeDuplicate       = "DUPLICATE_VALUE"
	ErrCodeMissingQuery    = "MISSING_QUERY"
	ErrCodeInvalidPage     = "INVALID_PAGE"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeNoDefaultBanner = "NO_DEFAULT_BANNER"
	ErrCodeSingleton       = "SINGLETON_EXISTS"
	ErrCodeStorage         = "STORAGE_ERROR"
)

var ContentErrorMessages = map[string]string{
	ErrCodeValidation:      "The submitted data is invalid",
	ErrCodeInvalidJSON:     "The request body is not valid JSON",
	ErrCodeDuplicate:       "A record with the same unique value already exists",
	ErrCodeMissingQuery:    "يجب إدخال كلمة البحث",
	ErrCodeInvalidPage:     "Invalid page.",
	ErrCodeNotFound:        "Not found.",
	ErrCodeNoDefaultBanner: "لا يوجد بنر افتراضي",
	ErrCodeSingleton:       "Site settings already exist; update the existing record instead",
	ErrCodeStorage:         "An unexpected storage error occurred",
}

const (
	ErrMsgRateLimited      = "Request was throttled. Try again shortly."
	ErrMsgInternal         = "An unexpected error occurred"
	ErrMsgMethodNotAllowed = "Method not allowed."
)

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := ContentErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
