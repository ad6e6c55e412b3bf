package dtos

// ErrorResponse is the body of every 4xx/5xx reply. Fields is only set for
// validation failures and maps json field names to messages.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Page is the paginated list envelope. Next and Previous are absolute URLs.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
