package utils

// ErrorResponse carries a human-readable message plus the raw underlying
// error for 500-level responses.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
