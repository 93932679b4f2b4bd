package dto

// ===== Error Response =====
type ErrorResponse struct {
	Message string `json:"message" example:"unauthorized"`
}

type ValidationErrorResponse struct {
	Message string            `json:"message" example:"invalid body"`
	Fields  map[string]string `json:"fields,omitempty"`
}
