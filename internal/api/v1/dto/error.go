package dto

// ErrorResponseDTO is the body of every JSON error response
type ErrorResponseDTO struct {
	Error string `json:"error"`
}
