package dto

// ErrorResponse is the envelope for every failure: a single error string
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// MessageResponse acknowledges an update or delete
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateResponse acknowledges a create with the new row's id
type CreateResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// DerivedCreateResponse acknowledges an invoice derived from time entries,
// echoing the computed amount
type DerivedCreateResponse struct {
	ID      int64   `json:"id"`
	Amount  float64 `json:"amount"`
	Message string  `json:"message"`
}
