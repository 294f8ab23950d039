package dto

import (
	"net/http"
	"strings"
)

// HTTPStatusForCode maps a domain error code to an HTTP status.
// Validation codes map to 400, NOT_FOUND to 404, anything unrecognized to
// 500; storage failures never carry a domain code and fall through there.
func HTTPStatusForCode(code string) int {
	switch {
	case code == "NOT_FOUND":
		return http.StatusNotFound
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
