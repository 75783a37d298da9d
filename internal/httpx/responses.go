package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the structured error envelope every failure is
// translated into at the request boundary.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    interface{}       `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes a success payload as-is with the given status code.
// Success bodies follow the documented API shapes rather than an
// envelope.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// JSONError writes the structured error envelope, tagging it with the
// request id when one is present.
func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, code string, message string, details []ErrorDetail) {
	var meta interface{}
	if requestID := RequestIDFrom(r); requestID != "" {
		meta = map[string]interface{}{"request_id": requestID}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: meta,
	})
}
