// Package response writes the JSON envelopes shared by all API handlers.
package response

import (
	"encoding/json"
	"net/http"
)

// Machine-readable error kinds carried in ErrorResponse.Error.
const (
	KindInvalidInput = "InvalidInput"
	KindNotFound     = "NotFound"
	KindRateLimited  = "RateLimited"
	KindInternal     = "Internal"
	KindUnavailable  = "Unavailable"
)

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// SuccessResponse represents a successful API response with data.
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

// ListResponse represents a bounded list of records.
type ListResponse struct {
	Data  interface{} `json:"data"`
	Count int         `json:"count"`
	Limit int         `json:"limit"`
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// Success writes a successful JSON response.
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, SuccessResponse{Data: data})
}

// List writes a list response with its size and the limit applied.
func List(w http.ResponseWriter, data interface{}, count, limit int) {
	JSON(w, http.StatusOK, ListResponse{Data: data, Count: count, Limit: limit})
}

// Error writes an error response of the given kind and status code.
func Error(w http.ResponseWriter, status int, kind string, err error) {
	resp := ErrorResponse{Error: kind, Code: status}
	if err != nil {
		resp.Message = err.Error()
	}
	JSON(w, status, resp)
}

// BadRequest writes a 400 Bad Request response.
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, KindInvalidInput, err)
}

// NotFound writes a 404 Not Found response.
func NotFound(w http.ResponseWriter, err error) {
	Error(w, http.StatusNotFound, KindNotFound, err)
}

// TooManyRequests writes a 429 Too Many Requests response.
func TooManyRequests(w http.ResponseWriter, err error) {
	Error(w, http.StatusTooManyRequests, KindRateLimited, err)
}

// InternalError writes a 500 Internal Server Error response.
func InternalError(w http.ResponseWriter, err error) {
	Error(w, http.StatusInternalServerError, KindInternal, err)
}

// ServiceUnavailable writes a 503 Service Unavailable response.
func ServiceUnavailable(w http.ResponseWriter, err error) {
	Error(w, http.StatusServiceUnavailable, KindUnavailable, err)
}
