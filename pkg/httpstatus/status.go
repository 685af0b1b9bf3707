// Package httpstatus maps HTTP status codes onto the named outcomes the
// client reacts to. Every predicate is an exact match; there is no range
// classification.
package httpstatus

import "net/http"

type Category string

const (
	CategoryOk                  Category = "ok"
	CategoryCreated             Category = "created"
	CategoryBadRequest          Category = "bad_request"
	CategoryUnauthorized        Category = "unauthorized"
	CategoryForbidden           Category = "forbidden"
	CategoryNotFound            Category = "not_found"
	CategoryConflict            Category = "conflict"
	CategoryInternalServerError Category = "internal_server_error"
	CategoryServiceUnavailable  Category = "service_unavailable"
	CategoryGatewayTimeout      Category = "gateway_timeout"
	CategoryUnknown             Category = "unknown"
)

var categories = map[int]Category{
	http.StatusOK:                  CategoryOk,
	http.StatusCreated:             CategoryCreated,
	http.StatusBadRequest:          CategoryBadRequest,
	http.StatusUnauthorized:        CategoryUnauthorized,
	http.StatusForbidden:           CategoryForbidden,
	http.StatusNotFound:            CategoryNotFound,
	http.StatusConflict:            CategoryConflict,
	http.StatusInternalServerError: CategoryInternalServerError,
	http.StatusServiceUnavailable:  CategoryServiceUnavailable,
	http.StatusGatewayTimeout:      CategoryGatewayTimeout,
}

func IsOk(status int) bool                  { return status == http.StatusOK }
func IsCreated(status int) bool             { return status == http.StatusCreated }
func IsBadRequest(status int) bool          { return status == http.StatusBadRequest }
func IsUnauthorized(status int) bool        { return status == http.StatusUnauthorized }
func IsForbidden(status int) bool           { return status == http.StatusForbidden }
func IsNotFound(status int) bool            { return status == http.StatusNotFound }
func IsConflict(status int) bool            { return status == http.StatusConflict }
func IsInternalServerError(status int) bool { return status == http.StatusInternalServerError }
func IsServiceUnavailable(status int) bool  { return status == http.StatusServiceUnavailable }
func IsGatewayTimeout(status int) bool      { return status == http.StatusGatewayTimeout }

// Classify returns the named category for status, or CategoryUnknown.
func Classify(status int) Category {
	if c, ok := categories[status]; ok {
		return c
	}
	return CategoryUnknown
}

// IsAuthRejected reports a response that means the stored session is no
// longer accepted by the backend.
func IsAuthRejected(status int) bool {
	return IsUnauthorized(status) || IsForbidden(status)
}
