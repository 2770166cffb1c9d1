// Package error defines the API error taxonomy and its wire encoding.
package error

import "net/http"

type ErrorCode string

const (
	UnknownError        ErrorCode = "unknown_error"
	InternalServerError ErrorCode = "internal_server_error"
	BadRequest          ErrorCode = "bad_request"
	EmailConflict       ErrorCode = "email_conflict"
	UserNotFound        ErrorCode = "user_not_found"
	RecipeNotFound      ErrorCode = "recipe_not_found"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:        0, // No error code - unknown
	InternalServerError: http.StatusInternalServerError,
	BadRequest:          http.StatusBadRequest,
	EmailConflict:       http.StatusConflict,
	UserNotFound:        http.StatusNotFound,
	RecipeNotFound:      http.StatusNotFound,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
