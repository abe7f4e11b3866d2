package errors

import (
	"errors"
	"net/http"
)

// Sentinel domain errors. The messages are part of the API contract and are
// surfaced to clients verbatim, hence the capitalization.
var (
	// ErrMissingCredentials is returned when email or password is absent.
	ErrMissingCredentials = errors.New("Email and password are required")
	// ErrInvalidEmail is returned when the email fails the format check.
	ErrInvalidEmail = errors.New("Invalid email format")
	// ErrShortPassword is returned when the password is under six characters.
	ErrShortPassword = errors.New("Password must be at least 6 characters")
	// ErrEmailExists is returned when registering an already taken email.
	ErrEmailExists = errors.New("Email already exists")
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so a caller cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrMissingReviewFields is returned when a new review lacks a required field.
	ErrMissingReviewFields = errors.New("Title, author, and review_date are required")
	// ErrInvalidReviewID is returned when the review_id path parameter is not an integer.
	ErrInvalidReviewID = errors.New("Invalid review_id: must be an integer")
	// ErrReviewNotFound covers both an absent review and one owned by someone
	// else; the two cases are deliberately indistinguishable.
	ErrReviewNotFound = errors.New("Review not found or unauthorized")
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is
// a store or hashing failure and surfaces as a 500 with the underlying
// message attached.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrMissingCredentials, ErrInvalidEmail, ErrShortPassword,
		ErrEmailExists, ErrMissingReviewFields, ErrInvalidReviewID:
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case ErrReviewNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Server error: "+err.Error())
	}
}
