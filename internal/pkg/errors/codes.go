package errors

import "net/http"

var (
	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Search session not found or expired",
		http.StatusNotFound,
	)

	ErrSessionClosed = New(
		"SESSION_CLOSED",
		"Search session is closed",
		http.StatusGone,
	)

	ErrPlaceNotInHistory = New(
		"PLACE_NOT_IN_HISTORY",
		"Place not found in search history",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrStorageError = New(
		"STORAGE_ERROR",
		"Persistence operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
