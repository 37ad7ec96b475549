package janitor

import (
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

// ErrMisconfiguredKind marks a Kind missing its name, lister, or deleter.
// This is a programming-contract violation and is never swallowed.
var ErrMisconfiguredKind = errors.New("misconfigured kind")

// unexpectedLocationMarker is the message fragment the APIs return when a
// kind is listed in a location it does not exist in.
const unexpectedLocationMarker = "Unexpected location"

// IsServerError checks for a structured API failure with HTTP status >= 500.
func IsServerError(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code >= 500
}

// IsUnexpectedLocation checks for a structured API failure telling us the
// location is not valid for the resource kind.
func IsUnexpectedLocation(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && strings.Contains(apiErr.Message, unexpectedLocationMarker)
}
