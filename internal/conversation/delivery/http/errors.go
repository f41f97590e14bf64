package http

import (
	"net/http"

	pkgErrors "air-cargo-assistant/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// The conversation engine degrades internally on extractor and booking
// failures, so anything surfacing here is an opaque 500.
func (h *handler) mapError(err error) error {
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
