package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/openfiscal/notafiscal-api/internal/upstream"
	"github.com/openfiscal/notafiscal-api/pkg/apperror"
)

// mapProxyError translates an upstream client failure into the response the
// original caller should see. Known statuses keep their meaning; anything
// else is surfaced with the upstream status. Transport faults come back
// unchanged and render as a 500.
func mapProxyError(err error) error {
	var statusErr *upstream.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	switch statusErr.StatusCode {
	case http.StatusUnauthorized:
		return apperror.NewAppError(http.StatusUnauthorized, "Invalid or expired token")
	case http.StatusNotFound:
		return apperror.NewAppError(http.StatusNotFound, "Resource not found upstream")
	case http.StatusInternalServerError:
		return apperror.NewAppError(http.StatusInternalServerError, "Upstream service error")
	default:
		return apperror.NewAppError(statusErr.StatusCode, fmt.Sprintf("Unexpected upstream status: %d", statusErr.StatusCode))
	}
}
