// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package api

import (
	"context"
	"errors"
	"net/http"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/filmgourmet/internal/graph/pajek"
	"github.com/tomtom215/filmgourmet/internal/logging"
	"github.com/tomtom215/filmgourmet/internal/recommend"
	"github.com/tomtom215/filmgourmet/internal/recommend/algorithms"
)

// errorStatus maps an engine or reload error to an HTTP status and error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, pajek.ErrFormat):
		return http.StatusUnprocessableEntity, ErrCodeInvalidGraph
	case errors.Is(err, recommend.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, recommend.ErrNotReady):
		return http.StatusServiceUnavailable, ErrCodeGraphNotLoaded
	case errors.Is(err, recommend.ErrEmptyTeleport),
		errors.Is(err, recommend.ErrInsufficientItems),
		errors.Is(err, recommend.ErrInvalidSampleSize),
		errors.Is(err, recommend.ErrInvalidK),
		errors.Is(err, recommend.ErrTooManyLabels),
		errors.Is(err, algorithms.ErrInvalidOptions):
		return http.StatusBadRequest, ErrCodeValidation
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrCodeTimeout
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// respondEngineError writes err using the status mapping above. Internal
// errors are logged and their text is not returned to the client.
func respondEngineError(rw *ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		rw.InternalError("internal server error")
		return
	}

	var details interface{}
	var fe *pajek.FormatError
	if errors.As(err, &fe) {
		details = map[string]interface{}{"line": fe.Line, "reason": fe.Reason}
	}
	var nf *recommend.NotFoundError
	if errors.As(err, &nf) {
		details = map[string]interface{}{"label": nf.Label}
	}
	rw.ErrorWithDetails(status, code, err.Error(), details)
}
