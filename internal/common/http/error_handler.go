package http

import (
	"net/http"
	"strconv"

	commonerrors "github.com/AlibekovAA/feedboard/backend/internal/common/errors"
	"github.com/AlibekovAA/feedboard/backend/internal/common/httpmetrics"
	"github.com/AlibekovAA/feedboard/backend/internal/common/logger"
	"github.com/AlibekovAA/feedboard/backend/internal/observability/metrics"
)

// HandleError maps service errors to HTTP responses. Domain errors carry
// their own status and client-safe message; anything else becomes a 500
// with details kept server-side.
func HandleError(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	if err == nil {
		return
	}

	ctx := r.Context()

	if domainErr, ok := commonerrors.AsDomainError(err); ok {
		status := domainErr.HTTPStatus()

		if log.ShouldLog(logger.DEBUG) {
			log.WithFields(ctx, logger.Fields{
				"error_code": domainErr.Code(),
				"category":   string(domainErr.Category()),
				"status":     status,
			}).Debugf("domain error: %s", domainErr.Error())
		}

		metrics.HTTPErrorsTotal.WithLabelValues(
			strconv.Itoa(status),
			httpmetrics.NormalizePath(r.URL.Path),
			r.Method,
		).Inc()

		WriteError(w, status, domainErr.Message())
		return
	}

	log.WithFields(ctx, logger.Fields{
		"error": err.Error(),
	}).Errorf("unhandled error: %v", err)

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(http.StatusInternalServerError),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteError(w, http.StatusInternalServerError, "Server internal error")
}
