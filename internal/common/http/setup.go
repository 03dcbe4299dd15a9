package http

import (
	"net/http"

	"github.com/AlibekovAA/feedboard/backend/internal/common/constants"
	"github.com/AlibekovAA/feedboard/backend/internal/common/httpmetrics"
	"github.com/AlibekovAA/feedboard/backend/internal/common/logger"
)

func BuildBaseHandler(appName string, corsOrigin string, log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New(appName)
	recovery := RecoveryMiddleware(log)
	traceID := TraceIDMiddleware
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)
	securityHeaders := SecurityHeadersMiddleware
	cors := CORSMiddleware(corsOrigin)

	return securityHeaders(recovery(traceID(cors(maxRequestSize(metrics.Wrap(handler))))))
}
