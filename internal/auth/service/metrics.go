package service

import (
	"github.com/AlibekovAA/feedboard/backend/internal/observability/metrics"
)

func incrementTokensIssued() {
	metrics.TokensIssued.Inc()
}

func setTokenStoreSize(n int) {
	metrics.TokenStoreSize.Set(float64(n))
}

func incrementLoginFailure(reason string) {
	metrics.LoginFailuresTotal.WithLabelValues(reason).Inc()
}
