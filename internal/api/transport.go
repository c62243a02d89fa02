package api

import (
	"net/http"
	"taskClient/internal/logger"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type loggingTransport struct {
	next http.RoundTripper
}

func newLoggingTransport(next http.RoundTripper) *loggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next}
}

func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()

	requestId := r.Header.Get("X-Request-ID")
	if requestId == "" {
		requestId = uuid.New().String()
		r.Header.Set("X-Request-ID", requestId)
	}

	logger.HttpCallInfo(r.Method, r.URL.Path, r.URL.RawQuery,
		zap.String("request_id", requestId))

	resp, err := t.next.RoundTrip(r)
	if err != nil {
		logger.Warn("HTTP: Транспортная ошибка",
			zap.String("request_id", requestId),
			zap.Error(err),
			zap.Duration("ms", time.Since(start)))
		return nil, err
	}

	logLevel := zap.InfoLevel
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		logLevel = zap.WarnLevel
	} else if resp.StatusCode >= 500 {
		logLevel = zap.ErrorLevel
	}
	logger.Log(
		logLevel,
		"HTTP: Ответ сервера",
		zap.String("request_id", requestId),
		zap.Int("status", resp.StatusCode),
		zap.Duration("ms", time.Since(start)),
	)

	return resp, nil
}
