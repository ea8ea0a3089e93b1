package http

import (
	"net/url"

	"go.uber.org/zap"

	"weather-app/pkg/log"
)

// HTTPLogger receives request and response events from the Client.
type HTTPLogger interface {
	// LogRequest is called right before the request is sent
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called after a 2xx response
	LogResponseSuccess(method, url string, httpStatus int, latency int64)

	// LogResponseError is called after a non-2xx response or a transport failure (httpStatus 0)
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string)               {}
func (noopLogger) LogResponseSuccess(string, string, int, int64)              {}
func (noopLogger) LogResponseError(string, string, int, string, int64, error) {}

// ZapLogger writes client events through pkg/log, masking the listed query parameters.
type ZapLogger struct {
	maskedParams []string
}

// NewZapLogger creates a ZapLogger that hides the values of maskedParams (e.g. api keys).
func NewZapLogger(maskedParams ...string) *ZapLogger {
	return &ZapLogger{maskedParams: maskedParams}
}

func (l *ZapLogger) LogRequest(method, rawURL string, _ map[string]string) {
	log.Debug("http request",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)))
}

func (l *ZapLogger) LogResponseSuccess(method, rawURL string, httpStatus int, latency int64) {
	log.Info("http response",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapLogger) LogResponseError(method, rawURL string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("http response error",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.String("body", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

func (l *ZapLogger) mask(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := u.Query()
	for _, param := range l.maskedParams {
		if query.Has(param) {
			query.Set(param, "****")
		}
	}
	u.RawQuery = query.Encode()
	return u.String()
}
