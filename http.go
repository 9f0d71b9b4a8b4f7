package main

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

type loggerTransport struct {
	transport http.RoundTripper
	logger    *log.Logger
}

func (l *loggerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := req.Header.Get("X-Request-Id")
	l.logger.Debug("HTTP Request",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"request_id", requestID,
	)

	startTime := time.Now()
	resp, err := l.transport.RoundTrip(req)
	duration := time.Since(startTime)
	if err != nil {
		l.logger.Error("HTTP Request failed",
			"error", err,
			"url", req.URL.Redacted(),
			"request_id", requestID,
			"duration", duration,
		)
		return nil, err
	}

	l.logger.Debug("HTTP Response",
		"status", resp.Status,
		"duration", duration,
		"url", req.URL.Redacted(),
		"method", req.Method,
		"request_id", requestID,
	)

	return resp, nil
}

// newLoggingTransport wraps transport, or http.DefaultTransport when nil.
func newLoggingTransport(transport http.RoundTripper, logger *log.Logger) http.RoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &loggerTransport{transport: transport, logger: logger}
}
