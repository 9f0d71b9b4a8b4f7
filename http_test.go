package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/log"
)

func TestLoggingTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	client := &http.Client{Transport: newLoggingTransport(nil, logger)}
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/get_basic_info", nil)
	be.NilErr(t, err)
	req.Header.Set("X-Request-Id", "req-123")

	resp, err := client.Do(req)
	be.NilErr(t, err)
	resp.Body.Close()

	be.Equal(t, http.StatusTeapot, resp.StatusCode)
	be.In(t, "HTTP Request", buf.String())
	be.In(t, "req-123", buf.String())
	be.In(t, "418", buf.String())
}

func TestLoggingTransportFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	client := &http.Client{Transport: newLoggingTransport(nil, logger)}
	_, err := client.Get("http://127.0.0.1:1/unreachable")
	be.Nonzero(t, err)
	be.In(t, "HTTP Request failed", buf.String())
}
