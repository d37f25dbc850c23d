// Package apitest provides a fake Tenderly API server for package tests.
// It records every request it receives so tests can assert on the exact
// method, path, headers and body an operation produced.
package apitest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Request is one recorded inbound request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Server is an httptest-backed fake API that replies to every request with
// a fixed status and body.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	response string
	requests []Request
}

// NewServer starts a fake server answering with the given status and body.
// It is closed automatically when the test finishes.
func NewServer(t *testing.T, status int, response string) *Server {
	t.Helper()

	s := &Server{status: status, response: response}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)

	return s
}

// NewHandlerServer starts a fake server with a custom handler, still
// recording every request.
func NewHandlerServer(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()

	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		handler(w, r)
	}))
	t.Cleanup(s.Close)

	return s
}

// SetResponse changes the canned status and body for subsequent requests.
func (s *Server) SetResponse(status int, response string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.response = response
}

// LastRequest returns the most recently recorded request.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}

	return s.requests[len(s.requests)-1], true
}

// Requests returns a copy of all recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)

	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.record(r)

	s.mu.Lock()
	status, response := s.status, s.response
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, response)
}

func (s *Server) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	// Leave the body readable for a custom handler.
	r.Body = io.NopCloser(bytes.NewReader(body))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		// EscapedPath keeps percent-encoded separators distinguishable
		// from literal ones.
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
}
