package pkgrouter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/kbop543/BrokenKayak/internal/pkg/pkgerror"
	"github.com/kbop543/BrokenKayak/internal/pkg/pkguid"
)

// Handler is the endpoint signature: return a response body to encode
// as JSON, or an error to map to a status code.
type Handler func(ctx context.Context, r *http.Request) (any, error)

type routeKey struct {
	method string
	path   string
}

// Router dispatches on exact method+path, tags every request with a
// generated id, and writes the JSON envelope.
type Router struct {
	uid    pkguid.StringID
	routes map[routeKey]http.Handler
}

func NewRouter(uid pkguid.StringID) *Router {
	return &Router{
		uid:    uid,
		routes: make(map[routeKey]http.Handler),
	}
}

func (rt *Router) GET(path string, h Handler) {
	rt.Handle(http.MethodGet, path, rt.wrap(h))
}

func (rt *Router) POST(path string, h Handler) {
	rt.Handle(http.MethodPost, path, rt.wrap(h))
}

// Handle mounts a plain http.Handler, bypassing the JSON envelope. Used
// for handlers that own their response format, like metrics.
func (rt *Router) Handle(method, path string, h http.Handler) {
	rt.routes[routeKey{method: method, path: path}] = h
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, ok := rt.routes[routeKey{method: r.Method, path: r.URL.Path}]
	if !ok {
		writeError(w, pkgerror.NewBusiness("route not found", pkgerror.CodeNotFound))
		return
	}
	h.ServeHTTP(w, r)
}

func (rt *Router) wrap(h Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := rt.uid.Generate()
		w.Header().Set("X-Request-Id", requestID)

		body, err := h(r.Context(), r)
		if err != nil {
			slog.ErrorContext(r.Context(), "request failed",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
			)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, envelope{Data: body})
		slog.InfoContext(r.Context(), "request served",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	})
}

type envelope struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal"
	message := "internal server error"

	switch pkgerror.CodeOf(err) {
	case pkgerror.CodeInvalidInput:
		status = http.StatusBadRequest
		code = "invalid_input"
		message = err.Error()
	case pkgerror.CodeNotFound:
		status = http.StatusNotFound
		code = "not_found"
		message = err.Error()
	}

	writeJSON(w, status, errorBody{Error: errorDetail{Message: message, Code: code}})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // response writer errors are not recoverable here
	json.NewEncoder(w).Encode(body)
}
