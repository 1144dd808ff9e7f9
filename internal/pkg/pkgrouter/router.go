package pkgrouter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Juhwan24/Flown/internal/pkg/pkgerror"
	"github.com/Juhwan24/Flown/internal/pkg/pkguid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// HandlerFunc is the handler signature used by all module endpoints.
// The returned value is serialized as the JSON response body.
type HandlerFunc func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	mux *http.ServeMux
	uid pkguid.StringID
}

func NewRouter(uid pkguid.StringID) *Router {
	return &Router{
		mux: http.NewServeMux(),
		uid: uid,
	}
}

func (rt *Router) GET(path string, h HandlerFunc) {
	rt.mux.Handle(http.MethodGet+" "+path, rt.wrap(h))
}

func (rt *Router) POST(path string, h HandlerFunc) {
	rt.mux.Handle(http.MethodPost+" "+path, rt.wrap(h))
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

// RequestID returns the request id stored in the context, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (rt *Router) wrap(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), requestIDKey, rt.uid.Generate())

		result, err := h(ctx, r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, result)
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := pkgerror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "request_id", RequestID(ctx), "error", err)
	}

	body := map[string]string{"error": err.Error()}
	writeJSON(ctx, w, status, body)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "request_id", RequestID(ctx), "error", err)
	}
}
