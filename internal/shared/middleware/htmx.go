package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const htmxKey contextKey = "htmx"

// HTMX marks requests issued by htmx so handlers can answer with fragments
// instead of full pages.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isHTMX := r.Header.Get("HX-Request") == "true"
		ctx := context.WithValue(r.Context(), htmxKey, isHTMX)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IsHTMX(r *http.Request) bool {
	if v, ok := r.Context().Value(htmxKey).(bool); ok {
		return v
	}
	return false
}

// Trigger asks htmx to dispatch event on the requesting element with value
// as the event detail. Must be called before the header is written.
func Trigger(w http.ResponseWriter, event string, value any) error {
	payload, err := json.Marshal(map[string]any{event: value})
	if err != nil {
		return err
	}
	w.Header().Set("HX-Trigger", string(payload))
	return nil
}

// Reswap overrides the swap strategy of the requesting element.
func Reswap(w http.ResponseWriter, strategy string) {
	w.Header().Set("HX-Reswap", strategy)
}
