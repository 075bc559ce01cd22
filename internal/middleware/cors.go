package middleware

import (
	"net/http"
	"strings"
)

const corsAllowMethods = "GET, HEAD, PUT, PATCH, POST, DELETE, OPTIONS"

// CORS allows requests from any origin with any method and header.
// Preflight requests are answered directly with 204 No Content.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			h.Add("Vary", "Access-Control-Request-Headers")
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); strings.TrimSpace(reqHeaders) != "" {
				h.Set("Access-Control-Allow-Headers", reqHeaders)
			}
			h.Set("Content-Length", "0")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
