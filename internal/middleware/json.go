package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/mtlprog/goodwill/internal/handler/dto"
)

// JSONBody rejects request bodies larger than maxBytes with 413 and bodies
// declared as JSON that do not parse with 400 INVALID_JSON. Accepted bodies
// are buffered and handed to the next handler unchanged.
func JSONBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			if r.ContentLength > maxBytes {
				respondTooLarge(w, maxBytes)
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
			if err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					respondTooLarge(w, maxBytes)
					return
				}
				writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "Could not read request body")
				return
			}

			if len(bytes.TrimSpace(body)) > 0 && isJSON(r) && !json.Valid(body) {
				writeError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON")
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))

			next.ServeHTTP(w, r)
		})
	}
}

// isJSON reports whether the request declares a JSON media type,
// including structured suffixes such as application/merge-patch+json.
func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func respondTooLarge(w http.ResponseWriter, maxBytes int64) {
	writeError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
		"Request body exceeds "+strconv.FormatInt(maxBytes, 10)+" bytes")
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.NewErrorResponse(code, message))
}
