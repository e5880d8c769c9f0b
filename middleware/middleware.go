package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	sc "github.com/reoring/shapecast"
	"github.com/reoring/shapecast/decode"
	"github.com/reoring/shapecast/i18n"
)

// DefaultMaxBytes caps request bodies when Options.MaxBytes is zero.
const DefaultMaxBytes int64 = 1 << 20

// Error codes written in JSON error payloads.
const (
	CodeParseError   = "parse_error"
	CodeTooLarge     = "too_large"
	CodeNotConform   = "not_conform"
	CodeDuplicateKey = "duplicate_key"
)

// Options configures the request body cast.
type Options struct {
	MaxBytes   int64             // Body size cap; DefaultMaxBytes when zero.
	NumberMode decode.NumberMode // Must match the number spec used in the Spec.

	// RejectDuplicateKeys answers 400 duplicate_key when an object in the
	// body repeats a key instead of keeping the last value.
	RejectDuplicateKeys bool
}

// ctxKeyValue is a typed context key for storing cast values.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyValue[T any] struct{}

// ContextWithValue attaches a cast value of type T to the context.
func ContextWithValue[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyValue[T]{}, v)
}

// ValueFromContext retrieves a cast value of type T from context.
func ValueFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyValue[T]{}).(T)
	return v, ok
}

// Cast returns middleware that decodes the JSON request body, casts it with
// spec and hands the typed value to next through the request context. The
// body is restored so next may read it again.
//
// Responses on failure: 400 parse_error or duplicate_key, 413 too_large,
// 422 not_conform.
func Cast[T any](spec sc.Spec[T], opt Options) func(http.Handler) http.Handler {
	maxBytes := opt.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
			if err != nil {
				var mbe *http.MaxBytesError
				if errors.As(err, &mbe) {
					WriteError(w, http.StatusRequestEntityTooLarge, CodeTooLarge)
					return
				}
				WriteError(w, http.StatusBadRequest, CodeParseError)
				return
			}
			if opt.RejectDuplicateKeys {
				if dups, _ := decode.DuplicateKeys(data); len(dups) > 0 {
					WriteError(w, http.StatusBadRequest, CodeDuplicateKey)
					return
				}
			}
			v, err := decode.JSON(data, opt.NumberMode)
			if err != nil {
				WriteError(w, http.StatusBadRequest, CodeParseError)
				return
			}
			typed, ok := sc.Cast(spec, v)
			if !ok {
				WriteError(w, http.StatusUnprocessableEntity, CodeNotConform)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(data))
			next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), typed)))
		})
	}
}

// ErrorPayload shapes an error code for JSON responses.
func ErrorPayload(code string) map[string]any {
	return map[string]any{"error": map[string]any{"code": code, "message": i18n.T(code, nil)}}
}

// WriteError writes ErrorPayload(code) as JSON with the given status.
func WriteError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorPayload(code))
}
