// Package bodyparser implements the body-parsing middleware the
// configuration tree installs at finalize time when the actions feature
// declares parseable response formats.
//
// Only the json parser kind is currently supported. The middleware decodes
// matching request bodies and exposes the result through [FromContext];
// the raw body remains readable by downstream handlers.
package bodyparser

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-app-config/middleware"
)

// Name is the stack entry name the configuration tree checks before
// installing a second parser.
const Name = "body_parser"

// KindJSON identifies the JSON parser kind.
const KindJSON = "json"

// SupportedKinds lists the parser kinds this package implements.
var SupportedKinds = []string{KindJSON}

type ctxKey struct{}

// New builds the middleware from a mapping of parser kind to the MIME
// types it should handle (e.g. {"json": ["application/json"]}). Kinds
// without an implementation are ignored.
func New(kinds map[string][]string) middleware.Middleware {
	jsonTypes := make(map[string]struct{})
	for _, mt := range kinds[KindJSON] {
		jsonTypes[mt] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !matches(r, jsonTypes) {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "cannot read request body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(raw))

			if len(raw) > 0 {
				var parsed any
				if err := json.Unmarshal(raw, &parsed); err != nil {
					http.Error(w, "malformed request body", http.StatusBadRequest)
					return
				}
				r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, parsed))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// FromContext returns the body parsed by the middleware, if any.
func FromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(ctxKey{})
	return v, v != nil
}

func matches(r *http.Request, types map[string]struct{}) bool {
	if r.Body == nil || len(types) == 0 {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	_, ok := types[mediaType]
	return ok
}
