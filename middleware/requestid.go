package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-app-config/logger"
)

// RequestIDHeader is the header the request-id middleware reads and echoes.
const RequestIDHeader = "X-Request-ID"

// RequestIDName is the stack entry name the middleware registers under.
const RequestIDName = "request_id"

// RequestID returns a middleware that ensures every request carries a
// request id: an inbound header value is reused, otherwise a fresh UUID is
// generated. The id is echoed on the response and attached, together with
// a request-scoped child logger, to the request context.
func RequestID(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			l := log.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("request_id", requestID)
			})
			r = r.WithContext(l.WithContext(ctx))

			w.Header().Set(RequestIDHeader, requestID)
			next.ServeHTTP(w, r)
		})
	}
}
