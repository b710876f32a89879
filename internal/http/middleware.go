package http

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"event-handler/internal/shared/loggers"
	"event-handler/internal/shared/svcerrors"
	"event-handler/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"github.com/mileusna/useragent"
	"github.com/rs/zerolog"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwPrometheus)
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter wraps the writer once so later middlewares share the same response details.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(newAppResponseWriter(w, r.ProtoMajor), r)
	})
}

// mwPrometheus labels requests by chi route pattern, never by raw path.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metricHTTPRequestsInFlight.Inc()
		defer metricHTTPRequestsInFlight.Dec()

		start := time.Now()
		next.ServeHTTP(w, r)

		route := routePattern(r)
		summary := summarizeResponse(w)

		metricHTTPRequestsTotal.
			WithLabelValues(r.Method, route, strconv.Itoa(summary.status), summary.errorCode).
			Inc()
		metricHTTPRequestDuration.
			WithLabelValues(r.Method, route).
			Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// mwRequestID reuses or assigns x-request-id, echoes it back and puts a request-scoped logger in context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			if id == "" {
				id = ulid.NewULID()
				setRequestID(r, id)
			}
			w.Header().Set(headerRequestID, id)

			ctx := httpLogger.With().
				Str(loggers.FieldRequestID, id).
				Logger().WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// mwRequestCompletionLog writes one access log line per request; server errors log at warn.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			summary := summarizeResponse(w)

			logger := loggers.Ctx(r.Context())
			var entry *zerolog.Event
			if summary.status >= http.StatusInternalServerError {
				entry = logger.Warn()
			} else {
				entry = logger.Info()
			}
			if summary.errorCode != "" {
				entry = entry.Str(loggers.FieldErrorCode, summary.errorCode)
			}

			entry.
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Int(loggers.FieldHttpStatus, summary.status).
				Int(loggers.FieldResponseBytes, summary.bytes).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
				Str(loggers.FieldUserAgent, userAgentFamily(userAgent(r))).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// mwRecoverer turns a handler panic into a SYS_9000 response.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				loggers.Ctx(r.Context()).Error().
					Bytes(loggers.FieldErrorStack, debug.Stack()).
					Msgf("http panic recovered: %v", p)

				writeErrorResponse(w, r, svcerrors.NewPanicError(p))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// userAgentFamily reduces a user agent to its browser or client name, or returns it unchanged.
func userAgentFamily(ua string) string {
	if ua == "" {
		return ""
	}
	if parsed := useragent.Parse(ua); parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
