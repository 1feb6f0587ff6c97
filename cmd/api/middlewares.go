package main

import (
	"expvar"
	"net/http"
	"strconv"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/tomasen/realip"

	"github.com/mSchlettig/qevo-server/internal/response"
	"github.com/mSchlettig/qevo-server/internal/validator"
)

var (
	totalRequestsReceived           = expvar.NewInt("total_requests_received")
	totalResponsesSent              = expvar.NewInt("total_responses_sent")
	totalProcessingTimeMicroseconds = expvar.NewInt("total_processing_time_μs")
	totalResponsesSentByStatus      = expvar.NewMap("total_responses_sent_by_status")
)

// recoverPanic is the outermost failure scope: whatever panics below it is
// answered with one unhandled_exception envelope, unless an envelope already
// went out.
func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w = response.Guard(w)

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				w.Header().Set("Connection", "close")
				if response.Written(w) {
					app.logError(r, errorFromPanic(rec))
					return
				}
				app.unhandledExceptionResponse(w, r, rec)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) enableCORS(next http.Handler) http.Handler {
	allowAny := validator.PermittedValue("*", app.cfg.cors.origins...)
	methods := strings.Join(app.cfg.cors.methods, ",")
	headers := strings.Join(app.cfg.cors.headers, ",")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		switch {
		case allowAny:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case validator.PermittedValue(origin, app.cfg.cors.origins...):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.Header().Set("Access-Control-Allow-Headers", headers)
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		totalRequestsReceived.Add(1)

		m := httpsnoop.CaptureMetrics(next, w, r)

		totalResponsesSent.Add(1)
		totalResponsesSentByStatus.Add(strconv.Itoa(m.Code), 1)
		totalProcessingTimeMicroseconds.Add(m.Duration.Microseconds())

		app.logger.Debug("request completed", map[string]string{
			"request_method": r.Method,
			"request_url":    r.URL.String(),
			"status":         strconv.Itoa(m.Code),
			"duration":       m.Duration.String(),
			"client_ip":      realip.FromRequest(r),
		})
	})
}
