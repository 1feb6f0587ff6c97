package main

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/mSchlettig/qevo-server/internal/router"
)

// table is the application's route table. Paths are matched after the base
// prefix has been stripped.
func (app *application) table() []router.Route {
	return []router.Route{
		{Method: http.MethodGet, Pattern: "/api/health", Handler: app.healthcheckHandler},

		// Auth routes land here once the auth module exists:
		// POST /api/auth/login, POST /api/auth/register
	}
}

func (app *application) routes() http.Handler {
	front := app.metrics(app.recoverPanic(app.enableCORS(http.HandlerFunc(app.frontController))))
	if !app.cfg.metrics {
		return front
	}

	mux := httprouter.New()
	mux.RedirectTrailingSlash = false
	mux.RedirectFixedPath = false
	mux.HandleMethodNotAllowed = false
	mux.HandleOPTIONS = false
	mux.Handler(http.MethodGet, "/debug/vars", expvar.Handler())
	mux.NotFound = front

	return mux
}
