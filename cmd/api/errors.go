package main

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/mSchlettig/qevo-server/internal/response"
)

func (app *application) logError(r *http.Request, err error) {
	app.logger.Error(err, map[string]string{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
	})
}

func (app *application) writeEnvelope(w http.ResponseWriter, r *http.Request, env response.Envelope) {
	err := response.JSON(w, env)
	if err != nil && !errors.Is(err, response.ErrAlreadyWritten) {
		app.logError(r, err)
	}
}

// failure describes a failed request. The trace is only filled in debug
// mode; otherwise the key is left out of the body.
func (app *application) failure(kind string) map[string]any {
	data := map[string]any{"exception": kind}
	if app.cfg.debug {
		data["trace"] = strings.Split(strings.TrimSpace(string(debug.Stack())), "\n")
	}

	return data
}

// internalErrorResponse answers an error returned anywhere in the request
// path.
func (app *application) internalErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	env := response.Make("internal_error", err.Error(), app.failure(fmt.Sprintf("%T", err)), http.StatusInternalServerError)
	app.writeEnvelope(w, r, env)
}

// unhandledExceptionResponse answers a recovered panic.
func (app *application) unhandledExceptionResponse(w http.ResponseWriter, r *http.Request, rec any) {
	err := errorFromPanic(rec)
	app.logError(r, err)

	env := response.Make("unhandled_exception", err.Error(), app.failure(fmt.Sprintf("%T", rec)), http.StatusInternalServerError)
	app.writeEnvelope(w, r, env)
}

func errorFromPanic(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}

	return fmt.Errorf("%v", rec)
}
