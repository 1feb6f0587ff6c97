package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// frontController resolves the request against the route table and writes
// exactly one envelope.
func (app *application) frontController(w http.ResponseWriter, r *http.Request) {
	path, err := app.routePath(r)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	env, err := app.dispatcher.Dispatch(r.Method, path)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	app.writeEnvelope(w, r, env)
}

// routePath returns the decoded, query-free request path with the base
// prefix removed.
func (app *application) routePath(r *http.Request) (string, error) {
	raw := stripPrefix(r.URL.EscapedPath(), app.cfg.basePath)

	path, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("decode path %q: %w", raw, err)
	}

	return path, nil
}

// stripPrefix removes prefix from path when it ends on a segment boundary.
// An empty remainder becomes "/".
func stripPrefix(path, prefix string) string {
	if prefix == "" || !strings.HasPrefix(path, prefix) {
		return path
	}

	rest := path[len(prefix):]
	switch {
	case rest == "":
		return "/"
	case rest[0] == '/':
		return rest
	default:
		return path
	}
}
