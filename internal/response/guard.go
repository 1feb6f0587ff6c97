package response

import "net/http"

type guard struct {
	http.ResponseWriter
	written bool
}

// Guard wraps w so that at most one envelope is ever written through it.
// Wrapping an already guarded writer returns it unchanged.
func Guard(w http.ResponseWriter) http.ResponseWriter {
	if g, ok := w.(*guard); ok {
		return g
	}

	return &guard{ResponseWriter: w}
}

// Written reports whether an envelope went out through w. Writers that were
// never guarded report false.
func Written(w http.ResponseWriter) bool {
	g, ok := w.(*guard)
	return ok && g.written
}

func (g *guard) Unwrap() http.ResponseWriter {
	return g.ResponseWriter
}
