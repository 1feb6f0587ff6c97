package router

import (
	"context"
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"

	"github.com/mSchlettig/qevo-server/internal/response"
)

// Handler serves one route. Returned errors are left to the caller of
// Dispatch; the dispatcher does not turn them into envelopes.
type Handler func(ps httprouter.Params) (Result, error)

// Route maps a method and an httprouter pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler Handler
}

type outcome int

const (
	outcomeNotFound outcome = iota
	outcomeMethodNotAllowed
	outcomeFound
)

// Dispatcher resolves (method, path) pairs against a fixed route table. It
// is immutable once New returns and safe for concurrent use.
type Dispatcher struct {
	tree    *httprouter.Router
	methods []string
}

type match struct {
	route  *Route
	params httprouter.Params
}

type matchKey struct{}

// New builds a dispatcher over routes. It panics on a conflicting or
// malformed pattern, as httprouter does.
func New(routes ...Route) *Dispatcher {
	tree := httprouter.New()
	tree.RedirectTrailingSlash = false
	tree.RedirectFixedPath = false
	tree.HandleMethodNotAllowed = false
	tree.HandleOPTIONS = false

	seen := map[string]bool{}
	d := &Dispatcher{tree: tree}

	for i := range routes {
		rt := &routes[i]
		tree.Handle(rt.Method, rt.Pattern, record(rt))

		if !seen[rt.Method] {
			seen[rt.Method] = true
			d.methods = append(d.methods, rt.Method)
		}
	}
	sort.Strings(d.methods)

	return d
}

// record stores the matched route in the probe request's context. The tree
// only hands back opaque handles, so this is how Dispatch learns which
// route a lookup hit.
func record(rt *Route) httprouter.Handle {
	return func(_ http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if m, ok := r.Context().Value(matchKey{}).(*match); ok {
			m.route = rt
			m.params = ps
		}
	}
}

// Dispatch resolves method and path, which must already be free of a query
// string and percent-decoded, and runs the matched handler.
func (d *Dispatcher) Dispatch(method, path string) (response.Envelope, error) {
	out, m, allowed := d.resolve(method, path)

	switch out {
	case outcomeNotFound:
		return response.Make("not_found", "route not found", nil, http.StatusNotFound), nil
	case outcomeMethodNotAllowed:
		return response.Make("method_not_allowed", "method not allowed", map[string]any{"allowed": allowed}, http.StatusMethodNotAllowed), nil
	case outcomeFound:
		if m.route.Handler == nil {
			return response.Make("bad_handler", "invalid handler", nil, http.StatusInternalServerError), nil
		}

		res, err := m.route.Handler(m.params)
		if err != nil {
			return response.Envelope{}, err
		}

		return res.envelope(), nil
	default:
		return response.Make("internal_error", "unexpected router state", nil, http.StatusInternalServerError), nil
	}
}

// Methods returns the registered methods whose pattern matches path, sorted.
func (d *Dispatcher) Methods(path string) []string {
	var allowed []string
	for _, method := range d.methods {
		if handle, _, _ := d.tree.Lookup(method, path); handle != nil {
			allowed = append(allowed, method)
		}
	}

	return allowed
}

func (d *Dispatcher) resolve(method, path string) (outcome, *match, []string) {
	handle, ps, _ := d.tree.Lookup(method, path)
	if handle != nil {
		m := &match{}
		probe := (&http.Request{Method: method}).WithContext(context.WithValue(context.Background(), matchKey{}, m))
		handle(nil, probe, ps)

		return outcomeFound, m, nil
	}

	allowed := d.Methods(path)
	if len(allowed) > 0 {
		return outcomeMethodNotAllowed, nil, allowed
	}

	return outcomeNotFound, nil, nil
}
