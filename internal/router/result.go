package router

import (
	"net/http"

	"github.com/mSchlettig/qevo-server/internal/response"
)

// Result is what a handler hands back: either a raw value to be wrapped in
// a success envelope, or an envelope the handler built itself.
type Result struct {
	value any
	reply *response.Envelope
}

// Value wraps a raw domain result. The dispatcher answers with code "ok".
func Value(v any) Result {
	return Result{value: v}
}

// Reply passes env through the dispatcher untouched.
func Reply(env response.Envelope) Result {
	return Result{reply: &env}
}

func (r Result) envelope() response.Envelope {
	if r.reply != nil {
		return *r.reply
	}

	return response.Make("ok", "success", r.value, http.StatusOK)
}
