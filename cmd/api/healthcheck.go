package main

import (
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/mSchlettig/qevo-server/internal/router"
)

type healthStatus struct {
	Time string `json:"time"`
	Env  string `json:"env"`
}

func (app *application) healthcheckHandler(_ httprouter.Params) (router.Result, error) {
	return router.Value(healthStatus{
		Time: app.now().Format(time.RFC3339),
		Env:  app.cfg.env,
	}), nil
}
