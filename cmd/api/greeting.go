package main

import (
	"net/http"

	"greeter/internal/data"
)

// @Summary      Greeting
// @Description  Returns the greeting with the deployed version, environment and current UTC time
// @Tags         Greeting
// @Produce      json
// @Success      200  {object}  data.RootResponse
// @Router       / [get]
func (app *application) rootHandler(w http.ResponseWriter, r *http.Request) {
	resp := data.NewRootResponse(app.config.version, app.config.env, app.clock.Now())

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
