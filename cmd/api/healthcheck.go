package main

import (
	"net/http"

	"greeter/internal/data"
)

// @Summary      Health check
// @Description  Liveness probe reporting the deployed version
// @Tags         Debug
// @Produce      json
// @Success      200  {object}  data.HealthResponse
// @Router       /health [get]
func (app *application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, data.NewHealthResponse(app.config.version), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
