package main

import (
	"context"
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (app *application) routes(ctx context.Context) http.Handler {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/", app.rootHandler)
	router.HandlerFunc(http.MethodGet, "/health", app.healthcheckHandler)
	router.HandlerFunc(http.MethodHead, "/", app.rootHandler)
	router.HandlerFunc(http.MethodHead, "/health", app.healthcheckHandler)

	router.HandlerFunc(http.MethodGet, "/docs/*filepath", httpSwagger.WrapHandler)
	router.Handler(http.MethodGet, "/debug/vars", expvar.Handler())

	return app.middleware(ctx, router)
}

// middleware wraps next so every request, including one whose handler
// panics, is counted and logged.
func (app *application) middleware(ctx context.Context, next http.Handler) http.Handler {
	return app.metrics(app.logRequest(app.recoverPanic(app.enableCORS(app.rateLimit(ctx, next)))))
}
