package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"

	"renovation-marketplace-api/internal/service"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, limiter *RateLimiter) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	api := handler.Group("/api")
	public := api.Group("", limiter.Middleware())
	protected := api.Group("", TokenAuth(services.Auth))

	newDiagnosticRoutesHandler(public, services)
	newAuthRoutesHandler(public, protected, services, validate)
	newPropertyRoutesHandler(protected, services, validate)
	newOfferRoutesHandler(protected, services, validate)
	newContractorRoutesHandler(protected, services, validate)
}
