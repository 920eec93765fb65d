package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachLabTestRoutes(router chi.Router, middlewares *middlewares.Middlewares, labTestController *controllers.LabTestController) {
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleAdmin)).
		Post("/templates", labTestController.CreateTemplate)
	router.With(middlewares.Authenticate).Get("/templates", labTestController.GetTemplates)
	router.With(middlewares.Authenticate).Get("/requests", labTestController.GetRequests)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleLabTechnician)).
		Patch("/requests/{requestID}", labTestController.UpdateRequestStatus)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleLabTechnician)).
		Post("/requests/{requestID}/results", labTestController.SubmitResult)
}
