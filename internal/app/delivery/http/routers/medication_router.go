package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMedicationRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicationController *controllers.MedicationController) {
	manageRoles := middlewares.RequireRoles(constvars.RoleAdmin, constvars.RolePharmacist)

	router.With(middlewares.Authenticate, manageRoles).Post("/", medicationController.CreateMedication)
	router.With(middlewares.Authenticate).Get("/", medicationController.GetMedications)
	router.With(middlewares.Authenticate).Get("/{medicationID}", medicationController.GetMedicationByID)
	router.With(middlewares.Authenticate, manageRoles).Put("/{medicationID}", medicationController.UpdateMedication)
	router.With(middlewares.Authenticate, manageRoles).Delete("/{medicationID}", medicationController.DeleteMedication)
}
