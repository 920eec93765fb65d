package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *controllers.PrescriptionController) {
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleDoctor)).
		Post("/", prescriptionController.CreatePrescription)
	router.With(middlewares.Authenticate).Get("/", prescriptionController.GetPrescriptions)
	router.With(middlewares.Authenticate).Get("/{prescriptionID}", prescriptionController.GetPrescriptionByID)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RolePharmacist)).
		Patch("/{prescriptionID}/review", prescriptionController.ReviewPrescription)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RolePharmacist)).
		Patch("/{prescriptionID}/dispense", prescriptionController.DispensePrescription)
}
