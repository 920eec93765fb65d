package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPharmacyRoutes(router chi.Router, middlewares *middlewares.Middlewares, pharmacyController *controllers.PharmacyController) {
	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)

	router.With(middlewares.Authenticate, adminOnly).Post("/", pharmacyController.CreatePharmacy)
	router.With(middlewares.Authenticate).Get("/", pharmacyController.GetPharmacies)
	router.With(middlewares.Authenticate).Get("/{pharmacyID}", pharmacyController.GetPharmacyByID)
	router.With(middlewares.Authenticate, adminOnly).Delete("/{pharmacyID}", pharmacyController.DeletePharmacy)
}
