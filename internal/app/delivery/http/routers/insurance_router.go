package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachInsuranceRoutes(router chi.Router, middlewares *middlewares.Middlewares, insuranceController *controllers.InsuranceController) {
	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)

	router.With(middlewares.Authenticate, adminOnly).Post("/", insuranceController.CreateInsurance)
	router.With(middlewares.Authenticate).Get("/", insuranceController.GetInsurances)
	router.With(middlewares.Authenticate).Get("/{insuranceID}", insuranceController.GetInsuranceByID)
	router.With(middlewares.Authenticate, adminOnly).Put("/{insuranceID}", insuranceController.UpdateInsurance)
	router.With(middlewares.Authenticate, adminOnly).Delete("/{insuranceID}", insuranceController.DeleteInsurance)
}
