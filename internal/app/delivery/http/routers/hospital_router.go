package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachHospitalRoutes(router chi.Router, middlewares *middlewares.Middlewares, hospitalController *controllers.HospitalController) {
	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)

	router.With(middlewares.Authenticate, adminOnly).Post("/", hospitalController.CreateHospital)
	router.With(middlewares.Authenticate).Get("/", hospitalController.GetHospitals)
	router.With(middlewares.Authenticate).Get("/{hospitalID}", hospitalController.GetHospitalByID)
	router.With(middlewares.Authenticate, adminOnly).Put("/{hospitalID}", hospitalController.UpdateHospital)
	router.With(middlewares.Authenticate, adminOnly).Delete("/{hospitalID}", hospitalController.DeleteHospital)
	router.With(middlewares.Authenticate, adminOnly).Post("/{hospitalID}/departments", hospitalController.AssignDepartment)
	router.With(middlewares.Authenticate).Get("/{hospitalID}/departments", hospitalController.GetHospitalDepartments)
}
