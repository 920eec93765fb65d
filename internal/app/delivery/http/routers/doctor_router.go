package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)

	router.With(middlewares.Authenticate, adminOnly).Post("/", doctorController.CreateDoctor)
	router.With(middlewares.Authenticate).Get("/", doctorController.GetDoctors)
	router.With(middlewares.Authenticate).Get("/{doctorID}", doctorController.GetDoctorByID)
	router.With(middlewares.Authenticate, adminOnly).Put("/{doctorID}", doctorController.UpdateDoctor)
	router.With(middlewares.Authenticate, adminOnly).Delete("/{doctorID}", doctorController.DeleteDoctor)
}
