package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RolePatient)).
		Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.Authenticate).Get("/", appointmentController.GetAppointments)
	router.With(middlewares.Authenticate).Get("/slots", appointmentController.GetAvailableSlots)
	router.With(middlewares.Authenticate).Get("/{appointmentID}", appointmentController.GetAppointmentByID)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleNurse)).
		Patch("/{appointmentID}/approve", appointmentController.ApproveAppointment)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleNurse)).
		Patch("/{appointmentID}/reject", appointmentController.RejectAppointment)
}
