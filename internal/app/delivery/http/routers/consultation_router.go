package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, middlewares *middlewares.Middlewares, consultationController *controllers.ConsultationController) {
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleDoctor)).
		Post("/", consultationController.SaveConsultation)
	router.With(middlewares.Authenticate).Get("/{appointmentID}", consultationController.GetConsultationByAppointmentID)
}
