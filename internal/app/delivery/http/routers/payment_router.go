package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RolePatient)).
		Post("/", paymentController.CreatePayment)
	router.With(middlewares.Authenticate).Get("/", paymentController.GetPayments)
}
