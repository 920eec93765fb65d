package routers

import (
	"medipass-service/internal/app/config"
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	appointmentController *controllers.AppointmentController,
	consultationController *controllers.ConsultationController,
	labTestController *controllers.LabTestController,
	prescriptionController *controllers.PrescriptionController,
	paymentController *controllers.PaymentController,
	notificationController *controllers.NotificationController,
	hospitalController *controllers.HospitalController,
	departmentController *controllers.DepartmentController,
	pharmacyController *controllers.PharmacyController,
	medicationController *controllers.MedicationController,
	insuranceController *controllers.InsuranceController,
	doctorController *controllers.DoctorController,
	nurseController *controllers.NurseController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Recover)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/consultations", func(r chi.Router) {
			attachConsultationRoutes(r, middlewares, consultationController)
		})

		r.Route("/lab-tests", func(r chi.Router) {
			attachLabTestRoutes(r, middlewares, labTestController)
		})

		r.Route("/prescriptions", func(r chi.Router) {
			attachPrescriptionRoutes(r, middlewares, prescriptionController)
		})

		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, middlewares, paymentController)
		})

		r.Route("/notifications", func(r chi.Router) {
			attachNotificationRoutes(r, middlewares, notificationController)
		})

		r.Route("/hospitals", func(r chi.Router) {
			attachHospitalRoutes(r, middlewares, hospitalController)
		})

		r.Route("/departments", func(r chi.Router) {
			attachDepartmentRoutes(r, middlewares, departmentController)
		})

		r.Route("/pharmacies", func(r chi.Router) {
			attachPharmacyRoutes(r, middlewares, pharmacyController)
		})

		r.Route("/medications", func(r chi.Router) {
			attachMedicationRoutes(r, middlewares, medicationController)
		})

		r.Route("/insurances", func(r chi.Router) {
			attachInsuranceRoutes(r, middlewares, insuranceController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController)
		})

		r.Route("/nurses", func(r chi.Router) {
			attachNurseRoutes(r, middlewares, nurseController)
		})
	})
}
