package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachNurseRoutes(router chi.Router, middlewares *middlewares.Middlewares, nurseController *controllers.NurseController) {
	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)

	router.With(middlewares.Authenticate, adminOnly).Post("/", nurseController.CreateNurse)
	router.With(middlewares.Authenticate).Get("/", nurseController.GetNurses)
	router.With(middlewares.Authenticate, adminOnly).Delete("/{nurseID}", nurseController.DeleteNurse)
}
