package routers

import (
	"medipass-service/internal/app/delivery/http/controllers"
	"medipass-service/internal/app/delivery/http/middlewares"
	"medipass-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDepartmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, departmentController *controllers.DepartmentController) {
	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)

	router.With(middlewares.Authenticate, adminOnly).Post("/", departmentController.CreateDepartment)
	router.With(middlewares.Authenticate).Get("/", departmentController.GetDepartments)
	router.With(middlewares.Authenticate).Get("/{departmentID}", departmentController.GetDepartmentByID)
	router.With(middlewares.Authenticate, adminOnly).Put("/{departmentID}", departmentController.UpdateDepartment)
	router.With(middlewares.Authenticate, adminOnly).Delete("/{departmentID}", departmentController.DeleteDepartment)
}
