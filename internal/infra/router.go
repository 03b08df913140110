package infra

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/umalmyha/crm/internal/handlers"
	"github.com/umalmyha/crm/internal/metrics"
	"github.com/umalmyha/crm/internal/middleware"
	"github.com/umalmyha/crm/internal/model"

	_ "github.com/umalmyha/crm/docs" // swagger spec
)

// Router builds echo application serving CRM http api
func Router(svcs *Services, validator echo.Validator, logger logrus.FieldLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator
	e.HTTPErrorHandler = handlers.ErrorHandler(logger)

	e.Use(
		echomw.Recover(),
		echomw.RequestID(),
		metrics.Middleware(),
		middleware.RequestLogger(logger),
	)

	// Middleware
	authorizeMw := middleware.Authorize(svcs.JwtValidator)
	adminMw := middleware.RequireRole(model.RoleAdmin)

	// Handlers
	authHandler := handlers.NewAuthHTTPHandler(svcs.Auth)
	complaintHandler := handlers.NewComplaintHTTPHandler(svcs.Complaint)
	employeeHandler := handlers.NewEmployeeHTTPHandler(svcs.Employee)
	departmentHandler := handlers.NewDepartmentHTTPHandler(svcs.Department)
	taskHandler := handlers.NewTaskHTTPHandler(svcs.Task)
	emailHandler := handlers.NewEmailHTTPHandler(svcs.Email)

	e.GET("/health", handlers.Health)
	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	api := e.Group("/api")

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/logout", authHandler.Logout)
	authAPI.POST("/refresh", authHandler.Refresh)
	authAPI.POST("/verify", authHandler.Verify)

	// complaints, submission and tracking are public
	complaintsAPI := api.Group("/complaints")
	complaintsAPI.POST("", complaintHandler.Submit)
	complaintsAPI.GET("/track/:reference", complaintHandler.Track)
	complaintsAPI.GET("", complaintHandler.GetAll, authorizeMw)
	complaintsAPI.GET("/stats", complaintHandler.Statistics, authorizeMw)
	complaintsAPI.GET("/:id", complaintHandler.Get, authorizeMw)
	complaintsAPI.PUT("/:id/assign", complaintHandler.Assign, authorizeMw)
	complaintsAPI.PATCH("/:id/status", complaintHandler.ChangeStatus, authorizeMw)
	complaintsAPI.POST("/:id/notes", complaintHandler.AddNote, authorizeMw)

	// employees
	employeesAPI := api.Group("/employees", authorizeMw)
	employeesAPI.POST("", employeeHandler.Post, adminMw)
	employeesAPI.GET("", employeeHandler.GetAll)
	employeesAPI.GET("/:id", employeeHandler.Get)
	employeesAPI.PUT("/:id", employeeHandler.Put)

	// departments
	departmentsAPI := api.Group("/departments", authorizeMw)
	departmentsAPI.POST("", departmentHandler.Post, adminMw)
	departmentsAPI.GET("", departmentHandler.GetAll)

	// tasks
	tasksAPI := api.Group("/tasks", authorizeMw)
	tasksAPI.POST("", taskHandler.Post)
	tasksAPI.GET("", taskHandler.GetAll)
	tasksAPI.PUT("/:id", taskHandler.Put)
	tasksAPI.DELETE("/:id", taskHandler.DeleteByID)

	// emails
	emailsAPI := api.Group("/emails", authorizeMw)
	emailsAPI.POST("/send", emailHandler.Send)
	emailsAPI.POST("/send-confirmation", emailHandler.SendConfirmation)

	return e
}
