package routes

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"

	accountControllers "github.com/aut0ban/vetclinic-backend/internal/accounts/controllers"
	accountServices "github.com/aut0ban/vetclinic-backend/internal/accounts/services"
	apptControllers "github.com/aut0ban/vetclinic-backend/internal/appointments/controllers"
	apptServices "github.com/aut0ban/vetclinic-backend/internal/appointments/services"
	catalogControllers "github.com/aut0ban/vetclinic-backend/internal/catalog/controllers"
	catalogServices "github.com/aut0ban/vetclinic-backend/internal/catalog/services"
	"github.com/aut0ban/vetclinic-backend/internal/common/middlewares"
	contentControllers "github.com/aut0ban/vetclinic-backend/internal/content/controllers"
	contentServices "github.com/aut0ban/vetclinic-backend/internal/content/services"
	siteControllers "github.com/aut0ban/vetclinic-backend/internal/site/controllers"
	"github.com/aut0ban/vetclinic-backend/ws"
)

// Init wires services into controllers and registers every route.
func Init(e *echo.Echo, db *sql.DB) {
	accountService := accountServices.NewAccountService(db)
	catalogService := catalogServices.NewCatalogService(db)
	contentService := contentServices.NewContentService(db)
	appointmentService := apptServices.NewAppointmentService(db)

	authController := accountControllers.NewAuthController(accountService, appointmentService)
	catalogController := catalogControllers.NewCatalogController(catalogService)
	contentController := contentControllers.NewContentController(contentService, catalogService)
	appointmentController := apptControllers.NewAppointmentController(appointmentService, ws.HubInstance)
	siteController := siteControllers.NewSiteController(contentService, catalogService)

	e.HTTPErrorHandler = errorHandler

	// Public pages
	e.GET("/", siteController.Home)
	e.GET("/services", catalogController.Services)
	e.GET("/doctors", catalogController.Doctors)
	e.GET("/articles", contentController.Articles)
	e.GET("/article/:id", contentController.ArticleDetail)
	e.GET("/articles/category/:name", contentController.ArticlesByCategory)
	e.GET("/news", contentController.News)
	e.GET("/search", contentController.Search)
	e.GET("/contacts", siteController.ContactsPage)
	e.POST("/contacts", siteController.Contacts)
	e.GET("/sitemap", siteController.Sitemap)
	e.GET("/switch-style/:name", siteController.SwitchStyle)
	e.GET("/toggle-accessible", siteController.ToggleAccessible)

	// Authentication
	e.GET("/login", authController.LoginPage)
	e.POST("/login", authController.Login)
	e.GET("/register", authController.RegisterPage)
	e.POST("/register", authController.Register)
	e.GET("/register-staff", authController.RegisterStaffPage, middlewares.RequireAdmin())
	e.POST("/register-staff", authController.RegisterStaff, middlewares.RequireAdmin())
	e.GET("/logout", authController.Logout, middlewares.JWTMiddleware())

	// Authenticated pages
	e.GET("/profile", authController.Profile, middlewares.JWTMiddleware())
	e.POST("/make-appointment", appointmentController.MakeAppointment, middlewares.JWTMiddleware())

	// API
	api := e.Group("/api")
	api.GET("/doctors", catalogController.APIDoctors)
	api.GET("/services", catalogController.APIServices)
	api.PUT("/appointments/:id/status", appointmentController.UpdateStatus, middlewares.RequireStaff())

	// Live appointment feed for staff dashboards
	e.GET("/ws", ws.ServeWS(ws.HubInstance), middlewares.RequireStaff())
}

// errorHandler renders unhandled errors in the standard envelope; unmatched
// routes get the 404 page.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}
	if status == http.StatusNotFound {
		message = "Page not found"
	}

	_ = c.JSON(status, map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    nil,
	})
}
