package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/aut0ban/vetclinic-backend/internal/accounts/models"
	"github.com/aut0ban/vetclinic-backend/internal/accounts/services"
	apptServices "github.com/aut0ban/vetclinic-backend/internal/appointments/services"
	"github.com/aut0ban/vetclinic-backend/internal/common/middlewares"
	"github.com/aut0ban/vetclinic-backend/pkg/utils"
)

type AuthController struct {
	Accounts     *services.AccountService
	Appointments *apptServices.AppointmentService
}

func NewAuthController(accounts *services.AccountService, appointments *apptServices.AppointmentService) *AuthController {
	return &AuthController{Accounts: accounts, Appointments: appointments}
}

// LoginPage serves the login view payload.
func (ac *AuthController) LoginPage(c echo.Context) error {
	if claims, err := middlewares.ExtractClaims(c); err == nil && claims != nil {
		return c.Redirect(http.StatusSeeOther, "/profile")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Login",
		"flash":   utils.PopFlash(c),
		"data":    nil,
	})
}

// Login authenticates by email and issues the session cookie.
func (ac *AuthController) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	remember := c.FormValue("remember") != ""

	account, err := ac.Accounts.Authenticate(email, password)
	if err != nil {
		utils.SetFlash(c, "Invalid email or password", utils.FlashDanger)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	exp := time.Now().Add(24 * time.Hour)
	if remember {
		exp = time.Now().Add(30 * 24 * time.Hour)
	}
	token, err := utils.GenerateJWTToken(account.ID, account.Username, string(account.Role), exp)
	if err != nil {
		logrus.WithError(err).Error("failed to generate session token")
		utils.SetFlash(c, "Login failed, please try again later", utils.FlashDanger)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	c.SetCookie(&http.Cookie{
		Name:     middlewares.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
	})

	next := c.QueryParam("next")
	if !strings.HasPrefix(next, "/") {
		next = "/profile"
	}
	return c.Redirect(http.StatusSeeOther, next)
}

// RegisterPage serves the registration view payload.
func (ac *AuthController) RegisterPage(c echo.Context) error {
	if claims, err := middlewares.ExtractClaims(c); err == nil && claims != nil {
		return c.Redirect(http.StatusSeeOther, "/profile")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Register",
		"flash":   utils.PopFlash(c),
		"data":    nil,
	})
}

// Register handles self-service registration. The role is always client.
func (ac *AuthController) Register(c echo.Context) error {
	password := c.FormValue("password")
	if password != c.FormValue("confirm_password") {
		utils.SetFlash(c, "Passwords do not match", utils.FlashDanger)
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	input := services.RegistrationInput{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: password,
		FullName: c.FormValue("full_name"),
		Phone:    c.FormValue("phone"),
	}

	if _, err := ac.Accounts.Register(input, models.RoleClient); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			utils.SetFlash(c, "An account with this email already exists", utils.FlashDanger)
		case errors.Is(err, services.ErrDuplicateUsername):
			utils.SetFlash(c, "An account with this username already exists", utils.FlashDanger)
		default:
			logrus.WithError(err).Error("registration failed")
			utils.SetFlash(c, "Registration failed, please try again later", utils.FlashDanger)
		}
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	utils.SetFlash(c, "Registration complete! You can now log in.", utils.FlashSuccess)
	return c.Redirect(http.StatusSeeOther, "/login")
}

// RegisterStaffPage serves the staff registration view payload (admin only).
func (ac *AuthController) RegisterStaffPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Register staff",
		"flash":   utils.PopFlash(c),
		"data":    nil,
	})
}

// RegisterStaff creates an account with an arbitrary role, defaulting to staff.
func (ac *AuthController) RegisterStaff(c echo.Context) error {
	roleValue := c.FormValue("role")
	if roleValue == "" {
		roleValue = string(models.RoleStaff)
	}
	role, err := models.ParseRole(roleValue)
	if err != nil {
		utils.SetFlash(c, "Unknown role", utils.FlashDanger)
		return c.Redirect(http.StatusSeeOther, "/register-staff")
	}

	input := services.RegistrationInput{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		FullName: c.FormValue("full_name"),
		Phone:    c.FormValue("phone"),
	}

	if _, err := ac.Accounts.Register(input, role); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			utils.SetFlash(c, "An account with this email already exists", utils.FlashDanger)
		case errors.Is(err, services.ErrDuplicateUsername):
			utils.SetFlash(c, "An account with this username already exists", utils.FlashDanger)
		default:
			logrus.WithError(err).Error("staff registration failed")
			utils.SetFlash(c, "Registration failed, please try again later", utils.FlashDanger)
		}
		return c.Redirect(http.StatusSeeOther, "/register-staff")
	}

	utils.SetFlash(c, "Staff member "+input.FullName+" registered", utils.FlashSuccess)
	return c.Redirect(http.StatusSeeOther, "/profile")
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middlewares.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}

// Profile is the role-branching dashboard: clients see their own appointments,
// staff see today's schedule, administrators additionally see account totals.
func (ac *AuthController) Profile(c echo.Context) error {
	claims := middlewares.GetClaims(c)
	role, err := models.ParseRole(claims.Role)
	if err != nil {
		utils.SetFlash(c, "Please log in to access this page", utils.FlashDanger)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	switch role {
	case models.RoleClient:
		appointments, err := ac.Appointments.ListByAccount(claims.IDAccount)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load appointments")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  http.StatusOK,
			"message": "Profile",
			"flash":   utils.PopFlash(c),
			"data": map[string]interface{}{
				"role":         role,
				"appointments": appointments,
			},
		})
	case models.RoleStaff:
		appointments, err := ac.Appointments.ListToday()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load appointments")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  http.StatusOK,
			"message": "Profile",
			"flash":   utils.PopFlash(c),
			"data": map[string]interface{}{
				"role":         role,
				"appointments": appointments,
			},
		})
	case models.RoleAdmin:
		appointments, err := ac.Appointments.ListToday()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load appointments")
		}
		accountsCount, err := ac.Accounts.CountAccounts()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load account count")
		}
		appointmentsCount, err := ac.Appointments.CountAppointments()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load appointment count")
		}
		accounts, err := ac.Accounts.ListAccounts()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load accounts")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  http.StatusOK,
			"message": "Admin panel",
			"flash":   utils.PopFlash(c),
			"data": map[string]interface{}{
				"role":               role,
				"appointments":       appointments,
				"accounts_count":     accountsCount,
				"appointments_count": appointmentsCount,
				"accounts":           accounts,
			},
		})
	}
	return echo.NewHTTPError(http.StatusForbidden)
}
