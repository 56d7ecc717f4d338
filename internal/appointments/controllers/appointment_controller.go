package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/aut0ban/vetclinic-backend/internal/appointments/models"
	"github.com/aut0ban/vetclinic-backend/internal/appointments/services"
	"github.com/aut0ban/vetclinic-backend/internal/common/middlewares"
	"github.com/aut0ban/vetclinic-backend/pkg/utils"
	"github.com/aut0ban/vetclinic-backend/ws"
)

type AppointmentController struct {
	Service *services.AppointmentService
	Hub     *ws.Hub
}

func NewAppointmentController(service *services.AppointmentService, hub *ws.Hub) *AppointmentController {
	return &AppointmentController{Service: service, Hub: hub}
}

// MakeAppointment books a pending appointment from the contact-page form.
// Validation failures surface a sanitized notice; the caller always lands back
// on the contacts page.
func (ac *AppointmentController) MakeAppointment(c echo.Context) error {
	claims := middlewares.GetClaims(c)

	input := services.CreateInput{
		IDAccount:  claims.IDAccount,
		DoctorID:   c.FormValue("doctor_id"),
		ServiceID:  c.FormValue("service_id"),
		PetName:    c.FormValue("pet_name"),
		PetSpecies: c.FormValue("pet_species"),
		PetAge:     c.FormValue("pet_age"),
		Date:       c.FormValue("appointment_date"),
		Time:       c.FormValue("appointment_time"),
		Notes:      c.FormValue("notes"),
	}

	id, err := ac.Service.Create(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSchedule) {
			utils.SetFlash(c, "Could not create the appointment: invalid date or time", utils.FlashDanger)
		} else {
			logrus.WithError(err).Error("failed to create appointment")
			utils.SetFlash(c, "Could not create the appointment, please try again later", utils.FlashDanger)
		}
		return c.Redirect(http.StatusSeeOther, "/contacts")
	}

	ws.BroadcastAppointmentEvent(ac.Hub, ws.AppointmentEvent{
		Type:          ws.EventAppointmentCreated,
		IDAppointment: id,
		Status:        string(models.StatusPending),
	})

	utils.SetFlash(c, "Appointment created! Please wait for the clinic to confirm.", utils.FlashSuccess)
	return c.Redirect(http.StatusSeeOther, "/contacts")
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an appointment along the allowed status transitions.
func (ac *AppointmentController) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid appointment id",
			"data":    nil,
		})
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}

	next, err := models.ParseStatus(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Unknown status",
			"data":    nil,
		})
	}

	from, err := ac.Service.UpdateStatus(id, next)
	if err != nil {
		var invalid services.ErrInvalidTransition
		switch {
		case errors.Is(err, services.ErrAppointmentNotFound):
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": "Appointment not found",
				"data":    nil,
			})
		case errors.As(err, &invalid):
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": invalid.Error(),
				"data":    nil,
			})
		default:
			logrus.WithError(err).Error("failed to update appointment status")
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"status":  http.StatusInternalServerError,
				"message": "Failed to update appointment status",
				"data":    nil,
			})
		}
	}

	ws.BroadcastAppointmentEvent(ac.Hub, ws.AppointmentEvent{
		Type:          ws.EventAppointmentStatusChanged,
		IDAppointment: int64(id),
		Status:        string(next),
	})

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Status updated",
		"data": map[string]interface{}{
			"id_appointment": id,
			"from":           from,
			"to":             next,
		},
	})
}
