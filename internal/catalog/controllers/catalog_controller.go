package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aut0ban/vetclinic-backend/internal/catalog/services"
	"github.com/aut0ban/vetclinic-backend/pkg/utils"
)

type CatalogController struct {
	Service *services.CatalogService
}

func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{Service: service}
}

// Services serves the service catalog with its category filter values.
func (cc *CatalogController) Services(c echo.Context) error {
	list, err := cc.Service.ListServices(0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load services")
	}
	categories, err := cc.Service.ServiceCategories()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load categories")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Services",
		"flash":   utils.PopFlash(c),
		"data": map[string]interface{}{
			"services":   list,
			"categories": categories,
		},
	})
}

// Doctors serves the practitioner catalog with its specialization filter values.
func (cc *CatalogController) Doctors(c echo.Context) error {
	list, err := cc.Service.ListDoctors(0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load doctors")
	}
	specializations, err := cc.Service.DoctorSpecializations()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load specializations")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Doctors",
		"flash":   utils.PopFlash(c),
		"data": map[string]interface{}{
			"doctors":         list,
			"specializations": specializations,
		},
	})
}

// APIDoctors is the bare JSON projection the booking form consumes.
func (cc *CatalogController) APIDoctors(c echo.Context) error {
	doctors, err := cc.Service.ListDoctors(0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load doctors")
	}
	result := make([]map[string]interface{}, 0, len(doctors))
	for _, d := range doctors {
		result = append(result, map[string]interface{}{
			"id":             d.ID,
			"name":           d.Name,
			"specialization": d.Specialization,
			"photo_url":      d.PhotoURL,
		})
	}
	return c.JSON(http.StatusOK, result)
}

// APIServices is the bare JSON projection the booking form consumes.
func (cc *CatalogController) APIServices(c echo.Context) error {
	list, err := cc.Service.ListServices(0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load services")
	}
	result := make([]map[string]interface{}, 0, len(list))
	for _, s := range list {
		result = append(result, map[string]interface{}{
			"id":       s.ID,
			"name":     s.Name,
			"category": s.Category,
			"price":    s.Price,
		})
	}
	return c.JSON(http.StatusOK, result)
}
