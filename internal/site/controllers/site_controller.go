package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	catalogServices "github.com/aut0ban/vetclinic-backend/internal/catalog/services"
	contentServices "github.com/aut0ban/vetclinic-backend/internal/content/services"
	"github.com/aut0ban/vetclinic-backend/pkg/utils"
)

// Presentation cookies scoped to one browsing session.
const (
	styleCookieName      = "style"
	accessibleCookieName = "accessible"
	defaultStyle         = "default"
	accessibleStyle      = "accessible"
)

type SiteController struct {
	Content *contentServices.ContentService
	Catalog *catalogServices.CatalogService
}

func NewSiteController(content *contentServices.ContentService, catalog *catalogServices.CatalogService) *SiteController {
	return &SiteController{Content: content, Catalog: catalog}
}

// Home serves the landing page payload: three latest news, three services,
// three doctors.
func (sc *SiteController) Home(c echo.Context) error {
	news, err := sc.Content.ListPublishedNews(3)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load news")
	}
	services, err := sc.Catalog.ListServices(3)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load services")
	}
	doctors, err := sc.Catalog.ListDoctors(3)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load doctors")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Home",
		"flash":   utils.PopFlash(c),
		"data": map[string]interface{}{
			"news":          news,
			"services":      services,
			"doctors":       doctors,
			"current_style": currentStyle(c),
		},
	})
}

// ContactsPage serves the contact page payload.
func (sc *SiteController) ContactsPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Contacts",
		"flash":   utils.PopFlash(c),
		"data":    nil,
	})
}

// Contacts accepts the contact form. The message is not persisted anywhere.
func (sc *SiteController) Contacts(c echo.Context) error {
	utils.SetFlash(c, "Your message has been sent! We will get in touch shortly.", utils.FlashSuccess)
	return c.Redirect(http.StatusSeeOther, "/contacts")
}

// SwitchStyle remembers the chosen style for this browsing session.
func (sc *SiteController) SwitchStyle(c echo.Context) error {
	setSessionCookie(c, styleCookieName, c.Param("name"))
	return redirectBack(c)
}

// ToggleAccessible flips the accessibility mode and keeps the style cookie in
// step with it.
func (sc *SiteController) ToggleAccessible(c echo.Context) error {
	accessible := true
	if cookie, err := c.Cookie(accessibleCookieName); err == nil {
		accessible = cookie.Value != "true"
	}

	if accessible {
		setSessionCookie(c, accessibleCookieName, "true")
		setSessionCookie(c, styleCookieName, accessibleStyle)
	} else {
		setSessionCookie(c, accessibleCookieName, "false")
		setSessionCookie(c, styleCookieName, defaultStyle)
	}
	return redirectBack(c)
}

// Sitemap serves the sitemap payload.
func (sc *SiteController) Sitemap(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Sitemap",
		"flash":   utils.PopFlash(c),
		"data": []string{
			"/", "/services", "/doctors", "/articles", "/news", "/contacts",
			"/login", "/register", "/profile", "/search",
		},
	})
}

func currentStyle(c echo.Context) string {
	if cookie, err := c.Cookie(styleCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return defaultStyle
}

func setSessionCookie(c echo.Context, name, value string) {
	c.SetCookie(&http.Cookie{
		Name:  name,
		Value: value,
		Path:  "/",
	})
}

func redirectBack(c echo.Context) error {
	if referer := c.Request().Referer(); referer != "" {
		return c.Redirect(http.StatusSeeOther, referer)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
