package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	catalogServices "github.com/aut0ban/vetclinic-backend/internal/catalog/services"
	contentModels "github.com/aut0ban/vetclinic-backend/internal/content/models"
	"github.com/aut0ban/vetclinic-backend/internal/content/services"
	"github.com/aut0ban/vetclinic-backend/pkg/utils"
)

type ContentController struct {
	Content *services.ContentService
	Catalog *catalogServices.CatalogService
}

func NewContentController(content *services.ContentService, catalog *catalogServices.CatalogService) *ContentController {
	return &ContentController{Content: content, Catalog: catalog}
}

// Articles serves published articles with the category filter values.
func (cc *ContentController) Articles(c echo.Context) error {
	articles, err := cc.Content.ListPublishedArticles()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load articles")
	}
	categories, err := cc.Content.ArticleCategories()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load categories")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Articles",
		"flash":   utils.PopFlash(c),
		"data": map[string]interface{}{
			"articles":   articles,
			"categories": categories,
		},
	})
}

// ArticlesByCategory serves published articles of one category.
func (cc *ContentController) ArticlesByCategory(c echo.Context) error {
	category := c.Param("name")
	articles, err := cc.Content.ListArticlesByCategory(category)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load articles")
	}
	categories, err := cc.Content.ArticleCategories()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load categories")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Articles",
		"flash":   utils.PopFlash(c),
		"data": map[string]interface{}{
			"articles":          articles,
			"categories":        categories,
			"selected_category": category,
		},
	})
}

// ArticleDetail serves one article and counts the read. Every request
// increments the view counter; there is no deduplication.
func (cc *ContentController) ArticleDetail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	article, err := cc.Content.ArticleByID(id)
	if errors.Is(err, services.ErrArticleNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load article")
	}

	if err := cc.Content.IncrementViews(id); err != nil {
		logrus.WithError(err).WithField("id_article", id).Warn("failed to increment views")
	} else {
		article.Views++
	}

	var similar []contentModels.Article
	if article.Category != "" {
		similar, err = cc.Content.SimilarArticles(article.Category, article.ID, 3)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to load similar articles")
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Article",
		"flash":   utils.PopFlash(c),
		"data": map[string]interface{}{
			"article":          article,
			"similar_articles": similar,
		},
	})
}

// News serves published news, newest first.
func (cc *ContentController) News(c echo.Context) error {
	news, err := cc.Content.ListPublishedNews(0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load news")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "News",
		"flash":   utils.PopFlash(c),
		"data": map[string]interface{}{
			"news": news,
		},
	})
}

// Search runs the substring search across published articles, published news
// and catalog services. An empty query returns empty result sets.
func (cc *ContentController) Search(c echo.Context) error {
	q := c.QueryParam("q")

	data := map[string]interface{}{
		"query":    q,
		"articles": []interface{}{},
		"news":     []interface{}{},
		"services": []interface{}{},
	}

	if q != "" {
		articles, err := cc.Content.SearchArticles(q)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
		}
		news, err := cc.Content.SearchNews(q)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
		}
		serviceHits, err := cc.Catalog.SearchServices(q)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
		}
		data["articles"] = articles
		data["news"] = news
		data["services"] = serviceHits
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Search results",
		"flash":   utils.PopFlash(c),
		"data":    data,
	})
}
