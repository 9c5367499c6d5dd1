package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

type SearchResult struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"` // artículo
	Name    string `json:"name,omitempty"`  // categoría
	Type    string `json:"type"`            // article | category
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt,omitempty"`
}

type SearchResponse struct {
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Results []SearchResult `json:"results"`
}

// SearchFullHandler: página de resultados, artículos publicados + categorías.
func SearchFullHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := strings.TrimSpace(c.Query("query"))
		if term == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "La búsqueda no puede estar vacía"})
			return
		}

		page, perPage, offset := parsePagination(c)
		pattern := "%" + strings.ToLower(term) + "%"

		var articles []models.Article
		var categories []models.Category
		var totalArticles, totalCategories int64

		articleQuery := db.Model(&models.Article{}).
			Where("status = ?", models.StatusPublished).
			Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?", pattern, pattern)
		articleQuery.Count(&totalArticles)
		articleQuery.Order("published_at DESC").Offset(offset).Limit(perPage).Find(&articles)

		categoryQuery := db.Model(&models.Category{}).
			Where("LOWER(name) LIKE ?", pattern)
		categoryQuery.Count(&totalCategories)
		categoryQuery.Offset(offset).Limit(perPage).Find(&categories)

		var results []SearchResult
		for _, a := range articles {
			results = append(results, SearchResult{
				ID:      a.ID.String(),
				Title:   a.Title,
				Type:    "article",
				Slug:    a.Slug,
				Excerpt: a.Excerpt,
			})
		}
		for _, cat := range categories {
			results = append(results, SearchResult{
				ID:   cat.ID.String(),
				Name: cat.Name,
				Type: "category",
				Slug: cat.Slug,
			})
		}

		c.JSON(http.StatusOK, SearchResponse{
			Total:   totalArticles + totalCategories,
			Page:    page,
			PerPage: perPage,
			Results: results,
		})
	}
}

// SearchPreviewHandler: sugerencias mientras se escribe, máximo 5 titulares.
func SearchPreviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := strings.TrimSpace(c.Query("query"))
		if term == "" {
			c.JSON(http.StatusOK, gin.H{"results": []SearchResult{}})
			return
		}

		pattern := "%" + strings.ToLower(term) + "%"

		var articles []models.Article
		db.Model(&models.Article{}).
			Where("status = ?", models.StatusPublished).
			Where("LOWER(title) LIKE ?", pattern).
			Order("published_at DESC").
			Limit(5).
			Find(&articles)

		results := make([]SearchResult, 0, len(articles))
		for _, a := range articles {
			results = append(results, SearchResult{
				ID:    a.ID.String(),
				Title: a.Title,
				Type:  "article",
				Slug:  a.Slug,
			})
		}

		c.JSON(http.StatusOK, gin.H{"results": results})
	}
}
