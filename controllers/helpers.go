package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/GravielPV/Leiny-Informaciones-sub000/services"
)

// respondServiceError mapea la clase del error de servicio al status HTTP.
func respondServiceError(c *gin.Context, err error) {
	c.JSON(services.HTTPStatus(err), gin.H{
		"error": err.Error(),
		"kind":  services.KindOf(err),
	})
}

// parsePagination lee page y limit de la query con los defaults de siempre.
func parsePagination(c *gin.Context) (page, limit, offset int) {
	page = 1
	limit = 10
	if p := c.Query("page"); p != "" {
		fmt.Sscanf(p, "%d", &page)
		if page < 1 {
			page = 1
		}
	}
	if l := c.Query("limit"); l != "" {
		fmt.Sscanf(l, "%d", &limit)
		if limit < 1 {
			limit = 10
		}
	}
	offset = (page - 1) * limit
	return page, limit, offset
}

func totalPages(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}
