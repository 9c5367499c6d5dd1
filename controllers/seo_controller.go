package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/GravielPV/Leiny-Informaciones-sub000/config"
	"github.com/GravielPV/Leiny-Informaciones-sub000/services"
)

func RobotsTxt(c *gin.Context) {
	c.String(http.StatusOK, services.BuildRobotsTxt(os.Getenv("SITE_URL")))
}

func SitemapXML(c *gin.Context) {
	out, err := services.BuildSitemap(config.DB, os.Getenv("SITE_URL"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", out)
}
