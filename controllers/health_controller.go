package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GravielPV/Leiny-Informaciones-sub000/config"
	"github.com/GravielPV/Leiny-Informaciones-sub000/ws"
)

func HealthCheck(c *gin.Context) {
	response := gin.H{
		"status":       "ok",
		"timestamp":    time.Now().Unix(),
		"db":           "ok",
		"live_viewers": ws.H.Count(),
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		response["db"] = "error: no se pudo obtener la instancia de DB"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		response["db"] = "error: sin conexión a la base de datos"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
