package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GravielPV/Leiny-Informaciones-sub000/config"
	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
	"github.com/GravielPV/Leiny-Informaciones-sub000/services"
	"github.com/GravielPV/Leiny-Informaciones-sub000/utils"
)

// GetResolvedAds devuelve, para los cuatro slots del layout, lo que el
// front debe renderizar. Una sola consulta de configuración por request.
func GetResolvedAds(c *gin.Context) {
	settings, err := services.LoadAdSettings(config.DB)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resolved := make([]services.ResolvedAd, 0, len(models.AdSlots))
	for _, slot := range models.AdSlots {
		resolved = append(resolved, services.ResolveAdSlot(slot, settings))
	}
	c.JSON(http.StatusOK, gin.H{"ads": resolved})
}

// AdminGetAdSettings lista la configuración cruda por slot para el CMS.
func AdminGetAdSettings(c *gin.Context) {
	var rows []models.AdSetting
	if err := config.DB.Order("slot ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar la configuración de anuncios"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slots":    models.AdSlots,
		"settings": rows,
	})
}

// AdminUpsertAdSetting crea o reemplaza la configuración de un slot.
func AdminUpsertAdSetting(c *gin.Context) {
	slot := c.Param("slot")

	var input services.AdSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// La imagen del anuncio pasa por el mismo validador que las de artículos
	if input.Type == models.AdTypeCustom && input.ImageURL != "" {
		input.ImageURL = utils.SafeImageURL(input.ImageURL)
	}

	setting, err := services.UpsertAdSetting(config.DB, slot, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Configuración del anuncio guardada",
		"setting": setting,
	})
}
