package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GravielPV/Leiny-Informaciones-sub000/config"
	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
	"github.com/GravielPV/Leiny-Informaciones-sub000/services"
	"github.com/GravielPV/Leiny-Informaciones-sub000/utils"
	"github.com/GravielPV/Leiny-Informaciones-sub000/ws"
)

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return uuid.Nil, false
	}
	return id, true
}

func AdminListLiveVideos(c *gin.Context) {
	var videos []models.LiveVideo
	if err := config.DB.Order("created_at DESC").Find(&videos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar los videos"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func AdminCreateLiveVideo(c *gin.Context) {
	var input services.LiveVideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := services.CreateLiveVideo(config.DB, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Video creado",
		"video":   video,
	})
}

func AdminUpdateLiveVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.LiveVideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := services.UpdateLiveVideo(config.DB, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Video actualizado",
		"video":   video,
	})
}

func AdminDeleteLiveVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := services.DeleteLiveVideo(config.DB, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video eliminado"})
}

// AdminEnableLiveVideo habilita un único video y avisa a los espectadores.
func AdminEnableLiveVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	video, err := services.EnableLiveVideo(config.DB, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ws.H.BroadcastLiveStatus(ws.LiveStatusUpdate{
		Event:          "live_enabled",
		VideoID:        video.ID.String(),
		Title:          video.Title,
		YoutubeVideoID: video.YoutubeVideoID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Video habilitado",
		"video":   video,
	})
}

func AdminDisableLiveVideos(c *gin.Context) {
	if err := services.DisableAllLiveVideos(config.DB); err != nil {
		respondServiceError(c, err)
		return
	}

	ws.H.BroadcastLiveStatus(ws.LiveStatusUpdate{Event: "live_disabled"})

	c.JSON(http.StatusOK, gin.H{"message": "Transmisión deshabilitada"})
}

// GetLiveVideo: lo que ve la portada. 200 con el video habilitado o 404.
func GetLiveVideo(c *gin.Context) {
	video, err := services.GetEnabledLiveVideo(config.DB)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"video":     video,
		"embed_url": utils.YoutubeEmbedURL(video.YoutubeVideoID, true, true),
	})
}
