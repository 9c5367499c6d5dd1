package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GravielPV/Leiny-Informaciones-sub000/utils"
)

// UploadImage sube la imagen del editor a Supabase Storage y devuelve la
// URL pública para pegar en el artículo o en un anuncio custom.
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el archivo 'image'"})
		return
	}

	if !utils.HasImageExtension(filepath.Ext(fileHeader.Filename)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de imagen no soportado"})
		return
	}

	publicURL, err := utils.UploadImageToSupabase(fileHeader, uuid.New().String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo subir la imagen"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Imagen subida",
		"url":     publicURL,
	})
}
