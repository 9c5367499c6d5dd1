package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GravielPV/Leiny-Informaciones-sub000/config"
	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
	"github.com/GravielPV/Leiny-Informaciones-sub000/services"
	"github.com/GravielPV/Leiny-Informaciones-sub000/utils"
)

type SubscribeInput struct {
	Email string `json:"email" binding:"required,email"`
}

func SubscribeNewsletter(c *gin.Context) {
	var input SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Correo inválido"})
		return
	}

	subscriber, err := services.SubscribeNewsletter(config.DB, input.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Bienvenida best-effort, fuera del camino de la respuesta
	go func(email string) {
		body := "<p>Gracias por suscribirte al boletín de <b>Leiny Informaciones</b>.</p>"
		if err := utils.SendEmail(email, "Bienvenido al boletín", body); err != nil {
			config.Log.Warn().Err(err).Str("email", email).Msg("No se pudo enviar la bienvenida")
		}
	}(subscriber.Email)

	c.JSON(http.StatusCreated, gin.H{"message": "Suscripción completada"})
}

func AdminListSubscribers(c *gin.Context) {
	page, limit, offset := parsePagination(c)

	query := config.DB.Model(&models.NewsletterSubscriber{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo contar los suscriptores"})
		return
	}

	var subscribers []models.NewsletterSubscriber
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar los suscriptores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       subscribers,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages(total, limit),
	})
}

func AdminDeleteSubscriber(c *gin.Context) {
	id := c.Param("id")
	result := config.DB.Delete(&models.NewsletterSubscriber{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el suscriptor"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Suscriptor no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Suscriptor eliminado"})
}
