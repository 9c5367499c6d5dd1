package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/GravielPV/Leiny-Informaciones-sub000/config"
	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

func GenerateSlug(name string) string {
	return slug.Make(name)
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre de la categoría es obligatorio"})
		return
	}

	slugValue := GenerateSlug(name)

	// Chequear nombre o slug duplicado
	var count int64
	config.DB.Model(&models.Category{}).
		Where("LOWER(TRIM(name)) = ? OR slug = ?", strings.ToLower(name), slugValue).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ya existe una categoría con ese nombre"})
		return
	}

	category := models.Category{
		Name:        name,
		Slug:        slugValue,
		Description: input.Description,
		Color:       input.Color,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la categoría"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Categoría creada",
		"category": category,
	})
}

func GetCategories(c *gin.Context) {
	query := config.DB.Model(&models.Category{})

	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	page, limit, offset := parsePagination(c)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo contar las categorías"})
		return
	}

	var categories []models.Category
	if err := query.Offset(offset).Limit(limit).Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar las categorías"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       categories,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages(total, limit),
	})
}

// GetCategoriesPublic lista todas las categorías para el menú del sitio.
func GetCategoriesPublic(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar las categorías"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func GetCategoryDetail(c *gin.Context) {
	id := c.Param("id")
	var category models.Category
	if err := config.DB.First(&category, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Categoría no encontrada"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	var category models.Category
	if err := config.DB.First(&category, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Categoría no encontrada"})
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre no puede quedar vacío"})
		return
	}

	slugValue := GenerateSlug(name)

	// Duplicado contra las demás categorías
	var count int64
	config.DB.Model(&models.Category{}).
		Where("(LOWER(TRIM(name)) = ? OR slug = ?) AND id <> ?", strings.ToLower(name), slugValue, id).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ya existe una categoría con ese nombre"})
		return
	}

	category.Name = name
	category.Slug = slugValue
	category.Description = input.Description
	category.Color = input.Color

	if err := config.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la categoría"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Categoría actualizada",
		"category": category,
	})
}

func DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	// No borrar categorías con artículos colgando
	var count int64
	config.DB.Model(&models.Article{}).Where("category_id = ?", id).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "La categoría tiene artículos asociados"})
		return
	}

	result := config.DB.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar la categoría"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Categoría no encontrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categoría eliminada"})
}
