package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GravielPV/Leiny-Informaciones-sub000/config"
	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
	"github.com/GravielPV/Leiny-Informaciones-sub000/services"
	"github.com/GravielPV/Leiny-Informaciones-sub000/utils"
)

type ArticleInput struct {
	Title       string     `json:"title" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	Excerpt     string     `json:"excerpt"`
	CategoryID  string     `json:"category_id" binding:"required,uuid"`
	ImageURL    string     `json:"image_url"`
	Status      string     `json:"status" binding:"omitempty,oneof=draft published"`
	PublishedAt *time.Time `json:"published_at"`
}

// uniqueArticleSlug deriva el slug del título y le agrega un sufijo
// numérico si ya está tomado (los titulares se repiten seguido).
func uniqueArticleSlug(db *gorm.DB, title string, excludeID uuid.UUID) string {
	base := GenerateSlug(title)
	candidate := base
	for i := 2; ; i++ {
		var count int64
		db.Model(&models.Article{}).
			Where("slug = ? AND id <> ?", candidate, excludeID).
			Count(&count)
		if count == 0 {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func CreateArticle(c *gin.Context) {
	var input ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión inválida"})
		return
	}

	categoryID, _ := uuid.Parse(input.CategoryID)
	var category models.Category
	if err := config.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La categoría no existe"})
		return
	}

	status := models.StatusDraft
	if input.Status != "" {
		status = input.Status
	}

	article := models.Article{
		Title:       strings.TrimSpace(input.Title),
		Slug:        uniqueArticleSlug(config.DB, input.Title, uuid.Nil),
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		Status:      status,
		CategoryID:  categoryID,
		AuthorID:    authorID,
		ImageURL:    utils.SafeImageURL(input.ImageURL),
		PublishedAt: input.PublishedAt,
	}

	// Invariante: publicado implica fecha de publicación
	if article.Status == models.StatusPublished && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := config.DB.Create(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el artículo"})
		return
	}

	config.DB.Preload("Category").First(&article, "id = ?", article.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Artículo creado",
		"article": article,
	})
}

// canMutateArticle: un publicista no puede tocar un artículo ya publicado.
func canMutateArticle(role string, article *models.Article) bool {
	if role == string(models.RoleAdmin) {
		return true
	}
	return article.Status != models.StatusPublished
}

func UpdateArticle(c *gin.Context) {
	id := c.Param("id")
	var article models.Article
	if err := config.DB.First(&article, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artículo no encontrado"})
		return
	}

	if !canMutateArticle(c.GetString("role"), &article) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Un publicista no puede editar un artículo publicado"})
		return
	}

	var input ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categoryID, _ := uuid.Parse(input.CategoryID)
	var category models.Category
	if err := config.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La categoría no existe"})
		return
	}

	if !strings.EqualFold(strings.TrimSpace(input.Title), article.Title) {
		article.Slug = uniqueArticleSlug(config.DB, input.Title, article.ID)
	}
	article.Title = strings.TrimSpace(input.Title)
	article.Content = input.Content
	article.Excerpt = input.Excerpt
	article.CategoryID = categoryID
	article.ImageURL = utils.SafeImageURL(input.ImageURL)
	if input.Status != "" {
		article.Status = input.Status
	}
	if input.PublishedAt != nil {
		article.PublishedAt = input.PublishedAt
	}

	// Transición a publicado sin fecha explícita: se fija ahora
	if article.Status == models.StatusPublished && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := config.DB.Save(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el artículo"})
		return
	}

	config.DB.Preload("Category").First(&article, "id = ?", article.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Artículo actualizado",
		"article": article,
	})
}

func DeleteArticle(c *gin.Context) {
	id := c.Param("id")
	var article models.Article
	if err := config.DB.First(&article, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artículo no encontrado"})
		return
	}

	if !canMutateArticle(c.GetString("role"), &article) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Un publicista no puede eliminar un artículo publicado"})
		return
	}

	if err := config.DB.Delete(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el artículo"})
		return
	}

	// Limpieza best-effort de la imagen en Storage
	if err := utils.DeleteFileFromSupabase(article.ImageURL); err != nil {
		config.Log.Warn().Err(err).Str("article_id", id).Msg("No se pudo borrar la imagen del artículo")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artículo eliminado"})
}

func AdminListArticles(c *gin.Context) {
	query := config.DB.Model(&models.Article{})

	if search := c.Query("search"); search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	page, limit, offset := parsePagination(c)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo contar los artículos"})
		return
	}

	var articles []models.Article
	if err := query.
		Preload("Category").
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, email")
		}).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar los artículos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       articles,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages(total, limit),
	})
}

func AdminGetArticle(c *gin.Context) {
	id := c.Param("id")
	var article models.Article
	if err := config.DB.
		Preload("Category").
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, email")
		}).
		First(&article, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artículo no encontrado"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// ===== Lado público =====

// GetPublishedArticles alimenta la portada: solo publicados, con filtro por
// categoría, búsqueda y orden por fecha o por más vistos.
func GetPublishedArticles(c *gin.Context) {
	query := config.DB.Model(&models.Article{}).
		Where("articles.status = ?", models.StatusPublished)

	if catSlug := c.Query("category"); catSlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = articles.category_id").
			Where("categories.slug = ?", catSlug)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("articles.title ILIKE ?", "%"+search+"%")
	}

	switch c.DefaultQuery("sort", "latest") {
	case "most_viewed":
		query = query.Order("articles.view_count DESC")
	default:
		query = query.Order("articles.published_at DESC")
	}

	page, limit, offset := parsePagination(c)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo contar los artículos"})
		return
	}

	var articles []models.Article
	if err := query.
		Preload("Category").
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name")
		}).
		Offset(offset).Limit(limit).
		Find(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar los artículos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       articles,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages(total, limit),
	})
}

// GetFeaturedArticles: los más vistos entre los publicados.
func GetFeaturedArticles(c *gin.Context) {
	var articles []models.Article
	if err := config.DB.
		Where("status = ?", models.StatusPublished).
		Order("view_count DESC, published_at DESC").
		Limit(5).
		Preload("Category").
		Find(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar los destacados"})
		return
	}
	c.JSON(http.StatusOK, articles)
}

func GetArticleBySlug(c *gin.Context) {
	slugParam := c.Param("slug")
	var article models.Article
	if err := config.DB.
		Preload("Category").
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name")
		}).
		First(&article, "slug = ? AND status = ?", slugParam, models.StatusPublished).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artículo no encontrado"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// RegisterArticleView suma una vista. La deduplicación por sesión la hace
// el cliente; aquí solo se aplica el incremento atómico.
func RegisterArticleView(c *gin.Context) {
	slugParam := c.Param("slug")
	var article models.Article
	if err := config.DB.Select("id").
		First(&article, "slug = ? AND status = ?", slugParam, models.StatusPublished).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artículo no encontrado"})
		return
	}

	if err := services.IncrementArticleViews(config.DB, article.ID); err != nil {
		// El contador es best-effort: se loguea y no se castiga al lector
		config.Log.Warn().Err(err).Str("slug", slugParam).Msg("No se pudo registrar la vista")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vista registrada"})
}

// GetArticlesByCategory: página de categoría del sitio.
func GetArticlesByCategory(c *gin.Context) {
	slugParam := c.Param("slug")

	var category models.Category
	if err := config.DB.First(&category, "slug = ?", slugParam).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Categoría no encontrada"})
		return
	}

	query := config.DB.Model(&models.Article{}).
		Where("category_id = ? AND status = ?", category.ID, models.StatusPublished)

	page, limit, offset := parsePagination(c)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo contar los artículos"})
		return
	}

	var articles []models.Article
	if err := query.
		Order("published_at DESC").
		Offset(offset).Limit(limit).
		Find(&articles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar los artículos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":   category,
		"data":       articles,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages(total, limit),
	})
}
