package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

type TopArticle struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	ViewCount int64  `json:"view_count"`
}

// GetDashboardOverview: números generales para el panel del CMS.
func GetDashboardOverview(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	now := time.Now()

	var totalArticles, totalPublished, totalCategories, totalUsers, totalSubscribers int64
	db.Model(&models.Article{}).Count(&totalArticles)
	db.Model(&models.Article{}).Where("status = ?", models.StatusPublished).Count(&totalPublished)
	db.Model(&models.Category{}).Count(&totalCategories)
	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.NewsletterSubscriber{}).Count(&totalSubscribers)

	// Publicados en los últimos 30 días
	var publishedLast30d int64
	db.Model(&models.Article{}).
		Where("status = ? AND published_at >= ?", models.StatusPublished, now.AddDate(0, 0, -30)).
		Count(&publishedLast30d)

	var tops []TopArticle
	db.Model(&models.Article{}).
		Select("id, title, slug, view_count").
		Where("status = ?", models.StatusPublished).
		Order("view_count DESC").
		Limit(5).
		Scan(&tops)

	var recent []models.Article
	db.Preload("Category").
		Order("created_at DESC").
		Limit(5).
		Find(&recent)

	c.JSON(http.StatusOK, gin.H{
		"total_articles":     totalArticles,
		"total_published":    totalPublished,
		"total_categories":   totalCategories,
		"total_users":        totalUsers,
		"total_subscribers":  totalSubscribers,
		"published_last_30d": publishedLast30d,
		"top_articles":       tops,
		"recent_articles":    recent,
	})
}
