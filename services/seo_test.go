package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

func TestBuildRobotsTxt(t *testing.T) {
	out := BuildRobotsTxt("https://leinyinformaciones.com/")

	assert.Contains(t, out, "User-agent: *")
	assert.Contains(t, out, "Disallow: /admin/")
	assert.Contains(t, out, "Disallow: /api/")
	assert.Contains(t, out, "Disallow: /auth/")
	assert.Contains(t, out, "Allow: /")
	assert.Contains(t, out, "Sitemap: https://leinyinformaciones.com/sitemap.xml")
}

func TestBuildRobotsTxtWithoutSiteURL(t *testing.T) {
	out := BuildRobotsTxt("")
	assert.NotContains(t, out, "Sitemap:")
}

func TestBuildSitemap(t *testing.T) {
	db := testDB(t)

	category := models.Category{Name: "Política", Slug: "politica"}
	require.NoError(t, db.Create(&category).Error)
	author := models.User{FullName: "Autor", Email: "autor@ejemplo.com", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&author).Error)

	now := time.Now()
	published := models.Article{
		Title: "Publicada", Slug: "publicada", Content: "x",
		Status: models.StatusPublished, PublishedAt: &now,
		CategoryID: category.ID, AuthorID: author.ID,
	}
	require.NoError(t, db.Create(&published).Error)
	draft := models.Article{
		Title: "Borrador", Slug: "borrador", Content: "x",
		Status: models.StatusDraft,
		CategoryID: category.ID, AuthorID: author.ID,
	}
	require.NoError(t, db.Create(&draft).Error)

	out, err := BuildSitemap(db, "https://leinyinformaciones.com")
	require.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, "<loc>https://leinyinformaciones.com/</loc>")
	assert.Contains(t, xml, "<loc>https://leinyinformaciones.com/categoria/politica</loc>")
	assert.Contains(t, xml, "<loc>https://leinyinformaciones.com/noticia/publicada</loc>")
	assert.NotContains(t, xml, "borrador", "los borradores no van al sitemap")
}
