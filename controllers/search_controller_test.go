package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GravielPV/Leiny-Informaciones-sub000/config"
	"github.com/GravielPV/Leiny-Informaciones-sub000/controllers"
	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

func TestSearchPreviewOnlyPublished(t *testing.T) {
	r := setupRouter(t)
	author, _ := createTestUser(t, models.RolePublicista)
	category := createTestCategory(t)

	now := time.Now()
	published := models.Article{
		Title: "Elecciones municipales", Slug: "elecciones-municipales", Content: "x",
		Status: models.StatusPublished, PublishedAt: &now,
		CategoryID: category.ID, AuthorID: author.ID,
	}
	require.NoError(t, config.DB.Create(&published).Error)
	draft := models.Article{
		Title: "Elecciones borrador", Slug: "elecciones-borrador", Content: "x",
		Status: models.StatusDraft,
		CategoryID: category.ID, AuthorID: author.ID,
	}
	require.NoError(t, config.DB.Create(&draft).Error)

	w := doJSON(r, http.MethodGet, "/api/search/preview?query=elecciones", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []controllers.SearchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Elecciones municipales", resp.Results[0].Title)
	assert.Equal(t, "elecciones-municipales", resp.Results[0].Slug)
}

func TestSearchPreviewEmptyQuery(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/search/preview", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []controllers.SearchResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Results)
}
