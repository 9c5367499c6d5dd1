package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

func TestResolveAdSlotMissingRowFallsBackToAdSense(t *testing.T) {
	t.Setenv("ADSENSE_CLIENT_ID", "ca-pub-0000000000000000")

	resolved := ResolveAdSlot(models.SlotHomeHeader, map[string]models.AdSetting{})
	assert.Equal(t, AdKindAdSense, resolved.Kind)
	assert.Equal(t, "ca-pub-0000000000000000", resolved.AdClient)
	assert.Equal(t, defaultAdUnits[models.SlotHomeHeader], resolved.AdUnit)
}

func TestResolveAdSlotInactiveRendersNothing(t *testing.T) {
	// Inactivo gana sobre cualquier otra cosa configurada
	settings := map[string]models.AdSetting{
		models.SlotArticleTop: {
			Slot:     models.SlotArticleTop,
			Type:     models.AdTypeCustom,
			HTML:     "<div>anuncio</div>",
			ImageURL: "https://ejemplo.com/banner.jpg",
			IsActive: false,
		},
	}
	resolved := ResolveAdSlot(models.SlotArticleTop, settings)
	assert.Equal(t, AdKindNone, resolved.Kind)
	assert.Empty(t, resolved.HTML)
	assert.Empty(t, resolved.ImageURL)
}

func TestResolveAdSlotCustomPrefersHTML(t *testing.T) {
	settings := map[string]models.AdSetting{
		models.SlotHomeSidebar: {
			Slot:     models.SlotHomeSidebar,
			Type:     models.AdTypeCustom,
			HTML:     "<div>anuncio</div>",
			ImageURL: "https://ejemplo.com/banner.jpg",
			LinkURL:  "https://ejemplo.com",
			IsActive: true,
		},
	}
	resolved := ResolveAdSlot(models.SlotHomeSidebar, settings)
	assert.Equal(t, AdKindCustomHTML, resolved.Kind)
	assert.Equal(t, "<div>anuncio</div>", resolved.HTML)
}

func TestResolveAdSlotCustomImageWithLink(t *testing.T) {
	settings := map[string]models.AdSetting{
		models.SlotHomeSidebar: {
			Slot:     models.SlotHomeSidebar,
			Type:     models.AdTypeCustom,
			ImageURL: "https://ejemplo.com/banner.jpg",
			LinkURL:  "https://ejemplo.com",
			IsActive: true,
		},
	}
	resolved := ResolveAdSlot(models.SlotHomeSidebar, settings)
	assert.Equal(t, AdKindCustomImage, resolved.Kind)
	assert.Equal(t, "https://ejemplo.com/banner.jpg", resolved.ImageURL)
	assert.Equal(t, "https://ejemplo.com", resolved.LinkURL)
}

func TestResolveAdSlotCustomEmptyRendersNothing(t *testing.T) {
	settings := map[string]models.AdSetting{
		models.SlotArticleBottom: {
			Slot:     models.SlotArticleBottom,
			Type:     models.AdTypeCustom,
			IsActive: true,
		},
	}
	resolved := ResolveAdSlot(models.SlotArticleBottom, settings)
	assert.Equal(t, AdKindNone, resolved.Kind)
}

func TestResolveAdSlotActiveAdSense(t *testing.T) {
	t.Setenv("ADSENSE_CLIENT_ID", "ca-pub-1111")

	settings := map[string]models.AdSetting{
		models.SlotArticleTop: {
			Slot:     models.SlotArticleTop,
			Type:     models.AdTypeAdSense,
			IsActive: true,
		},
	}
	resolved := ResolveAdSlot(models.SlotArticleTop, settings)
	assert.Equal(t, AdKindAdSense, resolved.Kind)
	assert.Equal(t, defaultAdUnits[models.SlotArticleTop], resolved.AdUnit)
}

func TestUpsertAdSettingSingleRowPerSlot(t *testing.T) {
	db := testDB(t)

	active := false
	_, err := UpsertAdSetting(db, models.SlotHomeHeader, AdSettingInput{
		Type: models.AdTypeCustom,
		HTML: "<div>v1</div>",
	})
	require.NoError(t, err)

	saved, err := UpsertAdSetting(db, models.SlotHomeHeader, AdSettingInput{
		Type:     models.AdTypeCustom,
		HTML:     "<div>v2</div>",
		IsActive: &active,
	})
	require.NoError(t, err)
	assert.Equal(t, "<div>v2</div>", saved.HTML)
	assert.False(t, saved.IsActive)

	// Upsert: sigue habiendo una sola fila para el slot
	var count int64
	db.Model(&models.AdSetting{}).Where("slot = ?", models.SlotHomeHeader).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpsertAdSettingRejectsUnknownSlot(t *testing.T) {
	db := testDB(t)

	_, err := UpsertAdSetting(db, "footer_mega_banner", AdSettingInput{Type: models.AdTypeAdSense})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}
