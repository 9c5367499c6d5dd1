package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

func countEnabled(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.LiveVideo{}).Where("is_enabled = ?", true).Count(&count).Error)
	return count
}

func TestCreateLiveVideoDerivesFields(t *testing.T) {
	db := testDB(t)

	video, err := CreateLiveVideo(db, LiveVideoInput{
		Title:      "Rueda de prensa",
		YoutubeURL: "https://youtu.be/abc123XYZ_",
	})
	require.NoError(t, err)

	assert.Equal(t, "abc123XYZ_", video.YoutubeVideoID)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123XYZ_", video.YoutubeURL)
	assert.Equal(t, "https://img.youtube.com/vi/abc123XYZ_/maxresdefault.jpg", video.ThumbnailURL)
	assert.False(t, video.IsEnabled)
}

func TestCreateLiveVideoRejectsInvalidURL(t *testing.T) {
	db := testDB(t)

	_, err := CreateLiveVideo(db, LiveVideoInput{
		Title:      "Sin video",
		YoutubeURL: "https://vimeo.com/12345",
	})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	var count int64
	db.Model(&models.LiveVideo{}).Count(&count)
	assert.Zero(t, count, "no debe persistir nada con URL inválida")
}

func TestEnableLiveVideoKeepsSingleEnabled(t *testing.T) {
	db := testDB(t)

	first, err := CreateLiveVideo(db, LiveVideoInput{Title: "Uno", YoutubeURL: "https://youtu.be/video00001"})
	require.NoError(t, err)
	second, err := CreateLiveVideo(db, LiveVideoInput{Title: "Dos", YoutubeURL: "https://youtu.be/video00002"})
	require.NoError(t, err)

	// Habilitar el primero
	enabled, err := EnableLiveVideo(db, first.ID)
	require.NoError(t, err)
	assert.True(t, enabled.IsEnabled)
	assert.EqualValues(t, 1, countEnabled(t, db))

	// Habilitar el segundo debe apagar al primero
	_, err = EnableLiveVideo(db, second.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, countEnabled(t, db))

	current, err := GetEnabledLiveVideo(db)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)

	var reloaded models.LiveVideo
	require.NoError(t, db.First(&reloaded, "id = ?", first.ID).Error)
	assert.False(t, reloaded.IsEnabled)
}

func TestEnableLiveVideoNotFound(t *testing.T) {
	db := testDB(t)

	video, err := CreateLiveVideo(db, LiveVideoInput{Title: "Uno", YoutubeURL: "https://youtu.be/video00001"})
	require.NoError(t, err)
	_, err = EnableLiveVideo(db, video.ID)
	require.NoError(t, err)

	// ID inexistente: error not_found y el habilitado queda intacto
	_, err = EnableLiveVideo(db, uuid.New())
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualValues(t, 1, countEnabled(t, db))
}

func TestDisableAllLiveVideos(t *testing.T) {
	db := testDB(t)

	video, err := CreateLiveVideo(db, LiveVideoInput{Title: "Uno", YoutubeURL: "https://youtu.be/video00001"})
	require.NoError(t, err)
	_, err = EnableLiveVideo(db, video.ID)
	require.NoError(t, err)

	require.NoError(t, DisableAllLiveVideos(db))
	assert.Zero(t, countEnabled(t, db))

	_, err = GetEnabledLiveVideo(db)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestDeleteLiveVideo(t *testing.T) {
	db := testDB(t)

	video, err := CreateLiveVideo(db, LiveVideoInput{Title: "Uno", YoutubeURL: "https://youtu.be/video00001"})
	require.NoError(t, err)

	require.NoError(t, DeleteLiveVideo(db, video.ID))

	err = DeleteLiveVideo(db, video.ID)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}
