package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
	"github.com/GravielPV/Leiny-Informaciones-sub000/utils"
)

type LiveVideoInput struct {
	Title       string `json:"title" binding:"required"`
	YoutubeURL  string `json:"youtube_url" binding:"required"`
	Description string `json:"description"`
	IsLive      *bool  `json:"is_live"`
}

// applyDerived valida la URL y fija los campos derivados al momento de
/// escribir (no de leer): ID de video, URL canónica y miniatura.
func applyDerived(video *models.LiveVideo, input LiveVideoInput) error {
	videoID, ok := utils.ExtractYoutubeVideoID(input.YoutubeURL)
	if !ok {
		return NewError(KindValidation, "URL de YouTube inválida")
	}
	video.Title = input.Title
	video.YoutubeURL = utils.NormalizeYoutubeURL(input.YoutubeURL)
	video.YoutubeVideoID = videoID
	video.Description = input.Description
	video.ThumbnailURL = utils.YoutubeThumbnailURL(videoID, utils.ThumbMax)
	if input.IsLive != nil {
		video.IsLive = *input.IsLive
	}
	return nil
}

func CreateLiveVideo(db *gorm.DB, input LiveVideoInput) (*models.LiveVideo, error) {
	var video models.LiveVideo
	if err := applyDerived(&video, input); err != nil {
		return nil, err
	}
	if err := db.Create(&video).Error; err != nil {
		return nil, WrapError(KindUpstream, "No se pudo crear el video en vivo", err)
	}
	return &video, nil
}

func UpdateLiveVideo(db *gorm.DB, id uuid.UUID, input LiveVideoInput) (*models.LiveVideo, error) {
	var video models.LiveVideo
	if err := db.First(&video, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindNotFound, "Video no encontrado")
		}
		return nil, WrapError(KindUpstream, "No se pudo leer el video", err)
	}
	if err := applyDerived(&video, input); err != nil {
		return nil, err
	}
	if err := db.Save(&video).Error; err != nil {
		return nil, WrapError(KindUpstream, "No se pudo actualizar el video", err)
	}
	return &video, nil
}

// EnableLiveVideo deja habilitado únicamente el video indicado. Las dos
// escrituras van en una misma transacción para que dos habilitaciones
// concurrentes no puedan dejar dos videos activos a la vez.
func EnableLiveVideo(db *gorm.DB, id uuid.UUID) (*models.LiveVideo, error) {
	var video models.LiveVideo
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&video, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewError(KindNotFound, "Video no encontrado")
			}
			return WrapError(KindUpstream, "No se pudo leer el video", err)
		}
		if err := tx.Model(&models.LiveVideo{}).
			Where("is_enabled = ?", true).
			Update("is_enabled", false).Error; err != nil {
			return WrapError(KindUpstream, "No se pudo deshabilitar los videos activos", err)
		}
		if err := tx.Model(&video).Update("is_enabled", true).Error; err != nil {
			return WrapError(KindUpstream, "No se pudo habilitar el video", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	video.IsEnabled = true
	return &video, nil
}

// DisableAllLiveVideos apaga la transmisión en la portada.
func DisableAllLiveVideos(db *gorm.DB) error {
	if err := db.Model(&models.LiveVideo{}).
		Where("is_enabled = ?", true).
		Update("is_enabled", false).Error; err != nil {
		return WrapError(KindUpstream, "No se pudo deshabilitar los videos", err)
	}
	return nil
}

func DeleteLiveVideo(db *gorm.DB, id uuid.UUID) error {
	result := db.Delete(&models.LiveVideo{}, "id = ?", id)
	if result.Error != nil {
		return WrapError(KindUpstream, "No se pudo eliminar el video", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewError(KindNotFound, "Video no encontrado")
	}
	return nil
}

// GetEnabledLiveVideo devuelve el video habilitado, si lo hay.
func GetEnabledLiveVideo(db *gorm.DB) (*models.LiveVideo, error) {
	var video models.LiveVideo
	if err := db.First(&video, "is_enabled = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindNotFound, "No hay transmisión en vivo")
		}
		return nil, WrapError(KindUpstream, "No se pudo leer la transmisión", err)
	}
	return &video, nil
}
