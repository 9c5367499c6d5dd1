package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LiveVideo: transmisión embebida de YouTube.
// Invariante (aplicación): a lo sumo una fila con IsEnabled = true.
type LiveVideo struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	YoutubeURL     string    `gorm:"type:text;not null" json:"youtube_url"`
	YoutubeVideoID string    `gorm:"size:20;not null" json:"youtube_video_id"` // derivado al guardar
	Description    string    `gorm:"type:text" json:"description"`
	IsLive         bool      `gorm:"default:false" json:"is_live"`
	IsEnabled      bool      `gorm:"default:false;index" json:"is_enabled"`
	ThumbnailURL   string    `gorm:"type:text" json:"thumbnail_url"` // derivado al guardar
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (v *LiveVideo) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
