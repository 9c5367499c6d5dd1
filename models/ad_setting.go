package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Espacios publicitarios fijos del layout.
const (
	SlotHomeHeader    = "home_header"
	SlotHomeSidebar   = "home_sidebar"
	SlotArticleTop    = "article_top"
	SlotArticleBottom = "article_bottom"
)

const (
	AdTypeAdSense = "adsense"
	AdTypeCustom  = "custom"
)

var AdSlots = []string{SlotHomeHeader, SlotHomeSidebar, SlotArticleTop, SlotArticleBottom}

func IsValidAdSlot(slot string) bool {
	for _, s := range AdSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// AdSetting: configuración por slot, máximo una fila por slot (upsert).
type AdSetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slot      string    `gorm:"size:50;uniqueIndex;not null" json:"slot"`
	Type      string    `gorm:"type:varchar(20);not null;default:'adsense'" json:"type"` // adsense | custom
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	LinkURL   string    `gorm:"type:text" json:"link_url"`
	HTML      string    `gorm:"type:text" json:"html"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *AdSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
