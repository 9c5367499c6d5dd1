package services

import (
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
)

type AdKind string

const (
	AdKindAdSense     AdKind = "adsense"
	AdKindCustomHTML  AdKind = "custom_html"
	AdKindCustomImage AdKind = "custom_image"
	AdKindNone        AdKind = "none"
)

// Unidades AdSense por defecto para cada slot del layout.
var defaultAdUnits = map[string]string{
	models.SlotHomeHeader:    "9571338659",
	models.SlotHomeSidebar:   "4820114377",
	models.SlotArticleTop:    "7153982240",
	models.SlotArticleBottom: "2846597013",
}

// ResolvedAd es lo que el front debe renderizar para un slot.
type ResolvedAd struct {
	Slot     string `json:"slot"`
	Kind     AdKind `json:"kind"`
	AdClient string `json:"ad_client,omitempty"`
	AdUnit   string `json:"ad_unit,omitempty"`
	HTML     string `json:"html,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	LinkURL  string `json:"link_url,omitempty"`
}

func defaultAdSense(slot string) ResolvedAd {
	return ResolvedAd{
		Slot:     slot,
		Kind:     AdKindAdSense,
		AdClient: os.Getenv("ADSENSE_CLIENT_ID"),
		AdUnit:   defaultAdUnits[slot],
	}
}

// ResolveAdSlot decide qué renderizar en un slot. El orden de las ramas
// importa: sin fila configurada cae al AdSense por defecto; fila inactiva
// no renderiza nada; custom prefiere HTML crudo sobre imagen+link.
func ResolveAdSlot(slot string, settings map[string]models.AdSetting) ResolvedAd {
	setting, ok := settings[slot]
	if !ok {
		return defaultAdSense(slot)
	}
	if !setting.IsActive {
		return ResolvedAd{Slot: slot, Kind: AdKindNone}
	}
	if setting.Type == models.AdTypeCustom {
		if setting.HTML != "" {
			return ResolvedAd{Slot: slot, Kind: AdKindCustomHTML, HTML: setting.HTML}
		}
		if setting.ImageURL != "" {
			return ResolvedAd{
				Slot:     slot,
				Kind:     AdKindCustomImage,
				ImageURL: setting.ImageURL,
				LinkURL:  setting.LinkURL,
			}
		}
		return ResolvedAd{Slot: slot, Kind: AdKindNone}
	}
	return defaultAdSense(slot)
}

// LoadAdSettings trae todas las filas de configuración indexadas por slot,
// una sola consulta por ciclo de render.
func LoadAdSettings(db *gorm.DB) (map[string]models.AdSetting, error) {
	var rows []models.AdSetting
	if err := db.Find(&rows).Error; err != nil {
		return nil, WrapError(KindUpstream, "No se pudo cargar la configuración de anuncios", err)
	}
	settings := make(map[string]models.AdSetting, len(rows))
	for _, row := range rows {
		settings[row.Slot] = row
	}
	return settings, nil
}

type AdSettingInput struct {
	Type     string `json:"type" binding:"required,oneof=adsense custom"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
	HTML     string `json:"html"`
	IsActive *bool  `json:"is_active"`
}

// UpsertAdSetting crea o actualiza la fila del slot (una fila por slot).
func UpsertAdSetting(db *gorm.DB, slot string, input AdSettingInput) (*models.AdSetting, error) {
	if !models.IsValidAdSlot(slot) {
		return nil, NewError(KindValidation, "Slot de anuncio desconocido: "+slot)
	}

	setting := models.AdSetting{
		Slot:     slot,
		Type:     input.Type,
		ImageURL: input.ImageURL,
		LinkURL:  input.LinkURL,
		HTML:     input.HTML,
		IsActive: true,
	}
	if input.IsActive != nil {
		setting.IsActive = *input.IsActive
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "image_url", "link_url", "html", "is_active", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, WrapError(KindUpstream, "No se pudo guardar la configuración del anuncio", err)
	}

	// Releer: en el caso de conflicto el ID de la struct no es el persistido
	var saved models.AdSetting
	if err := db.First(&saved, "slot = ?", slot).Error; err != nil {
		return nil, WrapError(KindUpstream, "No se pudo releer la configuración guardada", err)
	}
	return &saved, nil
}
